package service

import (
	"context"

	"team-portal-service/internal/domain"
)

type TeamRepository interface {
	Insert(ctx context.Context, team *domain.Team) error
	CompareAndUpdateMembers(ctx context.Context, teamID string, expectedVersion int64, members []domain.TeamMember) error
	Delete(ctx context.Context, teamID string) error
	GetTeam(ctx context.Context, teamID string) (*domain.Team, error)
	FindByJoinCode(ctx context.Context, eventID, code string) (*domain.Team, error)
	FindByStudent(ctx context.Context, eventID, studentID string) (*domain.Team, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Team, error)
}

type EventRepository interface {
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
}

type AttendanceRepository interface {
	GetAttendance(ctx context.Context, studentID, eventID string) (*domain.AttendanceRecord, error)
	GetEventAttendance(ctx context.Context, eventID string, studentIDs []string) (map[string]domain.AttendanceRecord, error)
}
