package service

import (
	"context"
	"fmt"
	"sync"

	"team-portal-service/internal/domain"
	"team-portal-service/internal/my_errors"
)

// fakeTeamRepo is an in-memory team store with the same contract as the
// Postgres repository: per-event join code uniqueness, per-event student
// exclusivity and versioned compare-and-update.
type fakeTeamRepo struct {
	mu          sync.Mutex
	teams       map[string]*domain.Team
	casFailures int
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*domain.Team)}
}

func copyTeam(t *domain.Team) *domain.Team {
	c := *t
	c.Members = make([]domain.TeamMember, len(t.Members))
	copy(c.Members, t.Members)
	return &c
}

func (r *fakeTeamRepo) Insert(ctx context.Context, team *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.teams {
		if existing.EventID != team.EventID {
			continue
		}
		if existing.JoinCode == team.JoinCode {
			return my_errors.ErrDuplicateJoinCode
		}
		for _, m := range team.Members {
			if existing.IsMember(m.StudentID) {
				return my_errors.ErrAlreadyOnTeam
			}
		}
	}

	stored := copyTeam(team)
	stored.Version = 1
	r.teams[team.TeamID] = stored
	return nil
}

func (r *fakeTeamRepo) CompareAndUpdateMembers(ctx context.Context, teamID string, expectedVersion int64, members []domain.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.casFailures > 0 {
		r.casFailures--
		return my_errors.ErrVersionConflict
	}

	team, ok := r.teams[teamID]
	if !ok {
		return my_errors.ErrTeamNotFound
	}
	if team.Version != expectedVersion {
		return my_errors.ErrVersionConflict
	}

	for _, existing := range r.teams {
		if existing.TeamID == teamID || existing.EventID != team.EventID {
			continue
		}
		for _, m := range members {
			if existing.IsMember(m.StudentID) {
				return my_errors.ErrAlreadyOnTeam
			}
		}
	}

	team.Members = make([]domain.TeamMember, len(members))
	copy(team.Members, members)
	team.Version++
	return nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[teamID]; !ok {
		return my_errors.ErrTeamNotFound
	}
	delete(r.teams, teamID)
	return nil
}

func (r *fakeTeamRepo) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.teams[teamID]
	if !ok {
		return nil, my_errors.ErrTeamNotFound
	}
	return copyTeam(team), nil
}

func (r *fakeTeamRepo) FindByJoinCode(ctx context.Context, eventID, code string) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, team := range r.teams {
		if team.EventID == eventID && team.JoinCode == code {
			return copyTeam(team), nil
		}
	}
	return nil, my_errors.ErrTeamNotFound
}

func (r *fakeTeamRepo) FindByStudent(ctx context.Context, eventID, studentID string) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, team := range r.teams {
		if team.EventID == eventID && team.IsMember(studentID) {
			return copyTeam(team), nil
		}
	}
	return nil, my_errors.ErrTeamNotFound
}

func (r *fakeTeamRepo) ListByEvent(ctx context.Context, eventID string) ([]domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var teams []domain.Team
	for _, team := range r.teams {
		if team.EventID == eventID {
			teams = append(teams, *copyTeam(team))
		}
	}
	return teams, nil
}

type fakeEventRepo struct {
	events map[string]*domain.Event
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[string]*domain.Event)}
	for _, e := range events {
		r.events[e.EventID] = e
	}
	return r
}

func (r *fakeEventRepo) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, ok := r.events[eventID]
	if !ok {
		return nil, my_errors.ErrEventNotFound
	}
	return event, nil
}

type fakeAttendanceRepo struct {
	records     map[string]map[string]domain.AttendanceRecord
	unavailable bool
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]map[string]domain.AttendanceRecord)}
}

func (r *fakeAttendanceRepo) mark(eventID, studentID, status string, points int) {
	if r.records[eventID] == nil {
		r.records[eventID] = make(map[string]domain.AttendanceRecord)
	}
	r.records[eventID][studentID] = domain.AttendanceRecord{
		StudentID:   studentID,
		EventID:     eventID,
		Status:      status,
		PointsGiven: points,
	}
}

func (r *fakeAttendanceRepo) GetAttendance(ctx context.Context, studentID, eventID string) (*domain.AttendanceRecord, error) {
	if r.unavailable {
		return nil, fmt.Errorf("ledger unavailable")
	}
	if record, ok := r.records[eventID][studentID]; ok {
		return &record, nil
	}
	return &domain.AttendanceRecord{
		StudentID: studentID,
		EventID:   eventID,
		Status:    domain.AttendanceAbsent,
	}, nil
}

func (r *fakeAttendanceRepo) GetEventAttendance(ctx context.Context, eventID string, studentIDs []string) (map[string]domain.AttendanceRecord, error) {
	if r.unavailable {
		return nil, fmt.Errorf("ledger unavailable")
	}
	result := make(map[string]domain.AttendanceRecord)
	for _, id := range studentIDs {
		if record, ok := r.records[eventID][id]; ok {
			result[id] = record
		}
	}
	return result, nil
}
