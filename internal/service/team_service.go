package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"team-portal-service/internal/domain"
	"team-portal-service/internal/joincode"
	"team-portal-service/internal/my_errors"

	"github.com/google/uuid"
)

const (
	// joinCodeAttempts bounds retries on a join-code collision during team
	// creation. With a 32^8 code space this should never be exhausted.
	joinCodeAttempts = 5

	// casAttempts bounds retries on a version conflict before the operation
	// is escalated as contention.
	casAttempts = 3
)

// TeamService coordinates team formation for an event: creating, joining,
// leaving, kicking and disbanding, all of which are rejected once the event
// has started. Membership updates go through a compare-and-update on the
// team version, so concurrent joins against the last open slot cannot both
// succeed.
type TeamService struct {
	teamRepo  TeamRepository
	eventRepo EventRepository
	now       func() time.Time
	genCode   func(length int) (string, error)
}

func NewTeamService(teamRepo TeamRepository, eventRepo EventRepository) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		eventRepo: eventRepo,
		now:       time.Now,
		genCode:   joincode.New,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, eventID, requesterID, teamName string) (*domain.Team, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event_id: %w", my_errors.ErrEmptyField)
	}
	if requesterID == "" {
		return nil, fmt.Errorf("student_id: %w", my_errors.ErrEmptyField)
	}
	if teamName == "" {
		return nil, fmt.Errorf("team_name: %w", my_errors.ErrEmptyField)
	}

	event, err := s.eventRepo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.HasStarted(s.now()) {
		return nil, fmt.Errorf("%w", my_errors.ErrEventAlreadyStarted)
	}

	_, err = s.teamRepo.FindByStudent(ctx, eventID, requesterID)
	if err == nil {
		return nil, fmt.Errorf("%w", my_errors.ErrAlreadyOnTeam)
	}
	if !errors.Is(err, my_errors.ErrTeamNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}

	createdAt := s.now()
	team := &domain.Team{
		TeamID:    uuid.NewString(),
		EventID:   eventID,
		TeamName:  teamName,
		LeaderID:  requesterID,
		CreatedAt: createdAt,
		Members: []domain.TeamMember{
			{StudentID: requesterID, JoinedAt: createdAt},
		},
	}

	for attempt := 0; attempt < joinCodeAttempts; attempt++ {
		code, err := s.genCode(joincode.Length)
		if err != nil {
			return nil, fmt.Errorf("failed to generate join code: %w", err)
		}
		team.JoinCode = code

		err = s.teamRepo.Insert(ctx, team)
		if err == nil {
			return s.teamRepo.GetTeam(ctx, team.TeamID)
		}
		if errors.Is(err, my_errors.ErrDuplicateJoinCode) {
			slog.Warn("join code collision, regenerating",
				"event_id", eventID, "attempt", attempt+1)
			continue
		}
		if errors.Is(err, my_errors.ErrAlreadyOnTeam) {
			// Lost a race against a concurrent create/join by the same student.
			return nil, fmt.Errorf("%w", my_errors.ErrAlreadyOnTeam)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return nil, fmt.Errorf("%w", my_errors.ErrCodeGenerationFailed)
}

func (s *TeamService) JoinTeam(ctx context.Context, eventID, joinCode, requesterID string) (*domain.Team, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event_id: %w", my_errors.ErrEmptyField)
	}
	if joinCode == "" {
		return nil, fmt.Errorf("join_code: %w", my_errors.ErrEmptyField)
	}
	if requesterID == "" {
		return nil, fmt.Errorf("student_id: %w", my_errors.ErrEmptyField)
	}

	event, err := s.eventRepo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.HasStarted(s.now()) {
		return nil, fmt.Errorf("%w", my_errors.ErrEventAlreadyStarted)
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		team, err := s.teamRepo.FindByJoinCode(ctx, eventID, joinCode)
		if err != nil {
			return nil, err
		}

		if team.IsMember(requesterID) {
			return nil, fmt.Errorf("%w", my_errors.ErrAlreadyOnTeam)
		}
		_, err = s.teamRepo.FindByStudent(ctx, eventID, requesterID)
		if err == nil {
			return nil, fmt.Errorf("%w", my_errors.ErrAlreadyOnTeam)
		}
		if !errors.Is(err, my_errors.ErrTeamNotFound) {
			return nil, fmt.Errorf("failed to check existing membership: %w", err)
		}

		if len(team.Members) >= event.MaxTeamSize {
			return nil, fmt.Errorf("%w", my_errors.ErrTeamFull)
		}

		members := make([]domain.TeamMember, len(team.Members), len(team.Members)+1)
		copy(members, team.Members)
		members = append(members, domain.TeamMember{StudentID: requesterID, JoinedAt: s.now()})

		err = s.teamRepo.CompareAndUpdateMembers(ctx, team.TeamID, team.Version, members)
		if err == nil {
			return s.teamRepo.GetTeam(ctx, team.TeamID)
		}
		if errors.Is(err, my_errors.ErrVersionConflict) {
			slog.Debug("join lost version race, retrying",
				"team_id", team.TeamID, "attempt", attempt+1)
			continue
		}
		if errors.Is(err, my_errors.ErrAlreadyOnTeam) {
			return nil, fmt.Errorf("%w", my_errors.ErrAlreadyOnTeam)
		}
		return nil, fmt.Errorf("failed to join team: %w", err)
	}

	return nil, fmt.Errorf("%w", my_errors.ErrOperationContention)
}

func (s *TeamService) LeaveTeam(ctx context.Context, teamID, requesterID string) (*domain.Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team_id: %w", my_errors.ErrEmptyField)
	}
	if requesterID == "" {
		return nil, fmt.Errorf("student_id: %w", my_errors.ErrEmptyField)
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		team, err := s.getMutableTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}

		if requesterID == team.LeaderID {
			return nil, fmt.Errorf("%w", my_errors.ErrLeaderCannotLeave)
		}
		if !team.IsMember(requesterID) {
			return nil, fmt.Errorf("%w", my_errors.ErrNotAMember)
		}

		err = s.teamRepo.CompareAndUpdateMembers(ctx, team.TeamID, team.Version, team.WithoutMember(requesterID))
		if err == nil {
			return s.teamRepo.GetTeam(ctx, team.TeamID)
		}
		if errors.Is(err, my_errors.ErrVersionConflict) {
			continue
		}
		return nil, fmt.Errorf("failed to leave team: %w", err)
	}

	return nil, fmt.Errorf("%w", my_errors.ErrOperationContention)
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, requesterID, targetID string) (*domain.Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team_id: %w", my_errors.ErrEmptyField)
	}
	if requesterID == "" {
		return nil, fmt.Errorf("requester_id: %w", my_errors.ErrEmptyField)
	}
	if targetID == "" {
		return nil, fmt.Errorf("student_id: %w", my_errors.ErrEmptyField)
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		team, err := s.getMutableTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}

		if requesterID != team.LeaderID {
			return nil, fmt.Errorf("%w", my_errors.ErrNotLeader)
		}
		if targetID == team.LeaderID {
			return nil, fmt.Errorf("%w", my_errors.ErrCannotRemoveLeader)
		}
		if !team.IsMember(targetID) {
			return nil, fmt.Errorf("%w", my_errors.ErrNotAMember)
		}

		err = s.teamRepo.CompareAndUpdateMembers(ctx, team.TeamID, team.Version, team.WithoutMember(targetID))
		if err == nil {
			return s.teamRepo.GetTeam(ctx, team.TeamID)
		}
		if errors.Is(err, my_errors.ErrVersionConflict) {
			continue
		}
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	return nil, fmt.Errorf("%w", my_errors.ErrOperationContention)
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID, requesterID string) error {
	if teamID == "" {
		return fmt.Errorf("team_id: %w", my_errors.ErrEmptyField)
	}

	team, err := s.getMutableTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if requesterID != team.LeaderID {
		return fmt.Errorf("%w", my_errors.ErrNotLeader)
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("failed to disband team: %w", err)
	}
	return nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team_id: %w", my_errors.ErrEmptyField)
	}
	return s.teamRepo.GetTeam(ctx, teamID)
}

// GetStudentTeam resolves the team a student belongs to for the given event.
func (s *TeamService) GetStudentTeam(ctx context.Context, eventID, studentID string) (*domain.Team, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event_id: %w", my_errors.ErrEmptyField)
	}
	if studentID == "" {
		return nil, fmt.Errorf("student_id: %w", my_errors.ErrEmptyField)
	}
	return s.teamRepo.FindByStudent(ctx, eventID, studentID)
}

// getMutableTeam loads the team and its event and rejects the operation if
// the roster is frozen. Event metadata is read once here; it cannot un-start
// mid-operation.
func (s *TeamService) getMutableTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetEvent(ctx, team.EventID)
	if err != nil {
		return nil, err
	}
	if event.HasStarted(s.now()) {
		return nil, fmt.Errorf("%w", my_errors.ErrEventAlreadyStarted)
	}
	return team, nil
}
