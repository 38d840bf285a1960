package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"team-portal-service/internal/domain"
	"team-portal-service/internal/my_errors"
)

// ScoreService derives team scores from the attendance ledger on every read;
// nothing is cached or persisted.
type ScoreService struct {
	teamRepo       TeamRepository
	eventRepo      EventRepository
	attendanceRepo AttendanceRepository
}

func NewScoreService(teamRepo TeamRepository, eventRepo EventRepository, attendanceRepo AttendanceRepository) *ScoreService {
	return &ScoreService{
		teamRepo:       teamRepo,
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ComputeTeamScore returns the maximum points awarded to a present member.
// The team is represented by its best member, not by the sum. Ledger failures
// degrade to zero points so one bad record never blocks a leaderboard.
func (s *ScoreService) ComputeTeamScore(ctx context.Context, team *domain.Team) int {
	records, err := s.attendanceRepo.GetEventAttendance(ctx, team.EventID, team.MemberIDs())
	if err != nil {
		slog.Warn("attendance ledger unavailable, scoring team as zero",
			"team_id", team.TeamID, "event_id", team.EventID, "error", err)
		return 0
	}

	score := 0
	for _, record := range records {
		if record.IsPresent() && record.PointsGiven > score {
			score = record.PointsGiven
		}
	}
	return score
}

// MemberPercentage converts raw points into a display percentage, clamped at
// 100 in case a coordinator over-awards.
func MemberPercentage(points, eventMaxPoints int) int {
	if eventMaxPoints <= 0 || points <= 0 {
		return 0
	}
	pct := int(math.Round(float64(points) / float64(eventMaxPoints) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// GetTeamDetail returns a team together with its score and the per-member
// ledger view shown on the team page.
func (s *ScoreService) GetTeamDetail(ctx context.Context, teamID string) (*domain.Team, int, []domain.MemberScore, error) {
	if teamID == "" {
		return nil, 0, nil, fmt.Errorf("team_id: %w", my_errors.ErrEmptyField)
	}

	team, err := s.teamRepo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, 0, nil, err
	}
	event, err := s.eventRepo.GetEvent(ctx, team.EventID)
	if err != nil {
		return nil, 0, nil, err
	}

	score := 0
	memberScores := make([]domain.MemberScore, len(team.Members))
	for i, m := range team.Members {
		record, err := s.attendanceRepo.GetAttendance(ctx, m.StudentID, team.EventID)
		if err != nil {
			slog.Warn("attendance ledger unavailable for member, counting as absent",
				"team_id", team.TeamID, "student_id", m.StudentID, "error", err)
			record = &domain.AttendanceRecord{
				StudentID: m.StudentID,
				EventID:   team.EventID,
				Status:    domain.AttendanceAbsent,
			}
		}
		memberScores[i] = domain.MemberScore{
			StudentID:  m.StudentID,
			Status:     record.Status,
			Points:     record.PointsGiven,
			Percentage: MemberPercentage(record.PointsGiven, event.MaxPoints),
		}
		if record.IsPresent() && record.PointsGiven > score {
			score = record.PointsGiven
		}
	}

	return team, score, memberScores, nil
}

// EventStandings lists the teams of an event ordered by score descending,
// ties broken by creation time ascending for a stable leaderboard.
func (s *ScoreService) EventStandings(ctx context.Context, eventID string) ([]domain.TeamStanding, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event_id: %w", my_errors.ErrEmptyField)
	}

	if _, err := s.eventRepo.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event teams: %w", err)
	}

	standings := make([]domain.TeamStanding, len(teams))
	for i := range teams {
		standings[i] = domain.TeamStanding{
			Team:  teams[i],
			Score: s.ComputeTeamScore(ctx, &teams[i]),
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Score != standings[j].Score {
			return standings[i].Score > standings[j].Score
		}
		return standings[i].Team.CreatedAt.Before(standings[j].Team.CreatedAt)
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings, nil
}
