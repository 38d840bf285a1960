package repository

import (
	"context"
	"errors"
	"fmt"

	"team-portal-service/internal/domain"
	"team-portal-service/internal/my_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation = "23505"

	constraintEventJoinCode = "uq_teams_event_join_code"
	constraintEventStudent  = "uq_team_members_event_student"
)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// Insert creates the team together with its initial member rows. The unique
// constraints on (event_id, join_code) and (event_id, student_id) are the
// source of truth under concurrent creation.
func (r *TeamRepository) Insert(ctx context.Context, team *domain.Team) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO teams (team_id, event_id, team_name, leader_id, join_code, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err = tx.Exec(ctx, query,
		team.TeamID, team.EventID, team.TeamName, team.LeaderID, team.JoinCode, team.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", mapUniqueViolation(err))
	}

	for _, m := range team.Members {
		_, err = tx.Exec(ctx,
			`INSERT INTO team_members (team_id, event_id, student_id, joined_at) VALUES ($1, $2, $3, $4)`,
			team.TeamID, team.EventID, m.StudentID, m.JoinedAt)
		if err != nil {
			return fmt.Errorf("failed to insert team member: %w", mapUniqueViolation(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit team insert: %w", err)
	}
	return nil
}

// CompareAndUpdateMembers replaces the member set iff the team version has
// not moved since the caller read it. Concurrent joins against the last open
// slot are serialized through the version bump.
func (r *TeamRepository) CompareAndUpdateMembers(ctx context.Context, teamID string, expectedVersion int64, members []domain.TeamMember) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE teams SET version = version + 1 WHERE team_id = $1 AND version = $2`,
		teamID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to bump team version: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM teams WHERE team_id = $1)`, teamID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check team existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w", my_errors.ErrTeamNotFound)
		}
		return fmt.Errorf("%w", my_errors.ErrVersionConflict)
	}

	var eventID string
	if err := tx.QueryRow(ctx,
		`SELECT event_id FROM teams WHERE team_id = $1`, teamID).Scan(&eventID); err != nil {
		return fmt.Errorf("failed to get team event: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("failed to clear team members: %w", err)
	}
	for _, m := range members {
		_, err = tx.Exec(ctx,
			`INSERT INTO team_members (team_id, event_id, student_id, joined_at) VALUES ($1, $2, $3, $4)`,
			teamID, eventID, m.StudentID, m.JoinedAt)
		if err != nil {
			return fmt.Errorf("failed to insert team member: %w", mapUniqueViolation(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit member update: %w", err)
	}
	return nil
}

// Delete removes the team and cascades to its member rows, which releases the
// join code and every member slot for the event.
func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}
	return nil
}

func (r *TeamRepository) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	return r.getTeamWhere(ctx, `team_id = $1`, teamID)
}

func (r *TeamRepository) FindByJoinCode(ctx context.Context, eventID, code string) (*domain.Team, error) {
	return r.getTeamWhere(ctx, `event_id = $1 AND join_code = $2`, eventID, code)
}

func (r *TeamRepository) FindByStudent(ctx context.Context, eventID, studentID string) (*domain.Team, error) {
	query := `
        SELECT t.team_id, t.event_id, t.team_name, t.leader_id, t.join_code,
               t.coordinator_comment, t.version, t.created_at
        FROM teams t
        JOIN team_members m ON m.team_id = t.team_id
        WHERE m.event_id = $1 AND m.student_id = $2
    `
	team, err := r.scanTeam(r.pool.QueryRow(ctx, query, eventID, studentID))
	if err != nil {
		return nil, err
	}
	if err := r.loadMembers(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (r *TeamRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Team, error) {
	query := `
        SELECT team_id, event_id, team_name, leader_id, join_code,
               coordinator_comment, version, created_at
        FROM teams
        WHERE event_id = $1
        ORDER BY created_at
    `
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		team, err := r.scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	for i := range teams {
		if err := r.loadMembers(ctx, &teams[i]); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

func (r *TeamRepository) getTeamWhere(ctx context.Context, where string, args ...any) (*domain.Team, error) {
	query := `
        SELECT team_id, event_id, team_name, leader_id, join_code,
               coordinator_comment, version, created_at
        FROM teams
        WHERE ` + where
	team, err := r.scanTeam(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	if err := r.loadMembers(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (r *TeamRepository) scanTeam(row pgx.Row) (*domain.Team, error) {
	var team domain.Team
	err := row.Scan(&team.TeamID, &team.EventID, &team.TeamName, &team.LeaderID,
		&team.JoinCode, &team.CoordinatorComment, &team.Version, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("failed to scan team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) loadMembers(ctx context.Context, team *domain.Team) error {
	query := `
        SELECT student_id, joined_at
        FROM team_members
        WHERE team_id = $1
        ORDER BY joined_at, student_id
    `
	rows, err := r.pool.Query(ctx, query, team.TeamID)
	if err != nil {
		return fmt.Errorf("failed to get team members: %w", err)
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.StudentID, &m.JoinedAt); err != nil {
			return fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate members: %w", err)
	}

	team.Members = members
	return nil
}

// mapUniqueViolation translates the DB-level uniqueness constraints into the
// business my_errors the coordinator knows how to handle.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case constraintEventJoinCode:
			return my_errors.ErrDuplicateJoinCode
		case constraintEventStudent:
			return my_errors.ErrAlreadyOnTeam
		}
	}
	return err
}
