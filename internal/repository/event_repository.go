package repository

import (
	"context"
	"errors"
	"fmt"

	"team-portal-service/internal/domain"
	"team-portal-service/internal/my_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository reads event metadata maintained by the event catalog.
// Nothing here writes to the events table.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `
        SELECT event_id, start_time, end_time, max_team_size, max_points
        FROM events
        WHERE event_id = $1
    `
	var event domain.Event
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&event.EventID, &event.StartTime, &event.EndTime, &event.MaxTeamSize, &event.MaxPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrEventNotFound)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}
