package domain

import "time"

// Event metadata comes from the event directory and is read-only here.
type Event struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	EventID     string    `json:"event_id"`
	MaxTeamSize int       `json:"max_team_size"`
	MaxPoints   int       `json:"max_points"`
}

// HasStarted reports whether the roster freeze is in effect. The boundary is
// inclusive: a mutation issued exactly at StartTime is already frozen.
func (e *Event) HasStarted(now time.Time) bool {
	return !now.Before(e.StartTime)
}
