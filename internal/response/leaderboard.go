package response

import "team-portal-service/internal/dto"

type LeaderboardResponse struct {
	EventID   string                `json:"event_id"`
	Standings []dto.TeamStandingDTO `json:"standings"`
	Count     int                   `json:"count"`
}
