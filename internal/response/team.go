package response

import "team-portal-service/internal/dto"

type TeamResponse struct {
	Team dto.TeamDTO `json:"team"`
}

type TeamDetailResponse struct {
	Team dto.TeamDetailDTO `json:"team"`
}

type DisbandResponse struct {
	TeamID string `json:"team_id"`
	Status string `json:"status"`
}
