package handler

import (
	"context"
	"net/http"

	"team-portal-service/internal/domain"
	"team-portal-service/internal/dto"
	"team-portal-service/internal/mapper"
	"team-portal-service/internal/response"
)

type ScoreService interface {
	GetTeamDetail(ctx context.Context, teamID string) (*domain.Team, int, []domain.MemberScore, error)
	EventStandings(ctx context.Context, eventID string) ([]domain.TeamStanding, error)
}

type LeaderboardHandler struct {
	service ScoreService
}

func NewLeaderboardHandler(service ScoreService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// GetTeam godoc
// @Summary Get team detail with score
// @Description Team info enriched with the computed score and per-member attendance points
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team_id query string true "Team ID"
// @Success 200 {object} response.TeamDetailResponse "Team retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /team/get [get]
func (h *LeaderboardHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "team_id query parameter is required")
		return
	}

	team, score, memberScores, err := h.service.GetTeamDetail(r.Context(), teamID)
	if err != nil {
		respondTeamError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamDetailResponse{
		Team: mapper.MapTeamDetailToDTO(team, score, memberScores),
	})
}

// GetLeaderboard godoc
// @Summary Event leaderboard
// @Description Teams of an event ordered by score descending, ties by creation time
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event_id query string true "Event ID"
// @Success 200 {object} response.LeaderboardResponse "Standings retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /event/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	eventID := r.URL.Query().Get("event_id")
	if eventID == "" {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "event_id query parameter is required")
		return
	}

	standings, err := h.service.EventStandings(r.Context(), eventID)
	if err != nil {
		respondTeamError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.LeaderboardResponse{
		EventID:   eventID,
		Standings: mapper.MapStandingsToDTO(standings),
		Count:     len(standings),
	})
}
