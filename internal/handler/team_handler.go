package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"team-portal-service/internal/domain"
	"team-portal-service/internal/dto"
	"team-portal-service/internal/mapper"
	"team-portal-service/internal/middleware"
	"team-portal-service/internal/request"
	"team-portal-service/internal/response"

	"github.com/go-playground/validator/v10"
)

type TeamService interface {
	CreateTeam(ctx context.Context, eventID, requesterID, teamName string) (*domain.Team, error)
	JoinTeam(ctx context.Context, eventID, joinCode, requesterID string) (*domain.Team, error)
	LeaveTeam(ctx context.Context, teamID, requesterID string) (*domain.Team, error)
	RemoveMember(ctx context.Context, teamID, requesterID, targetID string) (*domain.Team, error)
	DeleteTeam(ctx context.Context, teamID, requesterID string) error
	GetStudentTeam(ctx context.Context, eventID, studentID string) (*domain.Team, error)
}

type TeamHandler struct {
	service   TeamService
	validator *validator.Validate
}

func NewTeamHandler(service TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator,
	}
}

// CreateTeam godoc
// @Summary Create a team for an event
// @Description The requester becomes the leader and the only member; a fresh join code is generated
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTeamRequest true "Team creation request"
// @Success 201 {object} response.TeamResponse "Team created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Event started or requester already on a team"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /team/create [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeValidation, "missing identity")
		return
	}

	var req request.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.CreateTeam(r.Context(), req.EventID, studentID, req.TeamName)
	if err != nil {
		respondTeamError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// JoinTeam godoc
// @Summary Join a team using its join code
// @Description Adds the requester to the team identified by (event_id, join_code)
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.JoinTeamRequest true "Join request"
// @Success 200 {object} response.TeamResponse "Joined team successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Team or event not found"
// @Failure 409 {object} dto.ErrorResponse "Event started, team full or already on a team"
// @Failure 503 {object} dto.ErrorResponse "Contention, retry"
// @Router /team/join [post]
func (h *TeamHandler) JoinTeam(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeValidation, "missing identity")
		return
	}

	var req request.JoinTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.JoinTeam(r.Context(), req.EventID, req.JoinCode, studentID)
	if err != nil {
		respondTeamError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// LeaveTeam godoc
// @Summary Leave a team
// @Description Removes the requester from the team; the leader must disband instead
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.LeaveTeamRequest true "Leave request"
// @Success 200 {object} response.TeamResponse "Left team successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Failure 409 {object} dto.ErrorResponse "Event started, not a member or requester is the leader"
// @Router /team/leave [post]
func (h *TeamHandler) LeaveTeam(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeValidation, "missing identity")
		return
	}

	var req request.LeaveTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.LeaveTeam(r.Context(), req.TeamID, studentID)
	if err != nil {
		respondTeamError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// KickMember godoc
// @Summary Remove a member from a team
// @Description Leader-only; the leader cannot be removed
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.KickMemberRequest true "Kick request"
// @Success 200 {object} response.TeamResponse "Member removed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Requester is not the leader"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Failure 409 {object} dto.ErrorResponse "Event started, target not a member or target is the leader"
// @Router /team/kick [post]
func (h *TeamHandler) KickMember(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeValidation, "missing identity")
		return
	}

	var req request.KickMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.RemoveMember(r.Context(), req.TeamID, studentID, req.StudentID)
	if err != nil {
		respondTeamError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// DisbandTeam godoc
// @Summary Disband a team
// @Description Leader-only; frees the join code and every member for the event
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.DisbandTeamRequest true "Disband request"
// @Success 200 {object} response.DisbandResponse "Team disbanded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Requester is not the leader"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Failure 409 {object} dto.ErrorResponse "Event already started"
// @Router /team/disband [post]
func (h *TeamHandler) DisbandTeam(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeValidation, "missing identity")
		return
	}

	var req request.DisbandTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	if err := h.service.DeleteTeam(r.Context(), req.TeamID, studentID); err != nil {
		respondTeamError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.DisbandResponse{
		TeamID: req.TeamID,
		Status: "disbanded",
	})
}

// GetMyTeam godoc
// @Summary Get the requester's team for an event
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event_id query string true "Event ID"
// @Success 200 {object} response.TeamResponse "Team retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Requester has no team for this event"
// @Router /team/my [get]
func (h *TeamHandler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeValidation, "missing identity")
		return
	}

	eventID := r.URL.Query().Get("event_id")
	if eventID == "" {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "event_id query parameter is required")
		return
	}

	team, err := h.service.GetStudentTeam(r.Context(), eventID, studentID)
	if err != nil {
		respondTeamError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}
