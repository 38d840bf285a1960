package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"team-portal-service/internal/dto"
	"team-portal-service/internal/my_errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondWithError(w, status, &dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func respondWithError(w http.ResponseWriter, status int, errResp *dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}

// respondTeamError maps the coordinator's error taxonomy onto HTTP. Every
// sentinel keeps a distinct code so the portal can present each outcome.
func respondTeamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrEventNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeEventNotFound, my_errors.ErrEventNotFound.Error())
	case errors.Is(err, my_errors.ErrTeamNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeTeamNotFound, my_errors.ErrTeamNotFound.Error())
	case errors.Is(err, my_errors.ErrEventAlreadyStarted):
		respondError(w, http.StatusConflict, dto.ErrCodeEventStarted, my_errors.ErrEventAlreadyStarted.Error())
	case errors.Is(err, my_errors.ErrAlreadyOnTeam):
		respondError(w, http.StatusConflict, dto.ErrCodeAlreadyOnTeam, my_errors.ErrAlreadyOnTeam.Error())
	case errors.Is(err, my_errors.ErrTeamFull):
		respondError(w, http.StatusConflict, dto.ErrCodeTeamFull, my_errors.ErrTeamFull.Error())
	case errors.Is(err, my_errors.ErrNotAMember):
		respondError(w, http.StatusConflict, dto.ErrCodeNotAMember, my_errors.ErrNotAMember.Error())
	case errors.Is(err, my_errors.ErrNotLeader):
		respondError(w, http.StatusForbidden, dto.ErrCodeNotLeader, my_errors.ErrNotLeader.Error())
	case errors.Is(err, my_errors.ErrLeaderCannotLeave):
		respondError(w, http.StatusConflict, dto.ErrCodeLeaderCannotLeave, my_errors.ErrLeaderCannotLeave.Error())
	case errors.Is(err, my_errors.ErrCannotRemoveLeader):
		respondError(w, http.StatusConflict, dto.ErrCodeCannotRemoveLeader, my_errors.ErrCannotRemoveLeader.Error())
	case errors.Is(err, my_errors.ErrOperationContention), errors.Is(err, my_errors.ErrCodeGenerationFailed):
		respondError(w, http.StatusServiceUnavailable, dto.ErrCodeContention, err.Error())
	case errors.Is(err, my_errors.ErrEmptyField), errors.Is(err, my_errors.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
	}
}
