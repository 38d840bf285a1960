package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"team-portal-service/internal/dto"
)

type AuthService interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

type contextKey string

const StudentIDKey contextKey = "student_id"

// StudentIDFromContext returns the authenticated student id set by
// AuthMiddleware.
func StudentIDFromContext(ctx context.Context) (string, bool) {
	studentID, ok := ctx.Value(StudentIDKey).(string)
	return studentID, ok
}

// AuthMiddleware check JWT token in Authorization
func AuthMiddleware(authService AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeValidation,
						Message: "missing authorization header",
					},
				})
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeValidation,
						Message: "invalid authorization header format",
					},
				})
				return
			}

			token := parts[1]
			studentID, err := authService.ValidateToken(r.Context(), token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeValidation,
						Message: "invalid or expired token",
					},
				})
				return
			}

			ctx := context.WithValue(r.Context(), StudentIDKey, studentID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondError(w http.ResponseWriter, status int, errResp dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}
