package router

import (
	"net/http"
	"time"

	middleware2 "team-portal-service/pkg/middleware"

	"team-portal-service/internal/handler"
	"team-portal-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	teamHandler *handler.TeamHandler,
	leaderboardHandler *handler.LeaderboardHandler,
	healthHandler *handler.HealthHandler,
	authService middleware.AuthService,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(time.Second)) // each operation is sub-second

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Public endpoints
	r.Head("/health", healthHandler.Health)

	// Protected endpoints (require a portal-issued JWT)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))

		// Team formation
		r.Post("/team/create", teamHandler.CreateTeam)
		r.Post("/team/join", teamHandler.JoinTeam)
		r.Post("/team/leave", teamHandler.LeaveTeam)
		r.Post("/team/kick", teamHandler.KickMember)
		r.Post("/team/disband", teamHandler.DisbandTeam)
		r.Get("/team/my", teamHandler.GetMyTeam)

		// Scores
		r.Get("/team/get", leaderboardHandler.GetTeam)
		r.Get("/event/leaderboard", leaderboardHandler.GetLeaderboard)
	})

	return r
}
