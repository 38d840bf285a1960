package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "team-portal-service/pkg/config"

	_ "team-portal-service/docs"
	"team-portal-service/internal/handler"
	"team-portal-service/internal/repository"
	"team-portal-service/internal/router"
	"team-portal-service/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Team Formation Service API
// @version 1.0
// @description Team formation and scoring for team-based club events
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to database
	pool, err := config2.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("successfully connected to database")

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	authService := service.NewAuthService(cfg.JWTSecret)
	teamService := service.NewTeamService(teamRepo, eventRepo)
	scoreService := service.NewScoreService(teamRepo, eventRepo, attendanceRepo)

	// Initialize handlers
	teamHandler := handler.NewTeamHandler(teamService, validate)
	leaderboardHandler := handler.NewLeaderboardHandler(scoreService)
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		teamHandler,
		leaderboardHandler,
		healthHandler,
		authService,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
