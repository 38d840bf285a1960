package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPass     string
	PostgresDatabase string
	PostgresSSLMode  string
	JWTSecret        string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// Load reads the portal configuration from the environment, optionally
// seeded from the given env files. A missing env file is not an error so
// containerized deployments can rely on the process environment alone.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Warn("no env file loaded, using process environment", "files", envFiles)
	}

	cfg := &Config{
		Port:              envOr("PORT", "8080"),
		PostgresHost:      os.Getenv("POSTGRES_HOST"),
		PostgresPort:      os.Getenv("POSTGRES_PORT"),
		PostgresUser:      os.Getenv("POSTGRES_USER"),
		PostgresPass:      os.Getenv("POSTGRES_PASSWORD"),
		PostgresDatabase:  os.Getenv("POSTGRES_DB"),
		PostgresSSLMode:   envOr("POSTGRES_SSL_MODE", "disable"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		MaxConns:          envInt32("DB_MAX_CONNS", 25),
		MinConns:          envInt32("DB_MIN_CONNS", 5),
		MaxConnLifetime:   envDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		MaxConnIdleTime:   envDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		HealthCheckPeriod: envDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
	}

	required := []struct {
		name  string
		value string
	}{
		{"POSTGRES_HOST", cfg.PostgresHost},
		{"POSTGRES_PORT", cfg.PostgresPort},
		{"POSTGRES_USER", cfg.PostgresUser},
		{"POSTGRES_PASSWORD", cfg.PostgresPass},
		{"POSTGRES_DB", cfg.PostgresDatabase},
		{"JWT_SECRET", cfg.JWTSecret},
	}
	var missing []string
	for _, v := range required {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	slog.Info("configuration loaded", "port", cfg.Port, "db_host", cfg.PostgresHost)

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt32(key string, fallback int32) int32 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 32)
	if err != nil {
		return fallback
	}
	return int32(value)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
