package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds every runtime setting. It is built once in Load and passed by
// reference into component constructors; nothing reads the environment after
// startup.
type Config struct {
	Port string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret     string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	ResetTokenTTL time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	FrontendOrigin string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envDuration(k, def string) (time.Duration, error) {
	d, err := time.ParseDuration(env(k, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return d, nil
}

func envInt(k string, def int) int {
	var i int
	if _, err := fmt.Sscanf(env(k, ""), "%d", &i); err != nil {
		return def
	}
	return i
}

// Load builds the configuration from environment variables.
func Load() (*Config, error) {
	accessTTL, err := envDuration("ACCESS_TTL", "15m")
	if err != nil {
		return nil, err
	}
	refreshTTL, err := envDuration("REFRESH_TTL", "720h")
	if err != nil {
		return nil, err
	}
	resetTTL, err := envDuration("RESET_TOKEN_TTL", "15m")
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:           env("PORT", "3000"),
		DSN:            env("DATABASE_DSN", "host=localhost user=notehub dbname=notehub sslmode=disable"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        envInt("REDIS_DB", 0),
		JWTSecret:      secret,
		AccessTTL:      accessTTL,
		RefreshTTL:     refreshTTL,
		ResetTokenTTL:  resetTTL,
		SMTPHost:       env("SMTP_HOST", ""),
		SMTPPort:       envInt("SMTP_PORT", 587),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:       env("SMTP_FROM", "no-reply@notehub.local"),
		FrontendOrigin: env("FRONTEND_ORIGIN", "http://localhost:5173"),
	}, nil
}
