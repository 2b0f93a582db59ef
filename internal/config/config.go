package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// CognitoConfig holds identity-provider settings for the admin IdP login.
type CognitoConfig struct {
	Region      string
	AppClientID string
}

// StorageConfig holds the S3 settings for quote-request attachments.
type StorageConfig struct {
	Region string
	Bucket string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL     string
	MigrationsPath  string
	JWTSecret       string
	Port            string
	TokenTTL        time.Duration
	RateLimitSubmit RateLimitConfig
	Cognito         CognitoConfig
	Storage         StorageConfig
	SheetsAPIKey    string
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		Port:           getEnv("PORT", "8080"),
		TokenTTL:       parseDuration(getEnv("JWT_TTL", "24h")),
		Cognito: CognitoConfig{
			Region:      os.Getenv("AWS_COGNITO_REGION"),
			AppClientID: os.Getenv("AWS_COGNITO_APP_CLIENT_ID"),
		},
		Storage: StorageConfig{
			Region: os.Getenv("AWS_S3_REGION"),
			Bucket: os.Getenv("S3_BUCKET_NAME"),
		},
		SheetsAPIKey: os.Getenv("GOOGLE_SHEETS_API_KEY"),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SUBMIT", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SUBMIT value: %w", err)
	}
	cfg.RateLimitSubmit = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
