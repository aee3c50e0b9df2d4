package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultAnalysisURL = "http://localhost:8090"
	defaultTimeoutSec  = 60
)

// Config holds the console configuration, loaded from the environment with an
// optional .env file on top.
type Config struct {
	Port           string
	AnalysisURL    string
	RequestTimeout time.Duration
	LogLevel       slog.Level
}

// Load reads configuration from a .env file (when present) and the
// environment. Missing values fall back to defaults.
func Load() *Config {
	// .env is optional; plain environment variables win in deployment.
	_ = godotenv.Load()

	timeoutSec, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT", ""))
	if err != nil || timeoutSec < 1 {
		timeoutSec = defaultTimeoutSec
	}

	return &Config{
		Port:           getEnv("PORT", defaultPort),
		AnalysisURL:    getEnv("ANALYSIS_SERVICE_URL", defaultAnalysisURL),
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
		LogLevel:       parseLogLevel(os.Getenv("LOG_LEVEL")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(raw string) slog.Level {
	switch raw {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
