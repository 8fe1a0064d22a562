package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./concierge.db)
	BaseURL      string // Optional: public origin used to build registration links (default: http://localhost:8080)
	AuthSecret   string // Required: HS256 secret verifying admin bearer tokens

	CodeTTL            time.Duration // Optional: default lifetime of invite codes (default: 72h)
	EmailTokenTTL      time.Duration // Optional: default lifetime of email invite tokens (default: 168h)
	MaxActivePerIssuer int           // Optional: active invites an issuer may hold per kind (default: 20)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expiry sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("CONCIERGE_DATABASE_FILE", "concierge.db"),
		BaseURL:      getEnvOrDefault("CONCIERGE_BASE_URL", "http://localhost:8080"),
		AuthSecret:   os.Getenv("CONCIERGE_AUTH_SECRET"),

		CodeTTL: time.Duration(
			getEnvIntOrDefault("CONCIERGE_CODE_TTL_HOURS", 72),
		) * time.Hour,
		EmailTokenTTL: time.Duration(
			getEnvIntOrDefault("CONCIERGE_EMAIL_INVITE_TTL_HOURS", 168),
		) * time.Hour,
		MaxActivePerIssuer: getEnvIntOrDefault("CONCIERGE_MAX_ACTIVE_PER_ADMIN", 20),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
