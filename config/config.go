package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	FrontendURL string
	// LinkedIn public-page fetch
	LinkedInFetchTimeoutSeconds int
	// Upload limits
	MaxUploadMB int
	// Rate Limiting Configuration
	RateLimitEnabled   bool
	RateLimitPerMinute int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// LinkedIn throttles automated access hard; anything past ~10s is a lost cause
		LinkedInFetchTimeoutSeconds: getEnvInt("LINKEDIN_FETCH_TIMEOUT_SECONDS", 10),
		MaxUploadMB:                 getEnvInt("MAX_UPLOAD_MB", 10),
		RateLimitEnabled:            getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitPerMinute:          getEnvInt("RATE_LIMIT_PER_MINUTE", 20),
	}

	return cfg, nil
}

// LinkedInFetchTimeout returns the configured fetch timeout as a duration
func (c *Config) LinkedInFetchTimeout() time.Duration {
	return time.Duration(c.LinkedInFetchTimeoutSeconds) * time.Second
}

// MaxUploadBytes returns the upload size cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
