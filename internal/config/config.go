package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, sourced from the environment.
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	CookieSecure bool
	BcryptCost   int
	Inference    InferenceConfig
	RateLimit    RateLimitConfig
}

// InferenceConfig configures the hosted text2text-generation endpoint.
type InferenceConfig struct {
	EndpointURL string
	APIToken    string
	Timeout     time.Duration
}

// RateLimitConfig configures the per-user token bucket on model-backed endpoints.
type RateLimitConfig struct {
	Rate     float64 // tokens per second
	Capacity float64
}

// Load reads configuration from the environment. A .env file is loaded if
// present (local dev); deployed environments inject variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "clearclause.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		// Default to secure cookies; disable only for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
		BcryptCost:   12,
		Inference: InferenceConfig{
			EndpointURL: getEnv("INFERENCE_URL", "https://api-inference.huggingface.co/models/google/flan-t5-base"),
			APIToken:    os.Getenv("INFERENCE_API_TOKEN"),
			Timeout:     getEnvAsDuration("INFERENCE_TIMEOUT", 60*time.Second),
		},
		RateLimit: RateLimitConfig{
			Rate:     getEnvAsFloat("RATE_LIMIT_PER_SECOND", 0.5),
			Capacity: getEnvAsFloat("RATE_LIMIT_BURST", 5),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
