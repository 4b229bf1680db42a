package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/clearclause/clearclause/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "clearclause.db" {
		t.Fatalf("expected default database path, got %s", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected secure cookies by default")
	}
	if cfg.Inference.Timeout != 60*time.Second {
		t.Fatalf("expected default inference timeout, got %v", cfg.Inference.Timeout)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoad_ShortJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "32 characters") {
		t.Fatalf("expected length error, got %v", err)
	}
}

func TestLoad_BcryptCostBounds(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Setenv("BCRYPT_COST", "20")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for out-of-range BCRYPT_COST")
	}

	t.Setenv("BCRYPT_COST", "10")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cfg.BcryptCost)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9999")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("INFERENCE_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_BURST", "2")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9999" {
		t.Fatalf("expected port 9999, got %s", cfg.Port)
	}
	if cfg.CookieSecure {
		t.Fatal("expected insecure cookies when COOKIE_SECURE=false")
	}
	if cfg.Inference.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.Inference.Timeout)
	}
	if cfg.RateLimit.Capacity != 2 {
		t.Fatalf("expected burst 2, got %f", cfg.RateLimit.Capacity)
	}
}
