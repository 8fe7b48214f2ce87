package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.JWTExpiry != 168*time.Hour {
		t.Fatalf("expected 7 day token expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.JWTSecret != "" {
		t.Fatalf("JWT secret must have no default, got %q", cfg.JWTSecret)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("SIGNUP_KEY", "K1")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Fatalf("unexpected secret %q", cfg.JWTSecret)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Fatalf("expected 24h expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.SignupKey != "K1" {
		t.Fatalf("unexpected signup key %q", cfg.SignupKey)
	}
}

func TestLoadIgnoresBadExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := Load()

	if cfg.JWTExpiry != 168*time.Hour {
		t.Fatalf("bad duration should fall back to 7 days, got %v", cfg.JWTExpiry)
	}
}
