package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Upstream.BaseURL != "https://multanimango-backend.vercel.app" {
		t.Fatalf("unexpected upstream base URL: %q", cfg.Upstream.BaseURL)
	}

	if got := cfg.Upstream.Timeout; got != 15*time.Second {
		t.Fatalf("expected default upstream timeout 15s, got %v", got)
	}

	fee, err := cfg.Cart.ShippingFeeAmount()
	if err != nil {
		t.Fatalf("shipping fee: %v", err)
	}
	if fee.String() != "500" {
		t.Fatalf("expected default shipping fee 500, got %s", fee)
	}

	if cfg.Cart.MaxQuantity != 10 {
		t.Fatalf("expected default max quantity 10, got %d", cfg.Cart.MaxQuantity)
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsBadShippingFee(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCartShippingFee, "free")

	if _, err := Load(); err == nil {
		t.Fatal("expected unparsable shipping fee to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvUpstreamBaseURL, "https://multanimango-backend.vercel.app")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvJWTSecret, "secret")
	t.Setenv(EnvJWTIssuer, "multanimango")
	t.Setenv(EnvJWTExpMins, "60")
}
