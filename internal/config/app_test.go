package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENROUTER_API_KEY", "test-openrouter-key")
	t.Setenv("YELP_API_KEY", "test-yelp-key")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	path := filepath.Join(t.TempDir(), "models.json")
	if err := os.WriteFile(path, []byte(`[{"id": "openai/gpt-4o-mini", "name": "GPT-4o Mini", "provider": "openai", "tier": "fast"}]`), 0o644); err != nil {
		t.Fatalf("Failed to write models file: %v", err)
	}
	t.Setenv("MODELS_CONFIG_PATH", path)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Unexpected default port: %q", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "openrouter" {
		t.Errorf("Unexpected default provider: %q", cfg.LLM.Provider)
	}
	if cfg.Search.Mode != "ai" {
		t.Errorf("Unexpected default search mode: %q", cfg.Search.Mode)
	}
	if cfg.Search.Timeout != 30*time.Second {
		t.Errorf("Unexpected default search timeout: %v", cfg.Search.Timeout)
	}
	if cfg.Auth.TokenExpiration != 24*time.Hour {
		t.Errorf("Unexpected default token expiration: %v", cfg.Auth.TokenExpiration)
	}
}

func TestLoadConfig_MissingProviderKey(t *testing.T) {
	setValidEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "OPENROUTER_API_KEY") {
		t.Fatalf("Expected missing key error, got: %v", err)
	}
}

func TestLoadConfig_OpenAIProviderRequiresItsKey(t *testing.T) {
	setValidEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")

	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("Expected missing key error, got: %v", err)
	}

	t.Setenv("OPENAI_API_KEY", "test-openai-key")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("Unexpected provider: %q", cfg.LLM.Provider)
	}
}

func TestLoadConfig_MissingYelpKey(t *testing.T) {
	setValidEnv(t)
	t.Setenv("YELP_API_KEY", "")

	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "YELP_API_KEY") {
		t.Fatalf("Expected missing key error, got: %v", err)
	}
}

func TestLoadConfig_ShortJWTSecret(t *testing.T) {
	setValidEnv(t)
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("Expected short secret error, got: %v", err)
	}
}

func TestLoadConfig_UnknownSearchModeFallsBack(t *testing.T) {
	setValidEnv(t)
	t.Setenv("YELP_API_MODE", "graphql")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Search.Mode != "ai" {
		t.Errorf("Expected fallback to ai mode, got %q", cfg.Search.Mode)
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		Name:     "movemate",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=postgres password=postgres dbname=movemate sslmode=disable"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := getEnvOrDefault("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("Expected env value, got %q", got)
	}
	if got := getEnvOrDefault("TEST_STRING_UNSET", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}

	t.Setenv("TEST_FLOAT", "0.5")
	if got := getEnvAsFloat("TEST_FLOAT", 0.7); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
	t.Setenv("TEST_FLOAT", "not-a-float")
	if got := getEnvAsFloat("TEST_FLOAT", 0.7); got != 0.7 {
		t.Errorf("Expected default for invalid float, got %v", got)
	}

	t.Setenv("TEST_DURATION", "45s")
	if got := getEnvAsDuration("TEST_DURATION", time.Minute); got != 45*time.Second {
		t.Errorf("Expected 45s, got %v", got)
	}
	t.Setenv("TEST_DURATION", "forever")
	if got := getEnvAsDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("Expected default for invalid duration, got %v", got)
	}
}
