package config

import (
	"reflect"
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"OPENAI_API_KEY", "REVIEWBOOST_MODEL", "REVIEWBOOST_PORT",
		"REVIEWBOOST_ALLOWED_ORIGINS", "REVIEWBOOST_PROFILE", "REVIEWBOOST_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	if cfg.Model != DefaultModel {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("expected nil origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.Development() {
		t.Error("development mode should be off by default")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REVIEWBOOST_MODEL", "gpt-4o-mini")
	t.Setenv("REVIEWBOOST_PORT", "9090")
	t.Setenv("REVIEWBOOST_ALLOWED_ORIGINS", "http://localhost:5173, https://example.com")
	t.Setenv("REVIEWBOOST_ENV", "development")

	cfg := FromEnv()

	if cfg.APIKey != "sk-test" {
		t.Errorf("unexpected api key %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("unexpected model %q", cfg.Model)
	}
	if cfg.Port != 9090 {
		t.Errorf("unexpected port %d", cfg.Port)
	}
	want := []string{"http://localhost:5173", "https://example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if !cfg.Development() {
		t.Error("development mode should be on")
	}
}

func TestFromEnv_BadPortFallsBack(t *testing.T) {
	t.Setenv("REVIEWBOOST_PORT", "not-a-port")

	if cfg := FromEnv(); cfg.Port != DefaultPort {
		t.Errorf("expected fallback port, got %d", cfg.Port)
	}
}
