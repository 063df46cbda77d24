// Package config reads process configuration from the environment. The
// resulting Config is constructed once at startup and treated as read-only
// afterwards.
package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DefaultPort  = 8080
	DefaultModel = "gpt-4o"
)

// Config is the environment-supplied process configuration.
type Config struct {
	// APIKey authenticates against the generation service. May be empty;
	// the server then answers every rewrite with a configuration error
	// instead of refusing to start.
	APIKey string

	// Model overrides the default generation model.
	Model string

	// Port is the HTTP listen port.
	Port int

	// AllowedOrigins is the CORS allow-list; empty means allow all.
	AllowedOrigins []string

	// ProfilePath points at an optional business profile YAML file.
	ProfilePath string

	// Environment toggles development behavior ("development" attaches
	// error details to 5xx responses).
	Environment string
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() Config {
	return Config{
		APIKey:         os.Getenv("OPENAI_API_KEY"),
		Model:          envOr("REVIEWBOOST_MODEL", DefaultModel),
		Port:           envInt("REVIEWBOOST_PORT", DefaultPort),
		AllowedOrigins: splitList(os.Getenv("REVIEWBOOST_ALLOWED_ORIGINS")),
		ProfilePath:    os.Getenv("REVIEWBOOST_PROFILE"),
		Environment:    envOr("REVIEWBOOST_ENV", "production"),
	}
}

// Development reports whether development-mode error details are enabled.
func (c Config) Development() bool {
	return c.Environment == "development"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
