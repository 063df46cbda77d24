// Package llm provides the completion client for the rewrite pipeline. It
// defines a provider-agnostic interface with a concrete OpenAI
// implementation and a deterministic mock for testing.
package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig       = errors.New("invalid LLM configuration")
	ErrUpstreamUnavailable = errors.New("generation service unreachable")
	ErrUpstreamRejected    = errors.New("generation service rejected the request")
	ErrEmptyGeneration     = errors.New("generation service returned no usable text")
)

// LLM defines the interface for the text-generation call. Implementations
// must be stateless and thread-safe; the system prompt and user prompt are
// sent as separate messages in that order.
type LLM interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Config holds the generation parameters. All values are fixed constants or
// operator-supplied overrides, never user-controlled.
type Config struct {
	// Model specifies the model identifier (e.g., "gpt-4o")
	Model string

	// Temperature controls randomness (0.0 = deterministic, 2.0 = very random)
	Temperature float64

	// MaxTokens limits the response length
	MaxTokens int

	// TopP is the nucleus sampling value
	TopP float64

	// FrequencyPenalty and PresencePenalty discourage repetition
	FrequencyPenalty float64
	PresencePenalty  float64

	// APIKey is the authentication key for the provider
	APIKey string
}

// DefaultConfig returns the parameters used for review rewriting.
func DefaultConfig() Config {
	return Config{
		Model:            "gpt-4o",
		Temperature:      0.7,
		MaxTokens:        1000,
		TopP:             1,
		FrequencyPenalty: 0.1,
		PresencePenalty:  0.1,
	}
}

// maxExcerptLen caps the upstream error body carried in RejectionError.
const maxExcerptLen = 500

// RejectionError is an upstream error status. Code is the provider's
// machine-readable sub-code (e.g. "insufficient_quota") when present.
type RejectionError struct {
	StatusCode int
	Code       string
	Excerpt    string
}

func (e *RejectionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream rejected request (status %d, code %s): %s", e.StatusCode, e.Code, e.Excerpt)
	}
	return fmt.Sprintf("upstream rejected request (status %d): %s", e.StatusCode, e.Excerpt)
}

func (e *RejectionError) Unwrap() error { return ErrUpstreamRejected }

func excerpt(body string) string {
	if len(body) > maxExcerptLen {
		return body[:maxExcerptLen]
	}
	return body
}
