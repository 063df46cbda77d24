package llm

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MockLLM is a deterministic LLM implementation for testing.
type MockLLM struct {
	// Response is the fixed text returned by Generate.
	Response string

	// Error, if set, is returned by Generate instead of a response.
	Error error

	// Delay makes Generate block before answering, honoring context
	// cancellation. Used to exercise timeout and supersede behavior.
	Delay time.Duration

	// LastSystem and LastUser store the most recent prompts passed to
	// Generate. Guarded by mu so concurrent requests in supersede tests
	// stay race-free.
	LastSystem string
	LastUser   string

	mu    sync.Mutex
	calls atomic.Int64
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Generate returns the configured response after the configured delay.
func (m *MockLLM) Generate(ctx context.Context, system, user string) (string, error) {
	m.mu.Lock()
	m.LastSystem = system
	m.LastUser = user
	m.mu.Unlock()
	m.calls.Add(1)

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	if m.Error != nil {
		return "", m.Error
	}
	return m.Response, nil
}

// Calls reports how many times Generate has been invoked.
func (m *MockLLM) Calls() int64 {
	return m.calls.Load()
}
