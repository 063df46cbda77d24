package rewrite

import (
	"context"
	"errors"

	"github.com/meltemi-labs/reviewboost/internal/llm"
	"github.com/meltemi-labs/reviewboost/internal/review"
)

// Code is the machine-readable failure classification surfaced to callers.
type Code string

const (
	// CodeInvalidInput: the payload failed shape or length rules. Not
	// retryable without changing the input.
	CodeInvalidInput Code = "invalid_input"

	// CodeConfiguration: a required credential is absent. Operator-fixable.
	CodeConfiguration Code = "configuration_error"

	// CodeTimeout: the upstream call exceeded the allotted window.
	// Retryable by resubmitting.
	CodeTimeout Code = "timeout"

	// CodeUpstreamUnavailable: transport-level failure reaching the
	// generation service. Retryable.
	CodeUpstreamUnavailable Code = "upstream_unavailable"

	// CodeUpstreamRejected: the generation service returned an error
	// status. Whether a retry helps depends on the sub-code.
	CodeUpstreamRejected Code = "upstream_rejected"

	// CodeEmptyGeneration: the service responded but produced no usable
	// text. Retryable.
	CodeEmptyGeneration Code = "empty_generation"
)

// Error is a classified pipeline failure. Message is safe to show to users;
// the wrapped cause is for logs and development mode only.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func newError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// classify maps a pipeline failure onto the fixed taxonomy. A canceled
// context passes through untouched: a superseded request is discarded by its
// caller, not reported as a pipeline failure.
func classify(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return newError(CodeTimeout, "the rewrite request timed out, please try again", err)
	case errors.Is(err, review.ErrInvalidInput):
		return newError(CodeInvalidInput, err.Error(), nil)
	case errors.Is(err, llm.ErrInvalidConfig):
		return newError(CodeConfiguration, "OpenAI API key not configured", err)
	case errors.Is(err, llm.ErrEmptyGeneration):
		return newError(CodeEmptyGeneration, "failed to generate improved text", err)
	case errors.Is(err, llm.ErrUpstreamRejected):
		return newError(CodeUpstreamRejected, rejectionMessage(err), err)
	case errors.Is(err, llm.ErrUpstreamUnavailable):
		return newError(CodeUpstreamUnavailable, "could not reach the generation service, please try again later", err)
	default:
		return newError(CodeUpstreamUnavailable, "rewrite failed, please try again later", err)
	}
}

func rejectionMessage(err error) string {
	var rej *llm.RejectionError
	if errors.As(err, &rej) {
		switch rej.Code {
		case "insufficient_quota":
			return "OpenAI API quota exceeded. Please try again later."
		case "rate_limit_exceeded":
			return "OpenAI API rate limit exceeded. Please try again later."
		case "invalid_api_key":
			return "Invalid OpenAI API key"
		}
	}
	return "the generation service rejected the request"
}
