// Package rewrite orchestrates the review rewrite pipeline: validation,
// script detection, prompt composition, the completion call, and response
// normalization. Every failure is classified onto a fixed error taxonomy.
package rewrite

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/meltemi-labs/reviewboost/internal/business"
	"github.com/meltemi-labs/reviewboost/internal/llm"
	"github.com/meltemi-labs/reviewboost/internal/prompt"
	"github.com/meltemi-labs/reviewboost/internal/review"
)

// DefaultTimeout is the window allowed for one completion call.
const DefaultTimeout = 15 * time.Second

// Result is the outcome of a successful rewrite. ImprovedText is always
// non-empty and trimmed.
type Result struct {
	ImprovedText   string    `json:"improvedText"`
	OriginalLength int       `json:"originalLength"`
	ImprovedLength int       `json:"improvedLength"`
	Script         string    `json:"-"`
	Model          string    `json:"-"`
	Timestamp      time.Time `json:"timestamp"`
}

// Rewriter runs the pipeline. It is stateless across requests: the profile
// and model configuration are read-only after construction, and every
// request builds its prompts fresh.
type Rewriter struct {
	llm     llm.LLM
	profile *business.Profile
	config  llm.Config
	timeout time.Duration
}

// New creates a Rewriter. generator may be nil when no credential is
// configured; every Rewrite then fails with CodeConfiguration, so the server
// can start without a key and report the problem per request.
func New(generator llm.LLM, profile *business.Profile, config llm.Config) *Rewriter {
	return &Rewriter{
		llm:     generator,
		profile: profile,
		config:  config,
		timeout: DefaultTimeout,
	}
}

// WithTimeout overrides the completion-call window. Used by tests.
func (r *Rewriter) WithTimeout(d time.Duration) *Rewriter {
	r.timeout = d
	return r
}

// Rewrite validates the payload, composes the prompt, and performs exactly
// one completion call with the configured timeout. On failure the returned
// error is either a classified *Error or context.Canceled when the request
// was superseded.
func (r *Rewriter) Rewrite(ctx context.Context, payload review.Payload) (*Result, error) {
	req, err := review.Validate(payload)
	if err != nil {
		return nil, classify(err)
	}

	if r.llm == nil {
		return nil, newError(CodeConfiguration, "OpenAI API key not configured", nil)
	}

	script := review.DetectScript(req.Text)
	p := prompt.Compose(req, script, r.profile)

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.llm.Generate(callCtx, p.System, p.User)
	if err != nil {
		// The deadline belongs to callCtx; a parent cancellation means the
		// request was superseded and stays context.Canceled.
		if ctx.Err() == nil && callCtx.Err() == context.DeadlineExceeded {
			err = context.DeadlineExceeded
		}
		return nil, classify(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, classify(llm.ErrEmptyGeneration)
	}

	return &Result{
		ImprovedText:   text,
		OriginalLength: utf8.RuneCountInString(req.Text),
		ImprovedLength: utf8.RuneCountInString(text),
		Script:         script,
		Model:          r.config.Model,
		Timestamp:      time.Now(),
	}, nil
}
