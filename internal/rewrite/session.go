package rewrite

import (
	"context"
	"sync/atomic"

	"github.com/meltemi-labs/reviewboost/internal/review"
)

// Session gives one client last-request-wins semantics: issuing a new
// rewrite cancels any prior one still in flight, so a stale result can never
// overwrite a newer one. The in-flight slot is a single pointer swap with
// ownership transfer, not a lock.
type Session struct {
	rewriter *Rewriter
	inflight atomic.Pointer[context.CancelFunc]
}

// NewSession wraps a Rewriter with a single in-flight-request slot.
func NewSession(rewriter *Rewriter) *Session {
	return &Session{rewriter: rewriter}
}

// Rewrite cancels the previous in-flight request, if any, then runs the
// pipeline. A superseded call returns context.Canceled; its caller discards
// the outcome.
func (s *Session) Rewrite(ctx context.Context, payload review.Payload) (*Result, error) {
	ctx, cancel := context.WithCancel(ctx)

	if prev := s.inflight.Swap(&cancel); prev != nil {
		(*prev)()
	}
	defer func() {
		// Release the slot only if it is still ours; a newer request may
		// have taken ownership already.
		s.inflight.CompareAndSwap(&cancel, nil)
		cancel()
	}()

	return s.rewriter.Rewrite(ctx, payload)
}
