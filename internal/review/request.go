// Package review defines the rewrite request model: payload validation,
// keyword normalization, and script detection for incoming review text.
package review

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	// MinTextLength and MaxTextLength bound the review text. The legacy UI
	// accepted texts down to 5 characters; the server contract is stricter
	// and authoritative.
	MinTextLength = 10
	MaxTextLength = 2000

	// MaxKeywordsLength bounds the comma-joined keyword serialization.
	MaxKeywordsLength = 200
)

// Payload is the raw, untrusted request body. Keywords may arrive as a
// single comma-delimited string or as a list of strings.
type Payload struct {
	Text     string `json:"text"`
	Keywords any    `json:"keywords,omitempty"`
}

// Request is a validated rewrite request. Keywords is always an ordered
// sequence of unique, trimmed, non-empty strings.
type Request struct {
	Text     string
	Keywords []string
}

// Validate checks the payload against the shape and length rules and returns
// a normalized Request. It is a pure function of its input.
func Validate(p Payload) (*Request, error) {
	if p.Text == "" {
		return nil, fmt.Errorf("%w: text is required and must be a string", ErrInvalidInput)
	}
	// Bounds count characters, not bytes; Greek reviews are two bytes per
	// rune in UTF-8.
	if n := utf8.RuneCountInString(p.Text); n < MinTextLength || n > MaxTextLength {
		return nil, fmt.Errorf("%w: text must be between %d and %d characters", ErrInvalidInput, MinTextLength, MaxTextLength)
	}

	raw, err := keywordEntries(p.Keywords)
	if err != nil {
		return nil, err
	}
	if joined := strings.Join(raw, ", "); utf8.RuneCountInString(joined) > MaxKeywordsLength {
		return nil, fmt.Errorf("%w: keywords must be less than %d characters", ErrInvalidInput, MaxKeywordsLength)
	}

	return &Request{
		Text:     p.Text,
		Keywords: NormalizeKeywords(raw),
	}, nil
}

// keywordEntries coerces the keywords field into a flat list of strings
// without normalizing it. A delimited string becomes its comma-separated
// parts only after the length check, so the raw serialization is what gets
// bounded.
func keywordEntries(keywords any) ([]string, error) {
	switch v := keywords.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		entries := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: keywords must be a string or a list of strings", ErrInvalidInput)
			}
			entries = append(entries, s)
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: keywords must be a string or a list of strings", ErrInvalidInput)
	}
}

// NormalizeKeywords splits comma-delimited entries, trims whitespace, drops
// empties, and deduplicates while preserving first-seen order.
func NormalizeKeywords(entries []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			kw := strings.TrimSpace(part)
			if kw == "" {
				continue
			}
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}
