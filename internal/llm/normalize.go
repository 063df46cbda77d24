package llm

import (
	"strings"

	"github.com/openai/openai-go"
)

// Normalize extracts the first generated message's text from the upstream
// response envelope and trims surrounding whitespace. A missing or blank
// payload is ErrEmptyGeneration: the service can answer HTTP 200 with
// unusable content, and that must surface as a failure, not an empty
// success.
func Normalize(completion *openai.ChatCompletion) (string, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return "", ErrEmptyGeneration
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}
