package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAILLM implements the LLM interface using OpenAI's chat completions API.
type OpenAILLM struct {
	client openai.Client
	config Config
}

// NewOpenAILLM creates an OpenAI-backed LLM implementation.
// Returns an error if the API key is missing.
func NewOpenAILLM(config Config) (*OpenAILLM, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key (set OPENAI_API_KEY or provide in config)", ErrInvalidConfig)
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAILLM{
		client: client,
		config: config,
	}, nil
}

// Generate sends the system and user prompts to OpenAI and returns the
// normalized generated text. Exactly one outbound call is made; no retries.
func (o *OpenAILLM) Generate(ctx context.Context, system, user string) (string, error) {
	if user == "" {
		return "", fmt.Errorf("%w: user prompt cannot be empty", ErrInvalidConfig)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
	if o.config.Temperature > 0 {
		params.Temperature = openai.Float(o.config.Temperature)
	}
	if o.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(o.config.MaxTokens))
	}
	if o.config.TopP > 0 {
		params.TopP = openai.Float(o.config.TopP)
	}
	if o.config.FrequencyPenalty != 0 {
		params.FrequencyPenalty = openai.Float(o.config.FrequencyPenalty)
	}
	if o.config.PresencePenalty != 0 {
		params.PresencePenalty = openai.Float(o.config.PresencePenalty)
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyUpstreamError(ctx, err)
	}

	return Normalize(completion)
}

// classifyUpstreamError separates the three outbound failure modes: context
// expiry (timeout or supersede), an error status from the service, and
// transport-level failures.
func classifyUpstreamError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &RejectionError{
			StatusCode: apierr.StatusCode,
			Code:       apierr.Code,
			Excerpt:    excerpt(apierr.RawJSON()),
		}
	}

	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
