package openai

import (
	"context"
	"errors"
	"time"

	"speakeasy/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultModel = "gpt-3.5-turbo"

var ErrNoChoicesReturned = errors.New("openai returned no choices")

// chatCompletions is the subset of the chat completions service used here.
type chatCompletions interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// CompletionClient sends single-turn chat completions.
type CompletionClient struct {
	completions chatCompletions
	logger      *observability.Logger
}

// NewCompletionClient builds a client with an explicit timeout and retry count.
// An empty API key is accepted and fails on the first request.
func NewCompletionClient(apiKey string, timeout time.Duration, maxRetries int, logger *observability.Logger) *CompletionClient {
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(maxRetries),
	}
	if timeout > 0 {
		options = append(options, option.WithRequestTimeout(timeout))
	}
	client := openai.NewClient(options...)

	return &CompletionClient{
		completions: &client.Chat.Completions,
		logger:      logger,
	}
}

// Complete sends prompt as the only user message and returns the first choice.
// No history is sent.
func (c *CompletionClient) Complete(ctx context.Context, prompt string, model string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: model})

	completion, err := c.completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		c.logger.Error(ctx, "openai chat completion failed", err)
		return "", err
	}
	if len(completion.Choices) == 0 {
		c.logger.Error(ctx, "openai chat completion returned no choices", ErrNoChoicesReturned)
		return "", ErrNoChoicesReturned
	}

	return completion.Choices[0].Message.Content, nil
}
