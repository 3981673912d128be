package processor

import (
	"context"
	"fmt"

	"speakeasy/internal/observability"
)

// HandleConversation forwards prompt as a single user turn and returns the
// provider's reply. No history is kept between calls. An empty model falls
// back to the configured default. Provider failures are returned as errors,
// never folded into the reply text.
func (a *AIProcessor) HandleConversation(ctx context.Context, prompt string, model string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if model == "" {
		model = a.defaultModel
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "model", Value: model},
		observability.Field{Key: "prompt_length", Value: len(prompt)},
	)

	reply, err := a.generator.Complete(ctx, prompt, model)
	if err != nil {
		a.logger.Error(ctx, "failed to generate conversation reply", err)
		return "", fmt.Errorf("failed to generate conversation reply: %w", err)
	}

	a.logger.Info(ctx, "conversation reply generated")
	return reply, nil
}
