package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=new.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"speakeasy/internal/observability"
)

var ErrEmptyPrompt = errors.New("prompt is empty")

// TextGenerator sends a single prompt to a text-generation provider.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, model string) (string, error)
}

type AIProcessor struct {
	generator    TextGenerator
	defaultModel string
	logger       *observability.Logger
}

func New(generator TextGenerator, defaultModel string, logger *observability.Logger) *AIProcessor {
	return &AIProcessor{
		generator:    generator,
		defaultModel: defaultModel,
		logger:       logger,
	}
}
