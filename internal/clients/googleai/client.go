package googleai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"speakeasy/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-flash"

var (
	ErrNoCandidates      = errors.New("gemini returned no candidates")
	ErrUnexpectedContent = errors.New("gemini returned non-text content")
)

// generator produces content for a single prompt with the named model.
type generator interface {
	Generate(ctx context.Context, model string, prompt string) (*genai.GenerateContentResponse, error)
}

// sdkGenerator lazily creates the SDK client on first use so that a missing
// key surfaces on the first request rather than at startup.
type sdkGenerator struct {
	apiKey string

	mu     sync.Mutex
	client *genai.Client
}

func (g *sdkGenerator) Generate(ctx context.Context, model string, prompt string) (*genai.GenerateContentResponse, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
}

func (g *sdkGenerator) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, err
	}
	g.client = client
	return client, nil
}

func (g *sdkGenerator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client == nil {
		return nil
	}
	err := g.client.Close()
	g.client = nil
	return err
}

// CompletionClient sends single-turn prompts to Gemini.
type CompletionClient struct {
	generator generator
	timeout   time.Duration
	logger    *observability.Logger
}

// NewCompletionClient creates a Gemini completion client. The SDK has no
// retry knob, so only the timeout is applied (as a context deadline).
func NewCompletionClient(apiKey string, timeout time.Duration, logger *observability.Logger) *CompletionClient {
	return &CompletionClient{
		generator: &sdkGenerator{apiKey: apiKey},
		timeout:   timeout,
		logger:    logger,
	}
}

// Complete sends prompt as a single user turn and returns the text of the first candidate.
func (c *CompletionClient) Complete(ctx context.Context, prompt string, model string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: model})

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.generator.Generate(ctx, model, prompt)
	if err != nil {
		c.logger.Error(ctx, "gemini generate content failed", err)
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		c.logger.Error(ctx, "gemini returned no candidates", ErrNoCandidates)
		return "", ErrNoCandidates
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text, ok := part.(genai.Text)
		if !ok {
			c.logger.Error(ctx, "gemini returned non-text part", ErrUnexpectedContent)
			return "", ErrUnexpectedContent
		}
		reply.WriteString(string(text))
	}

	return strings.TrimSpace(reply.String()), nil
}

// Close releases the underlying SDK client if one was created.
func (c *CompletionClient) Close() error {
	if closer, ok := c.generator.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
