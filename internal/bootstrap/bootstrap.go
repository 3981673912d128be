package bootstrap

import (
	"context"
	"fmt"

	"speakeasy/internal/config"
	"speakeasy/internal/observability"
	"speakeasy/internal/store"

	AICapabilities "speakeasy/internal/ai-capabilities/processor"
	appointmentHandler "speakeasy/internal/appointments/handler"
	appointmentProcessor "speakeasy/internal/appointments/processor"
	"speakeasy/internal/clients/googleai"
	"speakeasy/internal/clients/openai"
	"speakeasy/internal/clients/twilio"
	voiceCallHandler "speakeasy/internal/voicecall/handler"
	voiceCallProcessor "speakeasy/internal/voicecall/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	VoiceCallHandler   voiceCallHandler.Handler
	AppointmentHandler appointmentHandler.Handler

	closers []func() error
}

// Initialize builds every client, processor and handler once. No external
// service is contacted here; the document store connects on first use.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize document store
	var err error
	deps.Store, err = store.New(store.Config{
		Driver:          cfg.DocumentStore.Driver,
		CredentialsFile: cfg.DocumentStore.CredentialsFile,
		Timeout:         cfg.External.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create document store: %w", err)
	}
	deps.closers = append(deps.closers, func() error { return deps.Store.Close(context.Background()) })

	// Initialize clients
	twilioClient := twilio.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.PhoneNumber,
		cfg.External.Timeout,
		logger,
	)

	var generator AICapabilities.TextGenerator
	switch cfg.TextGeneration.Provider {
	case config.TextGenerationProviderGemini:
		geminiClient := googleai.NewCompletionClient(cfg.TextGeneration.GoogleAIAPIKey, cfg.External.Timeout, logger)
		deps.closers = append(deps.closers, geminiClient.Close)
		generator = geminiClient
	default:
		generator = openai.NewCompletionClient(
			cfg.TextGeneration.OpenAIAPIKey,
			cfg.External.Timeout,
			cfg.External.MaxRetries,
			logger,
		)
	}
	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "text_generation_provider", Value: cfg.TextGeneration.Provider},
		observability.Field{Key: "document_store_driver", Value: cfg.DocumentStore.Driver},
	), "dependencies configured")

	// Initialize conversation helper
	aiCapability := AICapabilities.New(generator, cfg.TextGeneration.Model, logger)

	// Initialize voice call processor and handler
	voiceCallProc := voiceCallProcessor.NewVoiceCallProcessor(twilioClient, aiCapability, cfg.Twilio.WebhookPath, logger)
	deps.VoiceCallHandler = voiceCallHandler.New(voiceCallProc, logger)

	// Initialize appointment processor and handler
	appointmentProc := appointmentProcessor.New(deps.Store, logger)
	deps.AppointmentHandler = appointmentHandler.New(&appointmentProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			d.Logger.Error(ctx, "failed to close dependency", err)
		}
	}
}
