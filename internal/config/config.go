package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"speakeasy/internal/clients/googleai"
	"speakeasy/internal/clients/openai"
	"speakeasy/internal/store"

	"github.com/joho/godotenv"
)

const (
	TextGenerationProviderOpenAI = "openai"
	TextGenerationProviderGemini = "gemini"
)

var ErrUnsupportedProvider = errors.New("unsupported text generation provider")

// Config holds all application configuration
type Config struct {
	Twilio         TwilioConfig
	TextGeneration TextGenerationConfig
	DocumentStore  DocumentStoreConfig
	External       ExternalCallConfig
	Server         ServerConfig
}

// TwilioConfig holds the telephony credentials and origin number.
// Values are passed through unvalidated; a missing value fails on the first call.
type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
	WebhookPath string
}

// TextGenerationConfig selects and configures the completion provider
type TextGenerationConfig struct {
	Provider       string
	OpenAIAPIKey   string
	GoogleAIAPIKey string
	Model          string
}

// DocumentStoreConfig points at the credential file used to reach the store
type DocumentStoreConfig struct {
	Driver          string
	CredentialsFile string
}

// ExternalCallConfig makes provider timeouts and retries explicit
type ExternalCallConfig struct {
	Timeout    time.Duration
	MaxRetries int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// Load reads all environment variables. Credentials are not required to be
// present; only malformed optional settings cause an error.
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		// env.local is optional for this service
		_ = godotenv.Load("env.local")
	}

	cfg := &Config{}

	cfg.Twilio.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Twilio.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Twilio.PhoneNumber = os.Getenv("TWILIO_PHONE_NUMBER")
	cfg.Twilio.WebhookPath = getEnvWithDefault("VOICE_WEBHOOK_PATH", "/twilio/voice")

	cfg.TextGeneration.Provider = getEnvWithDefault("TEXT_GENERATION_PROVIDER", TextGenerationProviderOpenAI)
	cfg.TextGeneration.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.TextGeneration.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	switch cfg.TextGeneration.Provider {
	case TextGenerationProviderOpenAI:
		cfg.TextGeneration.Model = getEnvWithDefault("TEXT_GENERATION_MODEL", openai.DefaultModel)
	case TextGenerationProviderGemini:
		cfg.TextGeneration.Model = getEnvWithDefault("TEXT_GENERATION_MODEL", googleai.DefaultModel)
	default:
		return nil, fmt.Errorf("TEXT_GENERATION_PROVIDER=%q: %w", cfg.TextGeneration.Provider, ErrUnsupportedProvider)
	}

	cfg.DocumentStore.CredentialsFile = os.Getenv("DOCUMENT_STORE_CREDENTIALS_FILE")
	cfg.DocumentStore.Driver = getEnvWithDefault("DOCUMENT_STORE_DRIVER", store.DriverMongo)
	if cfg.DocumentStore.Driver != store.DriverMongo && cfg.DocumentStore.Driver != store.DriverPostgres {
		return nil, fmt.Errorf("DOCUMENT_STORE_DRIVER=%q: %w", cfg.DocumentStore.Driver, store.ErrUnsupportedDriver)
	}

	var err error
	cfg.External.Timeout, err = time.ParseDuration(getEnvWithDefault("EXTERNAL_CALL_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse EXTERNAL_CALL_TIMEOUT: %w", err)
	}
	cfg.External.MaxRetries, err = strconv.Atoi(getEnvWithDefault("EXTERNAL_CALL_MAX_RETRIES", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse EXTERNAL_CALL_MAX_RETRIES: %w", err)
	}

	// Server configuration
	cfg.Server.Port, err = strconv.Atoi(getEnvWithDefault("SERVER_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
