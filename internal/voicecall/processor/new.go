package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=new.go -destination=mocks_test.go -package=processor

import (
	"context"

	"speakeasy/internal/observability"
)

// CallPlacer places an outbound call that runs the given TwiML script.
type CallPlacer interface {
	PlaceCall(ctx context.Context, to string, twiml string) (string, error)
}

// ConversationResponder produces a single reply for one caller utterance.
type ConversationResponder interface {
	HandleConversation(ctx context.Context, prompt string, model string) (string, error)
}

type VoiceCallProcessor struct {
	telephony    CallPlacer
	conversation ConversationResponder
	webhookPath  string
	logger       *observability.Logger
}

func NewVoiceCallProcessor(telephony CallPlacer, conversation ConversationResponder, webhookPath string, logger *observability.Logger) *VoiceCallProcessor {
	return &VoiceCallProcessor{
		telephony:    telephony,
		conversation: conversation,
		webhookPath:  webhookPath,
		logger:       logger,
	}
}
