package processor

import (
	"context"
	"fmt"

	"speakeasy/internal/observability"
)

// InitiateCall dials to and has the provider speak message once.
// Provider errors are returned as is.
func (v *VoiceCallProcessor) InitiateCall(ctx context.Context, to string, message string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_to", Value: to})

	script, err := sayScript(message)
	if err != nil {
		v.logger.Error(ctx, "failed to build call twiml", err)
		return "", fmt.Errorf("failed to build call twiml: %w", err)
	}

	sid, err := v.telephony.PlaceCall(ctx, to, script)
	if err != nil {
		return "", err
	}

	v.logger.Info(observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: sid}), "call initiated")
	return sid, nil
}
