package processor

import (
	"context"
	"fmt"

	"speakeasy/internal/observability"
)

// RespondToSpeech builds the TwiML for one webhook turn. Without recognized
// speech (absent or empty) the caller hears the greeting. Otherwise the speech goes to the
// conversation helper and its reply is spoken. A helper failure is logged
// and replaced by FallbackReply so diagnostics never reach the caller.
// Every response ends by listening for the next utterance.
func (v *VoiceCallProcessor) RespondToSpeech(ctx context.Context, speechResult string) (string, error) {
	reply := Greeting

	if speechResult != "" {
		ctx = observability.WithFields(ctx, observability.Field{Key: "speech_length", Value: len(speechResult)})

		generated, err := v.conversation.HandleConversation(ctx, speechResult, "")
		if err != nil {
			v.logger.Error(ctx, "conversation reply failed, speaking fallback", err)
			reply = FallbackReply
		} else {
			reply = generated
		}
	}

	script, err := sayAndListen(reply, v.webhookPath)
	if err != nil {
		v.logger.Error(ctx, "failed to build webhook twiml", err)
		return "", fmt.Errorf("failed to build webhook twiml: %w", err)
	}
	return script, nil
}
