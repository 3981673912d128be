package processor

import (
	"github.com/twilio/twilio-go/twiml"
)

const (
	Voice    = "alice"
	Language = "en-US"

	Greeting      = "Hello, welcome to Speakeasy. How may I assist you?"
	FallbackReply = "Sorry, I could not process that right now. Please try again."
)

func say(message string) *twiml.VoiceSay {
	return &twiml.VoiceSay{
		Message:  message,
		Voice:    Voice,
		Language: Language,
	}
}

// sayScript is a document whose only instruction is to speak message.
func sayScript(message string) (string, error) {
	return twiml.Voice([]twiml.Element{say(message)})
}

// sayAndListen speaks reply, then opens a speech Gather that posts the
// recognized text back to action.
func sayAndListen(reply string, action string) (string, error) {
	gather := &twiml.VoiceGather{
		Input:  "speech",
		Action: action,
		Method: "POST",
	}
	return twiml.Voice([]twiml.Element{say(reply), gather})
}
