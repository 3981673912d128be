package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"speakeasy/internal/apierrors"
	"speakeasy/internal/observability"

	"github.com/gin-gonic/gin"
)

// SpeechResultField is the form field Twilio fills with recognized speech.
const SpeechResultField = "SpeechResult"

type VoiceCallProcessor interface {
	InitiateCall(ctx context.Context, to string, message string) (string, error)
	RespondToSpeech(ctx context.Context, speechResult string) (string, error)
}

type Handler struct {
	voiceProcessor VoiceCallProcessor
	logger         *observability.Logger
}

func New(voiceProcessor VoiceCallProcessor, logger *observability.Logger) Handler {
	return Handler{
		voiceProcessor: voiceProcessor,
		logger:         logger,
	}
}

// CreateCallRequest represents the HTTP request for placing an outbound call.
// Pointers make "required" a presence check; empty strings are accepted.
type CreateCallRequest struct {
	PhoneNumber *string `json:"phone_number" binding:"required"`
	Message     *string `json:"message" binding:"required"`
}

type CreateCallResponse struct {
	Status string `json:"status"`
	SID    string `json:"sid"`
}

// HandleCreateCall places a call that speaks the requested message
func (h *Handler) HandleCreateCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	sid, err := h.voiceProcessor.InitiateCall(ctx, *req.PhoneNumber, *req.Message)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateCallResponse{Status: "initiated", SID: sid})
}

// HandleVoiceWebhook answers a Twilio voice webhook turn with TwiML
func (h *Handler) HandleVoiceWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	script, err := h.voiceProcessor.RespondToSpeech(ctx, c.PostForm(SpeechResultField))
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/xml", []byte(script))
}
