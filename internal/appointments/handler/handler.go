package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"speakeasy/internal/apierrors"
	"speakeasy/internal/observability"

	"github.com/gin-gonic/gin"
)

type AppointmentProcessor interface {
	CreateAppointment(ctx context.Context, clientName, doctorName, appointmentTime string) (string, error)
}

type Handler struct {
	processor AppointmentProcessor
	logger    *observability.Logger
}

func New(processor AppointmentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// AppointmentRequest represents the HTTP request for booking an appointment.
// Fields must be present but may be empty; time is stored as sent.
type AppointmentRequest struct {
	ClientName *string `json:"client_name" binding:"required"`
	DoctorName *string `json:"doctor_name" binding:"required"`
	Time       *string `json:"time" binding:"required"`
}

type AppointmentResponse struct {
	Status        string `json:"status"`
	AppointmentID string `json:"appointment_id"`
}

// HandleCreateAppointment stores a new appointment
func (h *Handler) HandleCreateAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	id, err := h.processor.CreateAppointment(ctx, *req.ClientName, *req.DoctorName, *req.Time)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, AppointmentResponse{Status: "success", AppointmentID: id})
}
