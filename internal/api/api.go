package api

import (
	"net/http"

	appointmentHandler "speakeasy/internal/appointments/handler"
	voiceCallHandler "speakeasy/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

const HealthMessage = "Speakeasy running"

type API struct {
	router             *gin.RouterGroup
	voiceCallHandler   voiceCallHandler.Handler
	appointmentHandler appointmentHandler.Handler
	voiceWebhookPath   string
}

func New(router *gin.RouterGroup, voiceCallHandler voiceCallHandler.Handler, appointmentHandler appointmentHandler.Handler, voiceWebhookPath string) API {
	return API{
		router:             router,
		voiceCallHandler:   voiceCallHandler,
		appointmentHandler: appointmentHandler,
		voiceWebhookPath:   voiceWebhookPath,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.POST("/call", a.voiceCallHandler.HandleCreateCall)
	a.router.POST("/appointment", a.appointmentHandler.HandleCreateAppointment)
	a.router.POST(a.voiceWebhookPath, a.voiceCallHandler.HandleVoiceWebhook)
}

// Health never touches an external client.
func (a *API) Health() {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": HealthMessage})
	}
	a.router.GET("/", health)
	a.router.GET("/health", health)
}
