package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobcast/domain/dto"
	"jobcast/infrastructure/logger"
	"jobcast/usecase"
)

type IWebhookHandler interface {
	HandleWebhook(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type WebhookHandler struct {
	webhookUsecase usecase.IWebhookUsecase
}

func NewWebhookHandler(uc usecase.IWebhookUsecase) IWebhookHandler {
	return &WebhookHandler{webhookUsecase: uc}
}

// HandleWebhook handles POST /api/webhooks/neynar. Unknown event types are
// acknowledged; only genuine processing failures surface as 500 so the
// provider retries delivery.
func (h *WebhookHandler) HandleWebhook(ctx *gin.Context) {
	var event dto.WebhookEvent
	if err := ctx.ShouldBindJSON(&event); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.webhookUsecase.HandleEvent(ctx.Request.Context(), &event); err != nil {
		logger.GetLogger().WithField("type", event.Type).WithField("error", err.Error()).Error("Webhook event processing failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Health handles GET /api/webhooks/neynar, used as the endpoint liveness probe.
func (h *WebhookHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
