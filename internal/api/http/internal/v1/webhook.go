package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fccardedeu/backend/internal/service"
	"github.com/fccardedeu/backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Stripe recommends capping webhook bodies well above any real event size.
const maxWebhookBodyBytes = 65536

type webhookResponse struct {
	Received bool `json:"received"`
}

// @Summary Stripe Webhook
// @Tags Payments
// @Description Receives Stripe events. Only checkout.session.completed is processed, everything else is acknowledged and ignored
// @ModuleID paymentWebhook
// @Accept  json
// @Produce  json
// @Success 200 {object} webhookResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /payments/webhook [post]
func (h *Handler) paymentWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		errorResponse(c, UnknownErrorCode)
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.config.Stripe.WebhookSecret)
	if err != nil {
		logger.Warn("webhook signature verification failed", zap.Error(err))
		errorResponse(c, UnknownErrorCode)
		return
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		c.JSON(http.StatusOK, webhookResponse{Received: true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		logger.Warn("webhook payload unmarshal failed", zap.Error(err))
		errorResponse(c, UnknownErrorCode)
		return
	}

	if err := h.services.Payments.ConfirmCheckout(c.Request.Context(), event.ID, &session); err != nil {
		switch {
		case errors.Is(err, service.ErrEventAlreadyProcessed):
			c.JSON(http.StatusOK, webhookResponse{Received: true})
		case errors.Is(err, service.ErrInvalidMetadata),
			errors.Is(err, service.ErrUnknownPaymentType):
			logger.Warn("webhook rejected", zap.String("event_id", event.ID), zap.Error(err))
			errorResponse(c, UnknownErrorCode)
		default:
			logger.Error("confirm checkout failed", zap.String("event_id", event.ID), zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, webhookResponse{Received: true})
}
