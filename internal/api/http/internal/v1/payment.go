package v1

import (
	"errors"
	"net/http"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/service"
	"github.com/fccardedeu/backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initPaymentRoutes(api *gin.RouterGroup) {
	payments := api.Group("/payments")
	{
		payments.POST("/checkout", h.paymentCheckout)
		payments.POST("/webhook", h.paymentWebhook)
	}
}

type paymentCheckoutInput struct {
	RegistrationID string `json:"registration_id" binding:"omitempty,uuid"`
	PaymentType    string `json:"payment_type" binding:"required,oneof=completo parcial"`
	Email          string `json:"email" binding:"required_without=RegistrationID,omitempty,email"`
	Name           string `json:"name" binding:"omitempty,max=100"`
	Surname        string `json:"surname" binding:"omitempty,max=100"`
	DNI            string `json:"dni" binding:"omitempty,dni"`
}

type paymentCheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// @Summary Start Checkout
// @Tags Payments
// @Description Creates a Stripe checkout session for the membership fee. Pass a registration_id from step two, or member data for sessions without one
// @ModuleID paymentCheckout
// @Accept  json
// @Produce  json
// @Param input body paymentCheckoutInput true "checkout request"
// @Success 200 {object} paymentCheckoutResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 502 {object} ErrorStruct
// @Router /payments/checkout [post]
func (h *Handler) paymentCheckout(c *gin.Context) {
	var input paymentCheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	checkoutInput := service.CheckoutInput{
		PaymentType: domain.PaymentType(input.PaymentType),
		Email:       input.Email,
		Name:        input.Name,
		Surname:     input.Surname,
		DNI:         input.DNI,
	}
	if input.RegistrationID != "" {
		registrationID, err := uuid.Parse(input.RegistrationID)
		if err != nil {
			errorResponse(c, RegistrationNotFoundCode)
			return
		}
		checkoutInput.RegistrationID = &registrationID
	}

	result, err := h.services.Payments.Checkout(c.Request.Context(), checkoutInput)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, RegistrationNotFoundCode)
		case errors.Is(err, service.ErrUnknownPaymentType):
			errorResponse(c, UnknownPaymentTypeCode)
		case errors.Is(err, service.ErrPaymentProvider):
			logger.Error("create checkout session failed", zap.Error(err))
			badGatewayResponse(c)
		default:
			logger.Error("create checkout session failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, paymentCheckoutResponse{
		SessionID: result.SessionID,
		URL:       result.SessionURL,
	})
}
