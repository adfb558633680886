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

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admins := api.Group("/admins")
	{
		admins.POST("/sign-in", h.adminSignIn)

		authenticated := admins.Group("/", h.adminIdentityMiddleware)
		{
			authenticated.GET("registrations", h.getRegistrationsList)
			authenticated.GET("registrations/:id", h.getRegistrationByID)
			authenticated.PATCH("registrations/:id/status", h.updateRegistrationStatus)
			authenticated.GET("registrations/:id/payments", h.getRegistrationPayments)

			authenticated.POST("news", h.createNews)
			authenticated.PUT("news/:id", h.updateNews)
			authenticated.DELETE("news/:id", h.deleteNews)

			authenticated.POST("sponsors", h.createSponsor)
			authenticated.PUT("sponsors/:id", h.updateSponsor)
			authenticated.DELETE("sponsors/:id", h.deleteSponsor)

			authenticated.POST("teams", h.createTeam)
			authenticated.PUT("teams/:id", h.updateTeam)
			authenticated.DELETE("teams/:id", h.deleteTeam)
			authenticated.POST("teams/:id/players", h.addPlayer)
			authenticated.DELETE("players/:playerId", h.removePlayer)

			authenticated.POST("matches", h.createMatch)
			authenticated.PUT("matches/:id", h.updateMatch)
			authenticated.DELETE("matches/:id", h.deleteMatch)
			authenticated.PATCH("matches/:id/result", h.setMatchResult)
		}
	}
}

type adminSignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type adminSignInResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// @Summary Admin Sign In
// @Tags Admin
// @Description Exchanges admin credentials for a bearer token
// @ModuleID adminSignIn
// @Accept  json
// @Produce  json
// @Param input body adminSignInInput true "credentials"
// @Success 200 {object} adminSignInResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /admins/sign-in [post]
func (h *Handler) adminSignIn(c *gin.Context) {
	var input adminSignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Admins.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, getErrorStruct(AdminInvalidCredentialsCode))
			return
		}
		logger.Error("admin sign in failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, adminSignInResponse{
		AccessToken: tokens.AccessToken,
		ExpiresIn:   int64(tokens.ExpiresIn.Seconds()),
	})
}

type registrationsListResponse struct {
	Registrations []domain.Registration `json:"registrations"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	Limit         int                   `json:"limit"`
}

// @Summary List Registrations
// @Tags Admin
// @Description Member registrations with payment state, newest first
// @ModuleID getRegistrationsList
// @Accept  json
// @Produce  json
// @Param page query int false "page number, default 1"
// @Param limit query int false "items per page, default 20, max 100"
// @Success 200 {object} registrationsListResponse
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/registrations [get]
func (h *Handler) getRegistrationsList(c *gin.Context) {
	page, limit := pagination(c, 20, 100)

	registrations, total, err := h.services.Registrations.List(c.Request.Context(), page, limit)
	if err != nil {
		logger.Error("list registrations failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, registrationsListResponse{
		Registrations: registrations,
		Total:         total,
		Page:          page,
		Limit:         limit,
	})
}

// @Summary Get Registration
// @Tags Admin
// @ModuleID getRegistrationByID
// @Produce  json
// @Param id path string true "registration id"
// @Success 200 {object} domain.Registration
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/registrations/{id} [get]
func (h *Handler) getRegistrationByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, RegistrationNotFoundCode)
		return
	}

	registration, err := h.services.Registrations.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, RegistrationNotFoundCode)
			return
		}
		logger.Error("get registration failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, registration)
}

type registrationStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed rejected"`
}

// @Summary Update Registration Status
// @Tags Admin
// @Description Moves a registration through its lifecycle. Illegal transitions are rejected
// @ModuleID updateRegistrationStatus
// @Accept  json
// @Produce  json
// @Param id path string true "registration id"
// @Param input body registrationStatusInput true "new status"
// @Success 200
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/registrations/{id}/status [patch]
func (h *Handler) updateRegistrationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, RegistrationNotFoundCode)
		return
	}

	var input registrationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err = h.services.Registrations.UpdateStatus(c.Request.Context(), id, domain.RegistrationStatus(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, RegistrationNotFoundCode)
		case errors.Is(err, service.ErrInvalidStatusTransition):
			errorResponse(c, InvalidStatusTransitionCode)
		default:
			logger.Error("update registration status failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.Status(http.StatusOK)
}

type registrationPaymentsResponse struct {
	Payments []domain.Payment `json:"payments"`
}

// @Summary List Registration Payments
// @Tags Admin
// @ModuleID getRegistrationPayments
// @Produce  json
// @Param id path string true "registration id"
// @Success 200 {object} registrationPaymentsResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/registrations/{id}/payments [get]
func (h *Handler) getRegistrationPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, RegistrationNotFoundCode)
		return
	}

	payments, err := h.services.Payments.ListByRegistration(c.Request.Context(), id)
	if err != nil {
		logger.Error("list registration payments failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, registrationPaymentsResponse{Payments: payments})
}
