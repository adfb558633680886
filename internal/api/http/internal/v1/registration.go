package v1

import (
	"errors"
	"net/http"

	"github.com/fccardedeu/backend/internal/service"
	"github.com/fccardedeu/backend/pkg/cookiecrypt"
	"github.com/fccardedeu/backend/pkg/logger"
	"github.com/fccardedeu/backend/pkg/token"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initRegistrationRoutes(api *gin.RouterGroup) {
	registrations := api.Group("/registrations")
	{
		registrations.POST("/step1", h.registrationStepOne)
		registrations.POST("/step2", h.registrationStepTwo)
	}
}

type registrationStepOneInput struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Surname   string `json:"surname" binding:"required,min=2,max=100"`
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	DNI       string `json:"dni" binding:"omitempty,dni"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,min=9,max=20"`
}

type registrationStepOneResponse struct {
	Success bool `json:"success"`
	Step    int  `json:"step"`
}

// @Summary Registration Step One
// @Tags Registrations
// @Description Collects personal data and stores it in an encrypted cookie, nothing is persisted yet
// @ModuleID registrationStepOne
// @Accept  json
// @Produce  json
// @Param input body registrationStepOneInput true "personal data"
// @Success 200 {object} registrationStepOneResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /registrations/step1 [post]
func (h *Handler) registrationStepOne(c *gin.Context) {
	var input registrationStepOneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	signed, err := h.services.Registrations.Start(service.StepOneInput{
		Name:      input.Name,
		Surname:   input.Surname,
		BirthDate: input.BirthDate,
		DNI:       input.DNI,
		Email:     input.Email,
		Phone:     input.Phone,
	})
	if err != nil {
		logger.Error("issue registration draft failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	cookieName := h.config.Draft.CookieName
	if err := h.cookies.SetCookie(c, cookieName, signed, int(h.drafts.TTL().Seconds())); err != nil {
		logger.Error("set draft cookie failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, registrationStepOneResponse{Success: true, Step: 2})
}

type registrationStepTwoResponse struct {
	Success        bool   `json:"success"`
	RegistrationID string `json:"registration_id"`
}

// @Summary Registration Step Two
// @Tags Registrations
// @Description Completes the registration started in step one. Requires the draft cookie; accepts an optional member photo
// @ModuleID registrationStepTwo
// @Accept  mpfd
// @Produce  json
// @Param address formData string false "street address"
// @Param postal_code formData string false "postal code"
// @Param city formData string false "city"
// @Param category formData string false "club category"
// @Param photo formData file false "member photo"
// @Success 200 {object} registrationStepTwoResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /registrations/step2 [post]
func (h *Handler) registrationStepTwo(c *gin.Context) {
	cookieName := h.config.Draft.CookieName

	signed, err := h.cookies.Cookie(c, cookieName)
	if err != nil {
		if errors.Is(err, cookiecrypt.ErrCookieNotFound) {
			errorResponse(c, RegistrationSessionExpiredCode)
			return
		}
		logger.Warn("draft cookie unreadable", zap.Error(err))
		h.cookies.ClearCookie(c, cookieName)
		errorResponse(c, RegistrationDraftInvalidCode)
		return
	}

	draft, err := h.drafts.Verify(signed)
	if err != nil {
		if !errors.Is(err, token.ErrTokenExpired) {
			logger.Warn("draft token rejected", zap.Error(err))
		}
		h.cookies.ClearCookie(c, cookieName)
		errorResponse(c, RegistrationDraftInvalidCode)
		return
	}

	input := service.StepTwoInput{
		Address:    c.PostForm("address"),
		PostalCode: c.PostForm("postal_code"),
		City:       c.PostForm("city"),
		Category:   c.PostForm("category"),
	}

	var photo *service.PhotoUpload
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			logger.Warn("open uploaded photo failed", zap.Error(err))
		} else {
			defer file.Close()
			photo = &service.PhotoUpload{
				Filename:    fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Body:        file,
			}
		}
	}

	id, err := h.services.Registrations.Finalize(c.Request.Context(), *draft, input, photo)
	if err != nil {
		logger.Error("finalize registration failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	h.cookies.ClearCookie(c, cookieName)

	c.JSON(http.StatusOK, registrationStepTwoResponse{
		Success:        true,
		RegistrationID: id.String(),
	})
}
