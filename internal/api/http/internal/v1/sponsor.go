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

func (h *Handler) initSponsorRoutes(api *gin.RouterGroup) {
	sponsors := api.Group("/sponsors")
	{
		sponsors.GET("", h.getSponsorsList)
	}
}

type sponsorsListResponse struct {
	Sponsors []domain.Sponsor `json:"sponsors"`
}

// @Summary Get Sponsors
// @Tags Sponsors
// @Description Active club sponsors for the public site
// @ModuleID getSponsorsList
// @Accept  json
// @Produce  json
// @Success 200 {object} sponsorsListResponse
// @Failure 500 {object} ErrorStruct
// @Router /sponsors [get]
func (h *Handler) getSponsorsList(c *gin.Context) {
	sponsors, err := h.services.Sponsors.List(c.Request.Context(), true)
	if err != nil {
		logger.Error("list sponsors failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, sponsorsListResponse{Sponsors: sponsors})
}

type sponsorInput struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	Website string `json:"website" binding:"omitempty,url"`
	LogoURL string `json:"logo_url" binding:"omitempty,url"`
	Tier    string `json:"tier" binding:"required,oneof=principal plata col·laborador"`
	Active  bool   `json:"active"`
}

// @Summary Create Sponsor
// @Tags Admin
// @ModuleID createSponsor
// @Accept  json
// @Produce  json
// @Param input body sponsorInput true "sponsor"
// @Success 201 {object} domain.Sponsor
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/sponsors [post]
func (h *Handler) createSponsor(c *gin.Context) {
	var input sponsorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	sponsor, err := h.services.Sponsors.Create(c.Request.Context(), service.SponsorInput{
		Name:    input.Name,
		Website: input.Website,
		LogoURL: input.LogoURL,
		Tier:    input.Tier,
		Active:  input.Active,
	})
	if err != nil {
		logger.Error("create sponsor failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, sponsor)
}

// @Summary Update Sponsor
// @Tags Admin
// @ModuleID updateSponsor
// @Accept  json
// @Produce  json
// @Param id path string true "sponsor id"
// @Param input body sponsorInput true "sponsor"
// @Success 200
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/sponsors/{id} [put]
func (h *Handler) updateSponsor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, SponsorNotFoundCode)
		return
	}

	var input sponsorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err = h.services.Sponsors.Update(c.Request.Context(), id, service.SponsorInput{
		Name:    input.Name,
		Website: input.Website,
		LogoURL: input.LogoURL,
		Tier:    input.Tier,
		Active:  input.Active,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, SponsorNotFoundCode)
			return
		}
		logger.Error("update sponsor failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Delete Sponsor
// @Tags Admin
// @ModuleID deleteSponsor
// @Produce  json
// @Param id path string true "sponsor id"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/sponsors/{id} [delete]
func (h *Handler) deleteSponsor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, SponsorNotFoundCode)
		return
	}

	if err := h.services.Sponsors.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, SponsorNotFoundCode)
			return
		}
		logger.Error("delete sponsor failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}
