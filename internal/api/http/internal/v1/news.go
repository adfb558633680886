package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/service"
	"github.com/fccardedeu/backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initNewsRoutes(api *gin.RouterGroup) {
	news := api.Group("/news")
	{
		news.GET("", h.getNewsList)
		news.GET("/:slug", h.getNewsBySlug)
	}
}

type newsListResponse struct {
	News  []domain.News `json:"news"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// @Summary Get News List
// @Tags News
// @Description Published club news, newest first
// @ModuleID getNewsList
// @Accept  json
// @Produce  json
// @Param page query int false "page number, default 1"
// @Param limit query int false "items per page, default 10, max 50"
// @Success 200 {object} newsListResponse
// @Failure 500 {object} ErrorStruct
// @Router /news [get]
func (h *Handler) getNewsList(c *gin.Context) {
	page, limit := pagination(c, 10, 50)

	items, total, err := h.services.News.List(c.Request.Context(), true, page, limit)
	if err != nil {
		logger.Error("list news failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, newsListResponse{
		News:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get News Article
// @Tags News
// @Description Single article by slug
// @ModuleID getNewsBySlug
// @Accept  json
// @Produce  json
// @Param slug path string true "article slug"
// @Success 200 {object} domain.News
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /news/{slug} [get]
func (h *Handler) getNewsBySlug(c *gin.Context) {
	article, err := h.services.News.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, NewsNotFoundCode)
			return
		}
		logger.Error("get news by slug failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, article)
}

type newsInput struct {
	Slug       string `json:"slug" binding:"required,min=3,max=200"`
	Title      string `json:"title" binding:"required,min=3,max=200"`
	Summary    string `json:"summary" binding:"max=500"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image" binding:"omitempty,url"`
	Published  bool   `json:"published"`
}

// @Summary Create News Article
// @Tags Admin
// @Description Creates an article, optionally publishing it immediately
// @ModuleID createNews
// @Accept  json
// @Produce  json
// @Param input body newsInput true "article"
// @Success 201 {object} domain.News
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/news [post]
func (h *Handler) createNews(c *gin.Context) {
	var input newsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	article, err := h.services.News.Create(c.Request.Context(), service.NewsInput{
		Slug:       input.Slug,
		Title:      input.Title,
		Summary:    input.Summary,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		Published:  input.Published,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			errorResponse(c, DuplicateEntryCode)
			return
		}
		logger.Error("create news failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// @Summary Update News Article
// @Tags Admin
// @ModuleID updateNews
// @Accept  json
// @Produce  json
// @Param id path string true "article id"
// @Param input body newsInput true "article"
// @Success 200
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/news/{id} [put]
func (h *Handler) updateNews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, NewsNotFoundCode)
		return
	}

	var input newsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err = h.services.News.Update(c.Request.Context(), id, service.NewsInput{
		Slug:       input.Slug,
		Title:      input.Title,
		Summary:    input.Summary,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		Published:  input.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoRowsAffected):
			notFoundResponse(c, NewsNotFoundCode)
		case errors.Is(err, domain.ErrDuplicateEntry):
			errorResponse(c, DuplicateEntryCode)
		default:
			logger.Error("update news failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Delete News Article
// @Tags Admin
// @ModuleID deleteNews
// @Produce  json
// @Param id path string true "article id"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/news/{id} [delete]
func (h *Handler) deleteNews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, NewsNotFoundCode)
		return
	}

	if err := h.services.News.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, NewsNotFoundCode)
			return
		}
		logger.Error("delete news failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}

func pagination(c *gin.Context, defaultLimit, maxLimit int) (page, limit int) {
	page = 1
	limit = defaultLimit

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= maxLimit {
			limit = l
		}
	}

	return page, limit
}
