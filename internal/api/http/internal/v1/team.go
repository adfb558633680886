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

func (h *Handler) initTeamRoutes(api *gin.RouterGroup) {
	teams := api.Group("/teams")
	{
		teams.GET("", h.getTeamsList)
		teams.GET("/:id", h.getTeamByID)
	}
}

type teamsListResponse struct {
	Teams []domain.Team `json:"teams"`
}

// @Summary Get Teams
// @Tags Teams
// @Description All club teams for the current season
// @ModuleID getTeamsList
// @Accept  json
// @Produce  json
// @Success 200 {object} teamsListResponse
// @Failure 500 {object} ErrorStruct
// @Router /teams [get]
func (h *Handler) getTeamsList(c *gin.Context) {
	teams, err := h.services.Teams.List(c.Request.Context())
	if err != nil {
		logger.Error("list teams failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, teamsListResponse{Teams: teams})
}

type teamDetailResponse struct {
	Team    *domain.Team    `json:"team"`
	Players []domain.Player `json:"players"`
}

// @Summary Get Team
// @Tags Teams
// @Description Team details with its roster
// @ModuleID getTeamByID
// @Accept  json
// @Produce  json
// @Param id path string true "team id"
// @Success 200 {object} teamDetailResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /teams/{id} [get]
func (h *Handler) getTeamByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, TeamNotFoundCode)
		return
	}

	team, players, err := h.services.Teams.GetWithRoster(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			notFoundResponse(c, TeamNotFoundCode)
			return
		}
		logger.Error("get team failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, teamDetailResponse{Team: team, Players: players})
}

type teamInput struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Category string `json:"category" binding:"required,min=2,max=50"`
	Season   string `json:"season" binding:"required,min=4,max=20"`
	Coach    string `json:"coach" binding:"max=150"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
}

// @Summary Create Team
// @Tags Admin
// @ModuleID createTeam
// @Accept  json
// @Produce  json
// @Param input body teamInput true "team"
// @Success 201 {object} domain.Team
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/teams [post]
func (h *Handler) createTeam(c *gin.Context) {
	var input teamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	team, err := h.services.Teams.Create(c.Request.Context(), service.TeamInput{
		Name:     input.Name,
		Category: input.Category,
		Season:   input.Season,
		Coach:    input.Coach,
		PhotoURL: input.PhotoURL,
	})
	if err != nil {
		logger.Error("create team failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// @Summary Update Team
// @Tags Admin
// @ModuleID updateTeam
// @Accept  json
// @Produce  json
// @Param id path string true "team id"
// @Param input body teamInput true "team"
// @Success 200
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/teams/{id} [put]
func (h *Handler) updateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, TeamNotFoundCode)
		return
	}

	var input teamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err = h.services.Teams.Update(c.Request.Context(), id, service.TeamInput{
		Name:     input.Name,
		Category: input.Category,
		Season:   input.Season,
		Coach:    input.Coach,
		PhotoURL: input.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, TeamNotFoundCode)
			return
		}
		logger.Error("update team failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Delete Team
// @Tags Admin
// @ModuleID deleteTeam
// @Produce  json
// @Param id path string true "team id"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/teams/{id} [delete]
func (h *Handler) deleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, TeamNotFoundCode)
		return
	}

	if err := h.services.Teams.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, TeamNotFoundCode)
			return
		}
		logger.Error("delete team failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}

type playerInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Surname  string `json:"surname" binding:"required,min=2,max=100"`
	Number   int    `json:"number" binding:"required,min=1,max=99"`
	Position string `json:"position" binding:"required,oneof=porter defensa migcampista davanter"`
}

// @Summary Add Player
// @Tags Admin
// @ModuleID addPlayer
// @Accept  json
// @Produce  json
// @Param id path string true "team id"
// @Param input body playerInput true "player"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/teams/{id}/players [post]
func (h *Handler) addPlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, TeamNotFoundCode)
		return
	}

	var input playerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	player, err := h.services.Teams.AddPlayer(c.Request.Context(), teamID, service.PlayerInput{
		Name:     input.Name,
		Surname:  input.Surname,
		Number:   input.Number,
		Position: input.Position,
	})
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			notFoundResponse(c, TeamNotFoundCode)
			return
		}
		logger.Error("add player failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// @Summary Remove Player
// @Tags Admin
// @ModuleID removePlayer
// @Produce  json
// @Param playerId path string true "player id"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/players/{playerId} [delete]
func (h *Handler) removePlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("playerId"))
	if err != nil {
		notFoundResponse(c, TeamNotFoundCode)
		return
	}

	if err := h.services.Teams.RemovePlayer(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, TeamNotFoundCode)
			return
		}
		logger.Error("remove player failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}
