package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/service"
	"github.com/fccardedeu/backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initMatchRoutes(api *gin.RouterGroup) {
	matches := api.Group("/matches")
	{
		matches.GET("", h.getUpcomingMatches)
	}
}

type matchesListResponse struct {
	Matches []domain.Match `json:"matches"`
}

// @Summary Get Upcoming Matches
// @Tags Matches
// @Description Upcoming convocatòries, soonest first. Optionally filtered by team
// @ModuleID getUpcomingMatches
// @Accept  json
// @Produce  json
// @Param team_id query string false "team id filter"
// @Param limit query int false "max results, default 10, max 50"
// @Success 200 {object} matchesListResponse
// @Failure 500 {object} ErrorStruct
// @Router /matches [get]
func (h *Handler) getUpcomingMatches(c *gin.Context) {
	var teamID *uuid.UUID
	if teamIDStr := c.Query("team_id"); teamIDStr != "" {
		if id, err := uuid.Parse(teamIDStr); err == nil {
			teamID = &id
		}
	}

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 50 {
			limit = l
		}
	}

	matches, err := h.services.Matches.ListUpcoming(c.Request.Context(), teamID, limit)
	if err != nil {
		logger.Error("list upcoming matches failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, matchesListResponse{Matches: matches})
}

type matchInput struct {
	TeamID   string    `json:"team_id" binding:"required,uuid"`
	Opponent string    `json:"opponent" binding:"required,min=2,max=150"`
	Kickoff  time.Time `json:"kickoff" binding:"required"`
	Location string    `json:"location" binding:"required,min=2,max=200"`
	Home     bool      `json:"home"`
}

// @Summary Create Match
// @Tags Admin
// @ModuleID createMatch
// @Accept  json
// @Produce  json
// @Param input body matchInput true "match"
// @Success 201 {object} domain.Match
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/matches [post]
func (h *Handler) createMatch(c *gin.Context) {
	var input matchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	teamID, err := uuid.Parse(input.TeamID)
	if err != nil {
		notFoundResponse(c, TeamNotFoundCode)
		return
	}

	match, err := h.services.Matches.Create(c.Request.Context(), service.MatchInput{
		TeamID:   teamID,
		Opponent: input.Opponent,
		Kickoff:  input.Kickoff,
		Location: input.Location,
		Home:     input.Home,
	})
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			notFoundResponse(c, TeamNotFoundCode)
			return
		}
		logger.Error("create match failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// @Summary Update Match
// @Tags Admin
// @ModuleID updateMatch
// @Accept  json
// @Produce  json
// @Param id path string true "match id"
// @Param input body matchInput true "match"
// @Success 200
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/matches/{id} [put]
func (h *Handler) updateMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, MatchNotFoundCode)
		return
	}

	var input matchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	teamID, err := uuid.Parse(input.TeamID)
	if err != nil {
		notFoundResponse(c, TeamNotFoundCode)
		return
	}

	err = h.services.Matches.Update(c.Request.Context(), id, service.MatchInput{
		TeamID:   teamID,
		Opponent: input.Opponent,
		Kickoff:  input.Kickoff,
		Location: input.Location,
		Home:     input.Home,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, MatchNotFoundCode)
			return
		}
		logger.Error("update match failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Delete Match
// @Tags Admin
// @ModuleID deleteMatch
// @Produce  json
// @Param id path string true "match id"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/matches/{id} [delete]
func (h *Handler) deleteMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, MatchNotFoundCode)
		return
	}

	if err := h.services.Matches.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, MatchNotFoundCode)
			return
		}
		logger.Error("delete match failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}

type matchResultInput struct {
	HomeGoals *int `json:"home_goals" binding:"required,min=0"`
	AwayGoals *int `json:"away_goals" binding:"required,min=0"`
}

// @Summary Set Match Result
// @Tags Admin
// @ModuleID setMatchResult
// @Accept  json
// @Produce  json
// @Param id path string true "match id"
// @Param input body matchResultInput true "result"
// @Success 200
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admins/matches/{id}/result [patch]
func (h *Handler) setMatchResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFoundResponse(c, MatchNotFoundCode)
		return
	}

	var input matchResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Matches.SetResult(c.Request.Context(), id, *input.HomeGoals, *input.AwayGoals); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			notFoundResponse(c, MatchNotFoundCode)
			return
		}
		logger.Error("set match result failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}
