package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fccardedeu/backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	adminCtx            = "adminId"
)

func (h *Handler) adminIdentityMiddleware(c *gin.Context) {
	id, err := h.parseAuthHeader(c)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Error("parse auth header failed", zap.Error(err))
		}
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	c.Set(adminCtx, id)
}

func (h *Handler) parseAuthHeader(c *gin.Context) (string, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return "", errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return "", errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return "", errors.New("token is empty")
	}

	return h.tokenManager.Parse(headerParts[1])
}

func (h *Handler) getAdminUUID(c *gin.Context) (uuid.UUID, error) {
	id, ok := c.Get(adminCtx)
	if !ok {
		return uuid.Nil, errors.New("admin id not found")
	}

	idStr, ok := id.(string)
	if !ok {
		return uuid.Nil, errors.New("admin id has wrong type")
	}

	return uuid.Parse(idStr)
}
