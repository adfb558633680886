package v1

import (
	"github.com/fccardedeu/backend/internal/config"
	"github.com/fccardedeu/backend/internal/service"
	"github.com/fccardedeu/backend/pkg/auth"
	"github.com/fccardedeu/backend/pkg/cookiecrypt"
	"github.com/fccardedeu/backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// @title FC Cardedeu API
// @version 1.0
// @description Club website and membership backend

// @BasePath /api/v1

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
	cookies      *cookiecrypt.Codec
	drafts       *token.Manager
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
	cookies *cookiecrypt.Codec,
	drafts *token.Manager,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
		cookies:      cookies,
		drafts:       drafts,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initRegistrationRoutes(v1)
	h.initPaymentRoutes(v1)
	h.initNewsRoutes(v1)
	h.initSponsorRoutes(v1)
	h.initTeamRoutes(v1)
	h.initMatchRoutes(v1)
	h.initAdminRoutes(v1)
}
