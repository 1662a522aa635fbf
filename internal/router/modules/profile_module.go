package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/container"
	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
	handlers "github.com/mvargas/portfolio-cms-api/internal/interface/http"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Users   repository.UserRepository
}

func NewProfileModule(h *handlers.ProfileHandler, users repository.UserRepository) *ProfileModule {
	return &ProfileModule{Handler: h, Users: users}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/profile")
	auth.Use(
		middleware.Auth(m.Users, container.GetJWT()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)

	// Reads need authentication only; mutations need admin or above.
	admin := middleware.RequireRole(entity.RoleAdmin)
	{
		auth.POST("", admin, m.Handler.Create)
		auth.GET("/me", m.Handler.GetMine)
		auth.PUT("/me", admin, m.Handler.Update)
	}
}
