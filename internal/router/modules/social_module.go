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

type SocialModule struct {
	Handler *handlers.SocialHandler
	Users   repository.UserRepository
}

func NewSocialModule(h *handlers.SocialHandler, users repository.UserRepository) *SocialModule {
	return &SocialModule{Handler: h, Users: users}
}

func (m *SocialModule) Register(rg *gin.RouterGroup) {
	// Public portfolio page, rate limited per IP
	publicLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.GET("/socials/public/:username", publicLimiter, m.Handler.ListPublic)

	auth := rg.Group("/socials")
	auth.Use(
		middleware.Auth(m.Users, container.GetJWT()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)

	admin := middleware.RequireRole(entity.RoleAdmin)
	{
		auth.POST("", admin, m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", admin, m.Handler.Update)
		auth.DELETE("/:id", admin, m.Handler.Delete)
	}
}
