package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/container"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
	handlers "github.com/mvargas/portfolio-cms-api/internal/interface/http"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   repository.UserRepository
}

func NewAuthModule(h *handlers.AuthHandler, users repository.UserRepository) *AuthModule {
	return &AuthModule{Handler: h, Users: users}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, container.GetJWT()))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
