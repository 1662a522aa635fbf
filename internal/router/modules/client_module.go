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

type ClientModule struct {
	Handler *handlers.ClientHandler
	Users   repository.UserRepository
}

func NewClientModule(h *handlers.ClientHandler, users repository.UserRepository) *ClientModule {
	return &ClientModule{Handler: h, Users: users}
}

func (m *ClientModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/clients")
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
