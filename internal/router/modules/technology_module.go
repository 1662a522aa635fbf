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

type TechnologyModule struct {
	Handler *handlers.TechnologyHandler
	Users   repository.UserRepository
}

func NewTechnologyModule(h *handlers.TechnologyHandler, users repository.UserRepository) *TechnologyModule {
	return &TechnologyModule{Handler: h, Users: users}
}

func (m *TechnologyModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/technologies")
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
