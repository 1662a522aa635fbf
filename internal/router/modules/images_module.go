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

type ImagesModule struct {
	Handler *handlers.ImageHandler
	Users   repository.UserRepository
}

func NewImagesModule(h *handlers.ImageHandler, users repository.UserRepository) *ImagesModule {
	return &ImagesModule{Handler: h, Users: users}
}

func (m *ImagesModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/images")
	auth.Use(
		middleware.Auth(m.Users, container.GetJWT()),
		middleware.RequireRole(entity.RoleAdmin),
		// Uploads are expensive; keep the per-user budget small.
		middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/upload", m.Handler.Upload)
	}
}
