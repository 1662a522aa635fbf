package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

type TechnologyHandler struct {
	Technologies *application.TechnologyService
}

func NewTechnologyHandler(technologies *application.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{Technologies: technologies}
}

type createTechnologyRequest struct {
	Name     string                    `json:"name" binding:"required"`
	Category entity.TechnologyCategory `json:"category" binding:"required,oneof=frontend backend databases apis dev_tools cloud testing architecture security"`
	IconURL  string                    `json:"icon_url" binding:"omitempty,url"`
}

type updateTechnologyRequest struct {
	Name     *string                    `json:"name"`
	Category *entity.TechnologyCategory `json:"category" binding:"omitempty,oneof=frontend backend databases apis dev_tools cloud testing architecture security"`
	IconURL  *string                    `json:"icon_url" binding:"omitempty,url"`
}

func (h *TechnologyHandler) Create(c *gin.Context) {
	var req createTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	t, err := h.Technologies.CreateTechnology(middleware.UserID(c), application.CreateTechnologyInput{
		Name:     req.Name,
		Category: req.Category,
		IconURL:  req.IconURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "technology created", nil)
}

func (h *TechnologyHandler) List(c *gin.Context) {
	out, err := h.Technologies.GetAllMyTechnologies(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "", nil)
}

func (h *TechnologyHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.Technologies.GetTechnologyByID(middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "", nil)
}

func (h *TechnologyHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	t, err := h.Technologies.UpdateTechnology(middleware.UserID(c), id, application.UpdateTechnologyInput{
		Name:     req.Name,
		Category: req.Category,
		IconURL:  req.IconURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "technology updated", nil)
}

func (h *TechnologyHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Technologies.DeleteTechnology(middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "technology deleted", nil)
}
