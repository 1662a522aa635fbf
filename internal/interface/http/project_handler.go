package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

type ProjectHandler struct {
	Projects *application.ProjectService
}

func NewProjectHandler(projects *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{Projects: projects}
}

type createProjectRequest struct {
	Title            string                     `json:"title" binding:"required"`
	Category         entity.ProjectCategory     `json:"category" binding:"required,oneof=fullstack backend frontend"`
	Description      string                     `json:"description"`
	ThumbnailURL     string                     `json:"thumbnail_url" binding:"omitempty,url"`
	LiveURL          string                     `json:"live_url" binding:"omitempty,url"`
	RepoURL          string                     `json:"repo_url" binding:"omitempty,url"`
	Featured         bool                       `json:"featured"`
	WorkExperienceID *int64                     `json:"work_experience_id"`
	TechnologyIDs    []int64                    `json:"technology_ids"`
	Previews         []application.PreviewInput `json:"previews" binding:"omitempty,dive"`
}

type updateProjectRequest struct {
	Title            *string                    `json:"title"`
	Category         *entity.ProjectCategory    `json:"category" binding:"omitempty,oneof=fullstack backend frontend"`
	Description      *string                    `json:"description"`
	ThumbnailURL     *string                    `json:"thumbnail_url" binding:"omitempty,url"`
	LiveURL          *string                    `json:"live_url" binding:"omitempty,url"`
	RepoURL          *string                    `json:"repo_url" binding:"omitempty,url"`
	Featured         *bool                      `json:"featured"`
	WorkExperienceID *int64                     `json:"work_experience_id"`
	TechnologyIDs    []int64                    `json:"technology_ids"`
	Previews         []application.PreviewInput `json:"previews" binding:"omitempty,dive"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	p, err := h.Projects.CreateProject(middleware.UserID(c), application.CreateProjectInput{
		Title:            req.Title,
		Category:         req.Category,
		Description:      req.Description,
		ThumbnailURL:     req.ThumbnailURL,
		LiveURL:          req.LiveURL,
		RepoURL:          req.RepoURL,
		Featured:         req.Featured,
		WorkExperienceID: req.WorkExperienceID,
		TechnologyIDs:    req.TechnologyIDs,
		Previews:         req.Previews,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "project created", nil)
}

func (h *ProjectHandler) List(c *gin.Context) {
	out, err := h.Projects.GetAllMyProjects(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "", nil)
}

func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	out, err := h.Projects.GetFeaturedMyProjects(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "", nil)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.Projects.GetProjectByID(middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "", nil)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	p, err := h.Projects.UpdateProject(middleware.UserID(c), id, application.UpdateProjectInput{
		Title:            req.Title,
		Category:         req.Category,
		Description:      req.Description,
		ThumbnailURL:     req.ThumbnailURL,
		LiveURL:          req.LiveURL,
		RepoURL:          req.RepoURL,
		Featured:         req.Featured,
		WorkExperienceID: req.WorkExperienceID,
		TechnologyIDs:    req.TechnologyIDs,
		Previews:         req.Previews,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "project updated", nil)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Projects.DeleteProject(middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "project deleted", nil)
}
