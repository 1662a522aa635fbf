package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

const dateLayout = "2006-01-02"

type WorkExperienceHandler struct {
	Experiences *application.WorkExperienceService
}

func NewWorkExperienceHandler(experiences *application.WorkExperienceService) *WorkExperienceHandler {
	return &WorkExperienceHandler{Experiences: experiences}
}

type createWorkExperienceRequest struct {
	JobTitle    string  `json:"job_title" binding:"required"`
	Company     string  `json:"company" binding:"required"`
	Location    string  `json:"location"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description string  `json:"description"`
}

type updateWorkExperienceRequest struct {
	JobTitle    *string `json:"job_title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseDate(*s)
	return &t
}

func (h *WorkExperienceHandler) Create(c *gin.Context) {
	var req createWorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	w, err := h.Experiences.CreateWorkExperience(middleware.UserID(c), application.CreateWorkExperienceInput{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDatePtr(req.EndDate),
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, w, "work experience created", nil)
}

func (h *WorkExperienceHandler) List(c *gin.Context) {
	out, err := h.Experiences.GetAllMyWorkExperiences(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "", nil)
}

func (h *WorkExperienceHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	w, err := h.Experiences.GetWorkExperienceByID(middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, w, "", nil)
}

func (h *WorkExperienceHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateWorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	w, err := h.Experiences.UpdateWorkExperience(middleware.UserID(c), id, application.UpdateWorkExperienceInput{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   parseDatePtr(req.StartDate),
		EndDate:     parseDatePtr(req.EndDate),
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, w, "work experience updated", nil)
}

func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Experiences.DeleteWorkExperience(middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "work experience deleted", nil)
}
