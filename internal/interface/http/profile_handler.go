package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

type ProfileHandler struct {
	Profiles *application.ProfileService
}

func NewProfileHandler(profiles *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

type createProfileRequest struct {
	Name         string `json:"name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	CurrentTitle string `json:"current_title"`
	BioSummary   string `json:"bio_summary" binding:"omitempty,max=500"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	PhotoURL     string `json:"photo_url" binding:"omitempty,url"`
}

type updateProfileRequest struct {
	Name         *string `json:"name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	CurrentTitle *string `json:"current_title"`
	BioSummary   *string `json:"bio_summary" binding:"omitempty,max=500"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	PhotoURL     *string `json:"photo_url" binding:"omitempty,url"`
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	p, err := h.Profiles.CreateProfile(middleware.UserID(c), application.CreateProfileInput{
		Name:         req.Name,
		LastName:     req.LastName,
		Email:        req.Email,
		CurrentTitle: req.CurrentTitle,
		BioSummary:   req.BioSummary,
		Phone:        req.Phone,
		Location:     req.Location,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "profile created", nil)
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	p, err := h.Profiles.GetMyProfile(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "", nil)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	p, err := h.Profiles.UpdateMyProfile(middleware.UserID(c), application.UpdateProfileInput{
		Name:         req.Name,
		LastName:     req.LastName,
		Email:        req.Email,
		CurrentTitle: req.CurrentTitle,
		BioSummary:   req.BioSummary,
		Phone:        req.Phone,
		Location:     req.Location,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile updated", nil)
}
