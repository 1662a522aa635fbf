package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

type SocialHandler struct {
	Socials *application.SocialService
}

func NewSocialHandler(socials *application.SocialService) *SocialHandler {
	return &SocialHandler{Socials: socials}
}

type createSocialRequest struct {
	Platform  string `json:"platform" binding:"required"`
	URL       string `json:"url" binding:"required,url"`
	IconName  string `json:"icon_name"`
	SortOrder int    `json:"order"`
}

type updateSocialRequest struct {
	Platform  *string `json:"platform"`
	URL       *string `json:"url" binding:"omitempty,url"`
	IconName  *string `json:"icon_name"`
	SortOrder *int    `json:"order"`
}

func (h *SocialHandler) Create(c *gin.Context) {
	var req createSocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	s, err := h.Socials.CreateSocial(middleware.UserID(c), application.CreateSocialInput{
		Platform:  req.Platform,
		URL:       req.URL,
		IconName:  req.IconName,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, s, "social link created", nil)
}

func (h *SocialHandler) List(c *gin.Context) {
	out, err := h.Socials.GetAllMySocials(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "", nil)
}

// ListPublic serves a user's social links on the public portfolio page.
func (h *SocialHandler) ListPublic(c *gin.Context) {
	out, err := h.Socials.GetPublicSocials(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "", nil)
}

func (h *SocialHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	s, err := h.Socials.GetSocialByID(middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, s, "", nil)
}

func (h *SocialHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateSocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	s, err := h.Socials.UpdateSocial(middleware.UserID(c), id, application.UpdateSocialInput{
		Platform:  req.Platform,
		URL:       req.URL,
		IconName:  req.IconName,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, s, "social link updated", nil)
}

func (h *SocialHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Socials.DeleteSocial(middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "social link deleted", nil)
}
