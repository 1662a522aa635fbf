package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

type AuthHandler struct {
	Auth *application.AuthService
}

func NewAuthHandler(auth *application.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userView struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
}

func toUserView(u *entity.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	u, err := h.Auth.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserView(u), "user registered", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	result, err := h.Auth.LoginUser(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if result == nil {
		response.Error[any](c, http.StatusUnauthorized, "incorrect email or password", nil)
		return
	}
	response.Success(c, http.StatusOK, result, "login successful", nil)
}

// Me returns the authenticated caller's account.
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmail)
	u, err := h.Auth.GetUserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "", nil)
}
