package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

type ClientHandler struct {
	Clients *application.ClientService
}

func NewClientHandler(clients *application.ClientService) *ClientHandler {
	return &ClientHandler{Clients: clients}
}

type createClientRequest struct {
	Name           string `json:"name" binding:"required"`
	Company        string `json:"company"`
	Feedback       string `json:"feedback"`
	ClientPhotoURL string `json:"client_photo_url" binding:"omitempty,url"`
	ProjectLink    string `json:"project_link" binding:"omitempty,url"`
}

type updateClientRequest struct {
	Name           *string `json:"name"`
	Company        *string `json:"company"`
	Feedback       *string `json:"feedback"`
	ClientPhotoURL *string `json:"client_photo_url" binding:"omitempty,url"`
	ProjectLink    *string `json:"project_link" binding:"omitempty,url"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	out, err := h.Clients.CreateClient(middleware.UserID(c), application.CreateClientInput{
		Name:           req.Name,
		Company:        req.Company,
		Feedback:       req.Feedback,
		ClientPhotoURL: req.ClientPhotoURL,
		ProjectLink:    req.ProjectLink,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "client created", nil)
}

func (h *ClientHandler) List(c *gin.Context) {
	out, err := h.Clients.GetAllMyClients(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "", nil)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	out, err := h.Clients.GetClientByID(middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "", nil)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}

	out, err := h.Clients.UpdateClient(middleware.UserID(c), id, application.UpdateClientInput{
		Name:           req.Name,
		Company:        req.Company,
		Feedback:       req.Feedback,
		ClientPhotoURL: req.ClientPhotoURL,
		ProjectLink:    req.ProjectLink,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "client updated", nil)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Clients.DeleteClient(middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "client deleted", nil)
}
