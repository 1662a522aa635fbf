package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/interface/middleware"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

type ImageHandler struct {
	Images *application.ImageService
}

func NewImageHandler(images *application.ImageService) *ImageHandler {
	return &ImageHandler{Images: images}
}

// Upload accepts a multipart "file" field plus an optional "folder" form value
// and returns the public URL of the stored image.
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "could not read file", nil)
		return
	}
	defer f.Close()

	url, err := h.Images.UploadImage(
		c.Request.Context(),
		middleware.UserID(c),
		f,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		c.PostForm("folder"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "image uploaded", nil)
}
