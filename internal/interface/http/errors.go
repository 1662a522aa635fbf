package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
	"github.com/mvargas/portfolio-cms-api/pkg/validation"
)

// respondError translates application sentinels into HTTP statuses so every
// handler shares one error surface.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalid):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrUserAlreadyExists),
		errors.Is(err, application.ErrProfileAlreadyExists):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrNoProfile),
		errors.Is(err, application.ErrNotAnImage):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrUnauthorizedAccess):
		response.Error[any](c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, application.ErrProfileNotFound),
		errors.Is(err, application.ErrWorkExperienceNotFound),
		errors.Is(err, application.ErrProjectNotFound),
		errors.Is(err, application.ErrTechnologyNotFound),
		errors.Is(err, application.ErrClientNotFound),
		errors.Is(err, application.ErrSocialNotFound),
		errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// respondBinding reports a request body that failed binding or validation.
func respondBinding(c *gin.Context, err error) {
	response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", validation.ToDetails(err))
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}
