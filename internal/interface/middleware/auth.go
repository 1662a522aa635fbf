package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
	"github.com/mvargas/portfolio-cms-api/pkg/helpers"
	"github.com/mvargas/portfolio-cms-api/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
	CtxUserEmail   = "userEmail"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth validates the bearer token and resolves its subject email to a stored
// user, so a token for a since-removed account is rejected. On success the
// caller's id, email and role are injected into the Gin context.
// Token problems are authentication failures (401); role checks live in
// RequireRole and fail with 403.
func Auth(users repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		claims, err := jwt.DecodeToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}

		u, err := users.GetByEmail(claims.Subject)
		if err != nil || u == nil {
			response.AbortError(c, http.StatusUnauthorized, "could not validate credentials", nil)
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserEmail, u.Email)
		c.Set(CtxUserRoleKey, u.Role)
		c.Next()
	}
}

// RequireRole gates a route on the caller holding at least the given role.
// Must run after Auth.
func RequireRole(min entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(CtxUserRoleKey)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		r, ok := role.(entity.Role)
		if !ok || !r.AtLeast(min) {
			response.AbortError(c, http.StatusForbidden, "insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id from the Gin context.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
