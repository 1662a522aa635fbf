package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/pkg/helpers"
)

type stubUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *stubUserRepo) GetByID(int64) (*entity.User, error)          { return nil, nil }
func (r *stubUserRepo) GetByUsername(string) (*entity.User, error)   { return nil, nil }
func (r *stubUserRepo) Save(*entity.User) error                      { return nil }
func (r *stubUserRepo) Update(*entity.User) error                    { return nil }
func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func authTestRouter(users *stubUserRepo, jwt *helpers.JWTManager, minRole entity.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/", Auth(users, jwt))
	if minRole != "" {
		grp.Use(RequireRole(minRole))
	}
	grp.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func TestAuthAcceptsValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Minute)
	users := &stubUserRepo{byEmail: map[string]*entity.User{
		"jane@example.com": {Audit: entity.Audit{ID: 42, IsActive: true}, Email: "jane@example.com", Role: entity.RoleAdmin},
	}}
	r := authTestRouter(users, jwt, "")

	token, err := jwt.CreateAccessToken("jane@example.com", entity.RoleAdmin, 0)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Minute)
	r := authTestRouter(&stubUserRepo{byEmail: map[string]*entity.User{}}, jwt, "")

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthRejectsTokenForRemovedUser(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Minute)
	r := authTestRouter(&stubUserRepo{byEmail: map[string]*entity.User{}}, jwt, "")

	token, err := jwt.CreateAccessToken("gone@example.com", entity.RoleAdmin, 0)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Minute)
	users := &stubUserRepo{byEmail: map[string]*entity.User{
		"admin@example.com": {Audit: entity.Audit{ID: 1, IsActive: true}, Email: "admin@example.com", Role: entity.RoleAdmin},
		"root@example.com":  {Audit: entity.Audit{ID: 2, IsActive: true}, Email: "root@example.com", Role: entity.RoleSuperadmin},
	}}
	r := authTestRouter(users, jwt, entity.RoleSuperadmin)

	adminToken, err := jwt.CreateAccessToken("admin@example.com", entity.RoleAdmin, 0)
	require.NoError(t, err)
	rootToken, err := jwt.CreateAccessToken("root@example.com", entity.RoleSuperadmin, 0)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+rootToken)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
