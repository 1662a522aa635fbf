package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/pkg/helpers"
)

func TestRegisterUserDuplicates(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.RegisterUser("alice2", "alice@example.com", "password")
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = env.auth.RegisterUser("alice", "fresh@example.com", "password")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterUserSuperadminEmail(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.auth.RegisterUser("root", "root@example.com", "password")
	require.NoError(t, err)
	require.Equal(t, entity.RoleSuperadmin, u.Role)
	require.Equal(t, entity.RoleAdmin, env.user1.Role)
}

func TestRegisterAndLoginMixedCaseEmail(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.auth.RegisterUser("carol", " Carol@Example.COM ", "password3")
	require.NoError(t, err)
	require.Equal(t, "carol@example.com", u.Email)

	// repeating the exact same input is a conflict, not a storage error
	_, err = env.auth.RegisterUser("carol2", "Carol@Example.COM", "password3")
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	res, err := env.auth.LoginUser("Carol@Example.COM", "password3")
	require.NoError(t, err)
	require.NotNil(t, res)

	claims, err := env.jwt.DecodeToken(res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "carol@example.com", claims.Subject)
}

func TestRegisterUserSuperadminEmailCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.auth.RegisterUser("root", "Root@EXAMPLE.com", "password")
	require.NoError(t, err)
	require.Equal(t, entity.RoleSuperadmin, u.Role)
}

func TestRegisterUserHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.users.GetByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "password1", u.PasswordHash)
	require.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "password1"))
}

func TestLoginUser(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.auth.LoginUser("alice@example.com", "password1")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, "bearer", res.TokenType)

	claims, err := env.jwt.DecodeToken(res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Subject)
	require.Equal(t, entity.RoleAdmin, claims.Role)

	// login stamps last_login
	u, err := env.users.GetByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)
}

func TestLoginUserBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.auth.LoginUser("alice@example.com", "wrong")
	require.NoError(t, err)
	require.Nil(t, res)

	res, err = env.auth.LoginUser("nobody@example.com", "password1")
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestGetUserByEmail(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.auth.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, env.user1.ID, u.ID)

	_, err = env.auth.GetUserByEmail("ghost@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestJWTExpiry(t *testing.T) {
	env := newTestEnv(t)

	token, err := env.jwt.CreateAccessToken("alice@example.com", entity.RoleAdmin, -time.Minute)
	require.NoError(t, err)
	_, err = env.jwt.DecodeToken(token)
	require.Error(t, err)
}
