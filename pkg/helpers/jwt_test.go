package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute)

	token, err := m.CreateAccessToken("jane@example.com", entity.RoleSuperadmin, 0)
	require.NoError(t, err)

	claims, err := m.DecodeToken(token)
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", claims.Subject)
	require.Equal(t, entity.RoleSuperadmin, claims.Role)
}

func TestDecodeTokenRejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute)

	token, err := m.CreateAccessToken("jane@example.com", entity.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = m.DecodeToken(token)
	require.Error(t, err)
}

func TestDecodeTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", 15*time.Minute)
	verifier := NewJWTManager("secret-b", 15*time.Minute)

	token, err := issuer.CreateAccessToken("jane@example.com", entity.RoleAdmin, 0)
	require.NoError(t, err)

	_, err = verifier.DecodeToken(token)
	require.Error(t, err)
}

func TestDecodeTokenRejectsMissingSubject(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute)

	claims := &Claims{
		Role: entity.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	require.NoError(t, err)

	_, err = m.DecodeToken(token)
	require.ErrorIs(t, err, ErrMissingSubject)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)
	require.True(t, CompareHashAndPassword(hash, "password123"))
	require.False(t, CompareHashAndPassword(hash, "password124"))
}
