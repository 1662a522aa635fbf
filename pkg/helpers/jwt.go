package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
)

var ErrMissingSubject = errors.New("token has no subject claim")

// JWTManager is the token port: it issues and verifies signed access tokens
// carrying the user's email as subject and their role as a custom claim.
type JWTManager struct {
	Secret    []byte
	AccessTTL time.Duration
}

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), AccessTTL: accessTTL}
}

type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs a token for the given subject email. A zero ttl
// falls back to the manager's configured AccessTTL.
func (m *JWTManager) CreateAccessToken(email string, role entity.Role, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = m.AccessTTL
	}
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// DecodeToken verifies the signature and expiry and returns the claims.
// Tokens without a subject are rejected even when otherwise valid.
func (m *JWTManager) DecodeToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
