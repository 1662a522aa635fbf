package application

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
	"github.com/mvargas/portfolio-cms-api/pkg/helpers"
)

// normalizeEmail folds an address to the canonical form users are stored
// under, so lookups agree with what entity.NewUser persists.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthService handles registration and login. It only knows the hasher and
// token ports, never the crypto behind them.
type AuthService struct {
	Users           repository.UserRepository
	JWT             *helpers.JWTManager
	Logger          *logrus.Logger
	SuperadminEmail string
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, superadminEmail string) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, SuperadminEmail: superadminEmail}
}

// LoginResult is issued on successful authentication.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterUser creates a new user after checking both unique columns.
// The configured superadmin email gets the superadmin role, everyone else
// manages their own portfolio as admin.
func (s *AuthService) RegisterUser(username, email, password string) (*entity.User, error) {
	email = normalizeEmail(email)
	if existing, err := s.Users.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if existing, err := s.Users.GetByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	role := entity.RoleAdmin
	if s.SuperadminEmail != "" && email == normalizeEmail(s.SuperadminEmail) {
		role = entity.RoleSuperadmin
	}

	u, err := entity.NewUser(username, email, hash, role)
	if err != nil {
		return nil, err
	}
	if err := s.Users.Save(u); err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	return u, nil
}

// LoginUser verifies credentials and issues an access token. Bad credentials
// are an ordinary outcome, not a failure: both unknown email and wrong
// password resolve to a (nil, nil) sentinel so the boundary cannot tell them
// apart from each other, only from system errors.
func (s *AuthService) LoginUser(email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, nil
	}

	u.TouchLastLogin()
	if err := s.Users.Update(u); err != nil {
		return nil, err
	}

	token, err := s.JWT.CreateAccessToken(u.Email, u.Role, 0)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("access token generation failed")
		return nil, err
	}
	return &LoginResult{AccessToken: token, TokenType: "bearer"}, nil
}

// GetUserByEmail resolves a token subject to a user.
func (s *AuthService) GetUserByEmail(email string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
