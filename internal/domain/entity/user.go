package entity

import (
	"fmt"
	"strings"
	"time"
)

// User is the aggregate root for authentication. Passwords are stored as
// bcrypt hashes in PasswordHash, never in plain text.
type User struct {
	Audit
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// NewUser validates the registration invariants before the user ever touches
// storage.
func NewUser(username, email, passwordHash string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", ErrInvalid)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email must be a valid address", ErrInvalid)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", ErrInvalid)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalid, role)
	}

	return &User{
		Audit:        Audit{IsActive: true},
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// TouchLastLogin stamps a successful login.
func (u *User) TouchLastLogin() {
	now := time.Now()
	u.LastLogin = &now
}
