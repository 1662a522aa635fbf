package entity

import (
	"errors"
	"time"
)

// ErrInvalid marks a domain validation failure. Constructors wrap it with a
// field-specific message so callers can match the whole family with errors.Is.
var ErrInvalid = errors.New("invalid entity")

// Audit carries the bookkeeping columns shared by every persisted entity.
// ID is assigned by the database on insert; IsActive is the soft-delete flag,
// repositories treat rows with IsActive=false as absent.
type Audit struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy int64     `json:"created_by,omitempty"`
	UpdatedBy int64     `json:"updated_by,omitempty"`
	IsActive  bool      `json:"is_active"`
}

// Stamp records who performed the latest mutation.
func (a *Audit) Stamp(userID int64) {
	a.UpdatedAt = time.Now()
	a.UpdatedBy = userID
}
