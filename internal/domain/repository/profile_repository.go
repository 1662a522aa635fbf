package repository

import "github.com/mvargas/portfolio-cms-api/internal/domain/entity"

// ProfileRepository persists the one-profile-per-user aggregate root.
// GetByUserID returns (nil, nil) when the user has no active profile.
type ProfileRepository interface {
	GetByUserID(userID int64) (*entity.Profile, error)
	Save(p *entity.Profile) error
	Update(p *entity.Profile) error
}
