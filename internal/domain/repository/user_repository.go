package repository

import "github.com/mvargas/portfolio-cms-api/internal/domain/entity"

// UserRepository defines the persistence contract for users. Lookups return
// (nil, nil) when no matching user exists.
type UserRepository interface {
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Save(u *entity.User) error
	Update(u *entity.User) error
}
