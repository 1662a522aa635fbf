package repository

import "github.com/mvargas/portfolio-cms-api/internal/domain/entity"

type SocialRepository interface {
	GetByID(id int64) (*entity.Social, error)
	GetAllByProfileID(profileID int64) ([]*entity.Social, error)
	Save(s *entity.Social) error
	Update(s *entity.Social) error
	Delete(id, deletedBy int64) (bool, error)
}
