package repository

import "github.com/mvargas/portfolio-cms-api/internal/domain/entity"

type TechnologyRepository interface {
	GetByID(id int64) (*entity.Technology, error)
	GetAllByProfileID(profileID int64) ([]*entity.Technology, error)
	Save(t *entity.Technology) error
	Update(t *entity.Technology) error
	Delete(id, deletedBy int64) (bool, error)
}
