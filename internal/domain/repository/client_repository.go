package repository

import "github.com/mvargas/portfolio-cms-api/internal/domain/entity"

type ClientRepository interface {
	GetByID(id int64) (*entity.Client, error)
	GetAllByProfileID(profileID int64) ([]*entity.Client, error)
	Save(c *entity.Client) error
	Update(c *entity.Client) error
	Delete(id, deletedBy int64) (bool, error)
}
