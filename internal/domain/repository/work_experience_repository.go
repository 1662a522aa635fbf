package repository

import "github.com/mvargas/portfolio-cms-api/internal/domain/entity"

type WorkExperienceRepository interface {
	GetByID(id int64) (*entity.WorkExperience, error)
	GetAllByProfileID(profileID int64) ([]*entity.WorkExperience, error)
	Save(w *entity.WorkExperience) error
	Update(w *entity.WorkExperience) error
	Delete(id, deletedBy int64) (bool, error)
}
