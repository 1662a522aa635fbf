package repository

import "github.com/mvargas/portfolio-cms-api/internal/domain/entity"

type ProjectRepository interface {
	GetByID(id int64) (*entity.Project, error)
	GetAllByProfileID(profileID int64) ([]*entity.Project, error)
	GetFeaturedByProfileID(profileID int64) ([]*entity.Project, error)
	Save(p *entity.Project) error
	Update(p *entity.Project) error
	Delete(id, deletedBy int64) (bool, error)
}

// ProjectTechRepository manages the project↔technology join rows. Updates use
// replace-all semantics, so the only delete is by project.
type ProjectTechRepository interface {
	GetByProjectID(projectID int64) ([]*entity.ProjectTech, error)
	Save(pt *entity.ProjectTech) error
	DeleteByProjectID(projectID, deletedBy int64) error
}

type ProjectPreviewRepository interface {
	GetByProjectID(projectID int64) ([]*entity.ProjectPreview, error)
	Save(pp *entity.ProjectPreview) error
	Delete(id, deletedBy int64) (bool, error)
}
