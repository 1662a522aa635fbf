package application

import (
	"github.com/sirupsen/logrus"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

// ProjectService is the most involved sub-resource service: besides the shared
// ownership contract it validates optional work-experience links against the
// caller's own profile and manages two child collections with replace-all
// semantics.
type ProjectService struct {
	Projects    repository.ProjectRepository
	Techs       repository.ProjectTechRepository
	Previews    repository.ProjectPreviewRepository
	Experiences repository.WorkExperienceRepository
	Scope       *ProfileScope
	Logger      *logrus.Logger
}

func NewProjectService(
	projects repository.ProjectRepository,
	techs repository.ProjectTechRepository,
	previews repository.ProjectPreviewRepository,
	experiences repository.WorkExperienceRepository,
	scope *ProfileScope,
	logger *logrus.Logger,
) *ProjectService {
	return &ProjectService{
		Projects:    projects,
		Techs:       techs,
		Previews:    previews,
		Experiences: experiences,
		Scope:       scope,
		Logger:      logger,
	}
}

type PreviewInput struct {
	ImageURL  string `json:"image_url" binding:"required"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"order"`
}

type CreateProjectInput struct {
	Title            string
	Category         entity.ProjectCategory
	Description      string
	ThumbnailURL     string
	LiveURL          string
	RepoURL          string
	Featured         bool
	WorkExperienceID *int64
	TechnologyIDs    []int64
	Previews         []PreviewInput
}

// UpdateProjectInput: nil pointer fields are left unchanged. A nil
// TechnologyIDs/Previews slice leaves the child collection untouched; a
// non-nil slice (including an empty one) fully replaces it.
type UpdateProjectInput struct {
	Title            *string
	Category         *entity.ProjectCategory
	Description      *string
	ThumbnailURL     *string
	LiveURL          *string
	RepoURL          *string
	Featured         *bool
	WorkExperienceID *int64
	TechnologyIDs    []int64
	Previews         []PreviewInput
}

// verifyWorkExperienceOwnership ensures a project can only link to a work
// experience belonging to the caller's profile.
func (s *ProjectService) verifyWorkExperienceOwnership(userID int64, workExperienceID *int64) error {
	if workExperienceID == nil {
		return nil
	}
	w, err := s.Experiences.GetByID(*workExperienceID)
	if err != nil {
		return err
	}
	if w == nil {
		return ErrWorkExperienceNotFound
	}
	return s.Scope.VerifyOwnership(userID, w)
}

// CreateProject persists the project first, then its technology associations
// and previews. The steps are not atomic; a crash in between can leave
// children partially written, matching the storage-commit-per-call model.
func (s *ProjectService) CreateProject(userID int64, in CreateProjectInput) (*entity.Project, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}
	if err := s.verifyWorkExperienceOwnership(userID, in.WorkExperienceID); err != nil {
		return nil, err
	}

	p, err := entity.NewProject(profile.ID, in.Title, in.Category)
	if err != nil {
		return nil, err
	}
	p.Description = in.Description
	p.ThumbnailURL = in.ThumbnailURL
	p.LiveURL = in.LiveURL
	p.RepoURL = in.RepoURL
	p.Featured = in.Featured
	p.WorkExperienceID = in.WorkExperienceID
	p.CreatedBy = userID

	if err := s.Projects.Save(p); err != nil {
		return nil, err
	}

	if err := s.insertTechs(p.ID, userID, in.TechnologyIDs); err != nil {
		return nil, err
	}
	if err := s.insertPreviews(p.ID, userID, in.Previews); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) GetAllMyProjects(userID int64) ([]*entity.Project, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.Projects.GetAllByProfileID(profile.ID)
}

func (s *ProjectService) GetFeaturedMyProjects(userID int64) ([]*entity.Project, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.Projects.GetFeaturedByProfileID(profile.ID)
}

func (s *ProjectService) GetProjectByID(userID, id int64) (*entity.Project, error) {
	p, err := s.Projects.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProject merges scalar fields, then replaces the technology and preview
// collections when the caller supplied them. Replace-all is a delete-then-
// insert without a surrounding transaction.
func (s *ProjectService) UpdateProject(userID, id int64, in UpdateProjectInput) (*entity.Project, error) {
	existing, err := s.Projects.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProjectNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return nil, err
	}
	if err := s.verifyWorkExperienceOwnership(userID, in.WorkExperienceID); err != nil {
		return nil, err
	}

	updated := *existing
	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Category != nil {
		updated.Category = *in.Category
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if in.ThumbnailURL != nil {
		updated.ThumbnailURL = *in.ThumbnailURL
	}
	if in.LiveURL != nil {
		updated.LiveURL = *in.LiveURL
	}
	if in.RepoURL != nil {
		updated.RepoURL = *in.RepoURL
	}
	if in.Featured != nil {
		updated.Featured = *in.Featured
	}
	if in.WorkExperienceID != nil {
		updated.WorkExperienceID = in.WorkExperienceID
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Stamp(userID)

	if err := s.Projects.Update(&updated); err != nil {
		return nil, err
	}

	if in.TechnologyIDs != nil {
		if err := s.Techs.DeleteByProjectID(updated.ID, userID); err != nil {
			return nil, err
		}
		if err := s.insertTechs(updated.ID, userID, in.TechnologyIDs); err != nil {
			return nil, err
		}
	}

	if in.Previews != nil {
		old, err := s.Previews.GetByProjectID(updated.ID)
		if err != nil {
			return nil, err
		}
		for _, prev := range old {
			if _, err := s.Previews.Delete(prev.ID, userID); err != nil {
				return nil, err
			}
		}
		if err := s.insertPreviews(updated.ID, userID, in.Previews); err != nil {
			return nil, err
		}
	}

	return &updated, nil
}

func (s *ProjectService) DeleteProject(userID, id int64) error {
	existing, err := s.Projects.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProjectNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return err
	}

	ok, err := s.Projects.Delete(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProjectNotFound
	}
	s.Logger.WithFields(logrus.Fields{"project_id": id, "deleted_by": userID}).Info("project deleted")
	return nil
}

func (s *ProjectService) insertTechs(projectID, userID int64, techIDs []int64) error {
	for _, techID := range techIDs {
		pt := &entity.ProjectTech{
			Audit:     entity.Audit{IsActive: true, CreatedBy: userID},
			ProjectID: projectID,
			TechID:    techID,
		}
		if err := s.Techs.Save(pt); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProjectService) insertPreviews(projectID, userID int64, previews []PreviewInput) error {
	for _, in := range previews {
		pp, err := entity.NewProjectPreview(projectID, in.ImageURL, in.Caption, in.SortOrder)
		if err != nil {
			return err
		}
		pp.CreatedBy = userID
		if err := s.Previews.Save(pp); err != nil {
			return err
		}
	}
	return nil
}
