package application

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

type WorkExperienceService struct {
	Experiences repository.WorkExperienceRepository
	Scope       *ProfileScope
	Logger      *logrus.Logger
}

func NewWorkExperienceService(experiences repository.WorkExperienceRepository, scope *ProfileScope, logger *logrus.Logger) *WorkExperienceService {
	return &WorkExperienceService{Experiences: experiences, Scope: scope, Logger: logger}
}

type CreateWorkExperienceInput struct {
	JobTitle    string
	Company     string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
}

type UpdateWorkExperienceInput struct {
	JobTitle    *string
	Company     *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	Description *string
}

// CreateWorkExperience attaches the record to the caller's own profile; the
// profile id never comes from the request.
func (s *WorkExperienceService) CreateWorkExperience(userID int64, in CreateWorkExperienceInput) (*entity.WorkExperience, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}

	w, err := entity.NewWorkExperience(profile.ID, in.JobTitle, in.Company, in.StartDate)
	if err != nil {
		return nil, err
	}
	w.Location = in.Location
	w.EndDate = in.EndDate
	w.Description = in.Description
	w.CreatedBy = userID
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := s.Experiences.Save(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkExperienceService) GetAllMyWorkExperiences(userID int64) ([]*entity.WorkExperience, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.Experiences.GetAllByProfileID(profile.ID)
}

func (s *WorkExperienceService) GetWorkExperienceByID(userID, id int64) (*entity.WorkExperience, error) {
	w, err := s.Experiences.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWorkExperienceNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkExperienceService) UpdateWorkExperience(userID, id int64, in UpdateWorkExperienceInput) (*entity.WorkExperience, error) {
	existing, err := s.Experiences.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrWorkExperienceNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return nil, err
	}

	updated := *existing
	if in.JobTitle != nil {
		updated.JobTitle = *in.JobTitle
	}
	if in.Company != nil {
		updated.Company = *in.Company
	}
	if in.Location != nil {
		updated.Location = *in.Location
	}
	if in.StartDate != nil {
		updated.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		updated.EndDate = in.EndDate
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Stamp(userID)

	if err := s.Experiences.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *WorkExperienceService) DeleteWorkExperience(userID, id int64) error {
	existing, err := s.Experiences.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrWorkExperienceNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return err
	}

	ok, err := s.Experiences.Delete(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkExperienceNotFound
	}
	s.Logger.WithFields(logrus.Fields{"work_experience_id": id, "deleted_by": userID}).Info("work experience deleted")
	return nil
}
