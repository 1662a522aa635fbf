package application

import (
	"github.com/sirupsen/logrus"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

type TechnologyService struct {
	Technologies repository.TechnologyRepository
	Scope        *ProfileScope
	Logger       *logrus.Logger
}

func NewTechnologyService(technologies repository.TechnologyRepository, scope *ProfileScope, logger *logrus.Logger) *TechnologyService {
	return &TechnologyService{Technologies: technologies, Scope: scope, Logger: logger}
}

type CreateTechnologyInput struct {
	Name     string
	Category entity.TechnologyCategory
	IconURL  string
}

type UpdateTechnologyInput struct {
	Name     *string
	Category *entity.TechnologyCategory
	IconURL  *string
}

func (s *TechnologyService) CreateTechnology(userID int64, in CreateTechnologyInput) (*entity.Technology, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}

	t, err := entity.NewTechnology(profile.ID, in.Name, in.Category)
	if err != nil {
		return nil, err
	}
	t.IconURL = in.IconURL
	t.CreatedBy = userID

	if err := s.Technologies.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TechnologyService) GetAllMyTechnologies(userID int64) ([]*entity.Technology, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.Technologies.GetAllByProfileID(profile.ID)
}

func (s *TechnologyService) GetTechnologyByID(userID, id int64) (*entity.Technology, error) {
	t, err := s.Technologies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTechnologyNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TechnologyService) UpdateTechnology(userID, id int64, in UpdateTechnologyInput) (*entity.Technology, error) {
	existing, err := s.Technologies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTechnologyNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return nil, err
	}

	updated := *existing
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Category != nil {
		updated.Category = *in.Category
	}
	if in.IconURL != nil {
		updated.IconURL = *in.IconURL
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Stamp(userID)

	if err := s.Technologies.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *TechnologyService) DeleteTechnology(userID, id int64) error {
	existing, err := s.Technologies.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTechnologyNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return err
	}

	ok, err := s.Technologies.Delete(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTechnologyNotFound
	}
	return nil
}
