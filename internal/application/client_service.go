package application

import (
	"github.com/sirupsen/logrus"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

type ClientService struct {
	Clients repository.ClientRepository
	Scope   *ProfileScope
	Logger  *logrus.Logger
}

func NewClientService(clients repository.ClientRepository, scope *ProfileScope, logger *logrus.Logger) *ClientService {
	return &ClientService{Clients: clients, Scope: scope, Logger: logger}
}

type CreateClientInput struct {
	Name           string
	Company        string
	Feedback       string
	ClientPhotoURL string
	ProjectLink    string
}

type UpdateClientInput struct {
	Name           *string
	Company        *string
	Feedback       *string
	ClientPhotoURL *string
	ProjectLink    *string
}

func (s *ClientService) CreateClient(userID int64, in CreateClientInput) (*entity.Client, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}

	c, err := entity.NewClient(profile.ID, in.Name)
	if err != nil {
		return nil, err
	}
	c.Company = in.Company
	c.Feedback = in.Feedback
	c.ClientPhotoURL = in.ClientPhotoURL
	c.ProjectLink = in.ProjectLink
	c.CreatedBy = userID

	if err := s.Clients.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) GetAllMyClients(userID int64) ([]*entity.Client, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.Clients.GetAllByProfileID(profile.ID)
}

func (s *ClientService) GetClientByID(userID, id int64) (*entity.Client, error) {
	c, err := s.Clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrClientNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) UpdateClient(userID, id int64, in UpdateClientInput) (*entity.Client, error) {
	existing, err := s.Clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrClientNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return nil, err
	}

	updated := *existing
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Company != nil {
		updated.Company = *in.Company
	}
	if in.Feedback != nil {
		updated.Feedback = *in.Feedback
	}
	if in.ClientPhotoURL != nil {
		updated.ClientPhotoURL = *in.ClientPhotoURL
	}
	if in.ProjectLink != nil {
		updated.ProjectLink = *in.ProjectLink
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Stamp(userID)

	if err := s.Clients.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ClientService) DeleteClient(userID, id int64) error {
	existing, err := s.Clients.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrClientNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return err
	}

	ok, err := s.Clients.Delete(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClientNotFound
	}
	return nil
}
