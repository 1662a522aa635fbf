package application

import (
	"github.com/sirupsen/logrus"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

type ProfileService struct {
	Profiles repository.ProfileRepository
	Logger   *logrus.Logger
}

func NewProfileService(profiles repository.ProfileRepository, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, Logger: logger}
}

type CreateProfileInput struct {
	Name         string
	LastName     string
	Email        string
	CurrentTitle string
	BioSummary   string
	Phone        string
	Location     string
	PhotoURL     string
}

// UpdateProfileInput uses pointer fields: nil means "leave unchanged".
type UpdateProfileInput struct {
	Name         *string
	LastName     *string
	Email        *string
	CurrentTitle *string
	BioSummary   *string
	Phone        *string
	Location     *string
	PhotoURL     *string
}

// CreateProfile creates the caller's single profile. A second profile for the
// same user is always a conflict, regardless of field values.
func (s *ProfileService) CreateProfile(userID int64, in CreateProfileInput) (*entity.Profile, error) {
	existing, err := s.Profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	p, err := entity.NewProfile(userID, in.Name, in.LastName, in.Email)
	if err != nil {
		return nil, err
	}
	p.CurrentTitle = in.CurrentTitle
	p.BioSummary = in.BioSummary
	p.Phone = in.Phone
	p.Location = in.Location
	p.PhotoURL = in.PhotoURL
	p.CreatedBy = userID
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.Profiles.Save(p); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": userID, "profile_id": p.ID}).Info("profile created")
	return p, nil
}

func (s *ProfileService) GetMyProfile(userID int64) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// UpdateMyProfile merges the provided fields over the stored profile and
// re-validates the result, so update obeys the same invariants as create.
func (s *ProfileService) UpdateMyProfile(userID int64, in UpdateProfileInput) (*entity.Profile, error) {
	existing, err := s.Profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfileNotFound
	}

	updated := *existing
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.LastName != nil {
		updated.LastName = *in.LastName
	}
	if in.Email != nil {
		updated.Email = *in.Email
	}
	if in.CurrentTitle != nil {
		updated.CurrentTitle = *in.CurrentTitle
	}
	if in.BioSummary != nil {
		updated.BioSummary = *in.BioSummary
	}
	if in.Phone != nil {
		updated.Phone = *in.Phone
	}
	if in.Location != nil {
		updated.Location = *in.Location
	}
	if in.PhotoURL != nil {
		updated.PhotoURL = *in.PhotoURL
	}
	updated.Normalize()
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Stamp(userID)

	if err := s.Profiles.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
