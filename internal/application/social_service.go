package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

type SocialService struct {
	Socials repository.SocialRepository
	Users   repository.UserRepository
	Scope   *ProfileScope
	Logger  *logrus.Logger
}

func NewSocialService(socials repository.SocialRepository, users repository.UserRepository, scope *ProfileScope, logger *logrus.Logger) *SocialService {
	return &SocialService{Socials: socials, Users: users, Scope: scope, Logger: logger}
}

type CreateSocialInput struct {
	Platform  string
	URL       string
	IconName  string
	SortOrder int
}

type UpdateSocialInput struct {
	Platform  *string
	URL       *string
	IconName  *string
	SortOrder *int
}

func (s *SocialService) CreateSocial(userID int64, in CreateSocialInput) (*entity.Social, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}

	so, err := entity.NewSocial(profile.ID, in.Platform, in.URL)
	if err != nil {
		return nil, err
	}
	so.IconName = in.IconName
	so.SortOrder = in.SortOrder
	so.CreatedBy = userID

	if err := s.Socials.Save(so); err != nil {
		return nil, err
	}
	return so, nil
}

func (s *SocialService) GetAllMySocials(userID int64) ([]*entity.Social, error) {
	profile, err := s.Scope.CallerProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.Socials.GetAllByProfileID(profile.ID)
}

// GetPublicSocials lists a user's social links by username for the public
// portfolio page; no authentication involved.
func (s *SocialService) GetPublicSocials(username string) ([]*entity.Social, error) {
	u, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	profile, err := s.Scope.CallerProfile(u.ID)
	if errors.Is(err, ErrNoProfile) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Socials.GetAllByProfileID(profile.ID)
}

func (s *SocialService) GetSocialByID(userID, id int64) (*entity.Social, error) {
	so, err := s.Socials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if so == nil {
		return nil, ErrSocialNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, so); err != nil {
		return nil, err
	}
	return so, nil
}

func (s *SocialService) UpdateSocial(userID, id int64, in UpdateSocialInput) (*entity.Social, error) {
	existing, err := s.Socials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSocialNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return nil, err
	}

	updated := *existing
	if in.Platform != nil {
		updated.Platform = *in.Platform
	}
	if in.URL != nil {
		updated.URL = *in.URL
	}
	if in.IconName != nil {
		updated.IconName = *in.IconName
	}
	if in.SortOrder != nil {
		updated.SortOrder = *in.SortOrder
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Stamp(userID)

	if err := s.Socials.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *SocialService) DeleteSocial(userID, id int64) error {
	existing, err := s.Socials.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSocialNotFound
	}
	if err := s.Scope.VerifyOwnership(userID, existing); err != nil {
		return err
	}

	ok, err := s.Socials.Delete(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSocialNotFound
	}
	return nil
}
