package application

import (
	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

// Owned is any sub-resource that belongs to exactly one profile.
type Owned interface {
	OwnerProfileID() int64
}

// ProfileScope implements the ownership rule shared by every sub-resource
// service: resolve the caller's own profile fresh from storage and compare it
// against the stored resource's profile id. Caller-supplied profile ids are
// never trusted for authorization decisions.
type ProfileScope struct {
	profiles repository.ProfileRepository
}

func NewProfileScope(profiles repository.ProfileRepository) *ProfileScope {
	return &ProfileScope{profiles: profiles}
}

// CallerProfile looks up the profile owned by userID. Having a profile is a
// precondition for any sub-resource operation.
func (s *ProfileScope) CallerProfile(userID int64) (*entity.Profile, error) {
	p, err := s.profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	return p, nil
}

// VerifyOwnership checks that res belongs to userID's profile. The check runs
// against the already-stored resource, never against ids from the request.
func (s *ProfileScope) VerifyOwnership(userID int64, res Owned) error {
	p, err := s.CallerProfile(userID)
	if err != nil {
		return err
	}
	if res.OwnerProfileID() != p.ID {
		return ErrUnauthorizedAccess
	}
	return nil
}
