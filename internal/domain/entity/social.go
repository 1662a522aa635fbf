package entity

import (
	"fmt"
	"strings"
)

// Social is a link to an external platform (GitHub, LinkedIn, ...).
type Social struct {
	Audit
	ProfileID int64  `json:"profile_id"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	IconName  string `json:"icon_name,omitempty"`
	SortOrder int    `json:"order"`
}

func NewSocial(profileID int64, platform, url string) (*Social, error) {
	s := &Social{
		Audit:     Audit{IsActive: true},
		ProfileID: profileID,
		Platform:  strings.TrimSpace(platform),
		URL:       strings.TrimSpace(url),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Social) Validate() error {
	if s.Platform == "" {
		return fmt.Errorf("%w: platform is required", ErrInvalid)
	}
	if s.URL == "" {
		return fmt.Errorf("%w: url is required", ErrInvalid)
	}
	return nil
}

func (s *Social) OwnerProfileID() int64 { return s.ProfileID }
