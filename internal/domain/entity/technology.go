package entity

import (
	"fmt"
	"strings"
)

// TechnologyCategory groups a skill on the public portfolio page.
type TechnologyCategory string

const (
	TechFrontend     TechnologyCategory = "frontend"
	TechBackend      TechnologyCategory = "backend"
	TechDatabases    TechnologyCategory = "databases"
	TechAPIs         TechnologyCategory = "apis"
	TechDevTools     TechnologyCategory = "dev_tools"
	TechCloud        TechnologyCategory = "cloud"
	TechTesting      TechnologyCategory = "testing"
	TechArchitecture TechnologyCategory = "architecture"
	TechSecurity     TechnologyCategory = "security"
)

func (c TechnologyCategory) Valid() bool {
	switch c {
	case TechFrontend, TechBackend, TechDatabases, TechAPIs, TechDevTools,
		TechCloud, TechTesting, TechArchitecture, TechSecurity:
		return true
	}
	return false
}

// Technology is a skill owned by a profile, referenced from projects through
// ProjectTech rows.
type Technology struct {
	Audit
	ProfileID int64              `json:"profile_id"`
	Name      string             `json:"name"`
	Category  TechnologyCategory `json:"category"`
	IconURL   string             `json:"icon_url,omitempty"`
}

func NewTechnology(profileID int64, name string, category TechnologyCategory) (*Technology, error) {
	t := &Technology{
		Audit:     Audit{IsActive: true},
		ProfileID: profileID,
		Name:      strings.TrimSpace(name),
		Category:  category,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Technology) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: technology name is required", ErrInvalid)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: unknown technology category %q", ErrInvalid, t.Category)
	}
	return nil
}

func (t *Technology) OwnerProfileID() int64 { return t.ProfileID }
