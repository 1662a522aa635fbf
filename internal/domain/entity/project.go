package entity

import (
	"fmt"
	"strings"
)

// ProjectCategory classifies a portfolio project.
type ProjectCategory string

const (
	CategoryFullstack ProjectCategory = "fullstack"
	CategoryBackend   ProjectCategory = "backend"
	CategoryFrontend  ProjectCategory = "frontend"
)

func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryFullstack, CategoryBackend, CategoryFrontend:
		return true
	}
	return false
}

// Project is a portfolio entry. It may link to one of the owner's work
// experiences and owns two child collections: technology associations
// (ProjectTech) and preview images (ProjectPreview).
type Project struct {
	Audit
	ProfileID        int64           `json:"profile_id"`
	Title            string          `json:"title"`
	Category         ProjectCategory `json:"category"`
	Description      string          `json:"description,omitempty"`
	ThumbnailURL     string          `json:"thumbnail_url,omitempty"`
	LiveURL          string          `json:"live_url,omitempty"`
	RepoURL          string          `json:"repo_url,omitempty"`
	Featured         bool            `json:"featured"`
	WorkExperienceID *int64          `json:"work_experience_id,omitempty"`
}

func NewProject(profileID int64, title string, category ProjectCategory) (*Project, error) {
	p := &Project{
		Audit:     Audit{IsActive: true},
		ProfileID: profileID,
		Title:     strings.TrimSpace(title),
		Category:  category,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: unknown project category %q", ErrInvalid, p.Category)
	}
	return nil
}

func (p *Project) OwnerProfileID() int64 { return p.ProfileID }

// ProjectTech is the join row linking a project to a technology.
type ProjectTech struct {
	Audit
	ProjectID int64 `json:"project_id"`
	TechID    int64 `json:"tech_id"`
}

// ProjectPreview is a gallery image attached to a project.
type ProjectPreview struct {
	Audit
	ProjectID int64  `json:"project_id"`
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption,omitempty"`
	SortOrder int    `json:"order"`
}

func NewProjectPreview(projectID int64, imageURL, caption string, sortOrder int) (*ProjectPreview, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, fmt.Errorf("%w: preview image url is required", ErrInvalid)
	}
	return &ProjectPreview{
		Audit:     Audit{IsActive: true},
		ProjectID: projectID,
		ImageURL:  strings.TrimSpace(imageURL),
		Caption:   caption,
		SortOrder: sortOrder,
	}, nil
}
