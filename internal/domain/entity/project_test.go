package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject(3, "  Portfolio Site ", CategoryFullstack)
	require.NoError(t, err)
	require.Equal(t, "Portfolio Site", p.Title)
	require.Equal(t, int64(3), p.OwnerProfileID())

	_, err = NewProject(3, "   ", CategoryBackend)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = NewProject(3, "API", ProjectCategory("mobile"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestNewProjectPreview(t *testing.T) {
	pv, err := NewProjectPreview(9, " https://cdn.example.com/a.png ", "home page", 2)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/a.png", pv.ImageURL)
	require.Equal(t, 2, pv.SortOrder)

	_, err = NewProjectPreview(9, "   ", "", 0)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestTechnologyCategories(t *testing.T) {
	tech, err := NewTechnology(5, " Go ", TechBackend)
	require.NoError(t, err)
	require.Equal(t, "Go", tech.Name)

	_, err = NewTechnology(5, "Go", TechnologyCategory("embedded"))
	require.ErrorIs(t, err, ErrInvalid)
}
