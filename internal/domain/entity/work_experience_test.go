package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewWorkExperience(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	w, err := NewWorkExperience(7, "  Engineer ", " Acme ", start)
	require.NoError(t, err)
	require.Equal(t, "Engineer", w.JobTitle)
	require.Equal(t, "Acme", w.Company)
	require.Equal(t, int64(7), w.OwnerProfileID())

	_, err = NewWorkExperience(7, "", "Acme", start)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = NewWorkExperience(7, "Engineer", "Acme", time.Time{})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestWorkExperienceEndDateOrdering(t *testing.T) {
	start := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	w, err := NewWorkExperience(1, "Engineer", "Acme", start)
	require.NoError(t, err)

	before := start.AddDate(0, -1, 0)
	w.EndDate = &before
	require.ErrorIs(t, w.Validate(), ErrInvalid)

	same := start
	w.EndDate = &same
	require.NoError(t, w.Validate())

	after := start.AddDate(1, 0, 0)
	w.EndDate = &after
	require.NoError(t, w.Validate())
}
