package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
)

var testStart = time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

func seedExperience(t *testing.T, env *testEnv, userID int64) *entity.WorkExperience {
	t.Helper()
	w, err := env.expSvc.CreateWorkExperience(userID, CreateWorkExperienceInput{
		JobTitle: "Engineer", Company: "Acme", StartDate: testStart,
	})
	require.NoError(t, err)
	return w
}

func TestCreateWorkExperienceUsesCallerProfile(t *testing.T) {
	env := newTestEnv(t)

	w := seedExperience(t, env, env.user1.ID)
	p1, err := env.profiles.GetByUserID(env.user1.ID)
	require.NoError(t, err)
	require.Equal(t, p1.ID, w.ProfileID)
	require.Equal(t, env.user1.ID, w.CreatedBy)
}

func TestCreateWorkExperienceWithoutProfile(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.auth.RegisterUser("noprof", "noprof@example.com", "password")
	require.NoError(t, err)

	_, err = env.expSvc.CreateWorkExperience(u.ID, CreateWorkExperienceInput{
		JobTitle: "Engineer", Company: "Acme", StartDate: testStart,
	})
	require.ErrorIs(t, err, ErrNoProfile)
}

func TestWorkExperienceCrossTenantAccess(t *testing.T) {
	env := newTestEnv(t)

	w := seedExperience(t, env, env.user1.ID)

	_, err := env.expSvc.GetWorkExperienceByID(env.user2.ID, w.ID)
	require.ErrorIs(t, err, ErrUnauthorizedAccess)

	title := "Hijacked"
	_, err = env.expSvc.UpdateWorkExperience(env.user2.ID, w.ID, UpdateWorkExperienceInput{JobTitle: &title})
	require.ErrorIs(t, err, ErrUnauthorizedAccess)

	err = env.expSvc.DeleteWorkExperience(env.user2.ID, w.ID)
	require.ErrorIs(t, err, ErrUnauthorizedAccess)

	// the owner still sees it untouched
	got, err := env.expSvc.GetWorkExperienceByID(env.user1.ID, w.ID)
	require.NoError(t, err)
	require.Equal(t, "Engineer", got.JobTitle)
}

func TestUpdateWorkExperienceDateInvariant(t *testing.T) {
	env := newTestEnv(t)

	w := seedExperience(t, env, env.user1.ID)
	before := testStart.AddDate(0, -1, 0)
	_, err := env.expSvc.UpdateWorkExperience(env.user1.ID, w.ID, UpdateWorkExperienceInput{EndDate: &before})
	require.ErrorIs(t, err, entity.ErrInvalid)

	after := testStart.AddDate(1, 0, 0)
	got, err := env.expSvc.UpdateWorkExperience(env.user1.ID, w.ID, UpdateWorkExperienceInput{EndDate: &after})
	require.NoError(t, err)
	require.Equal(t, after, *got.EndDate)
}

func TestDeleteWorkExperienceSoftDeletes(t *testing.T) {
	env := newTestEnv(t)

	w := seedExperience(t, env, env.user1.ID)
	require.NoError(t, env.expSvc.DeleteWorkExperience(env.user1.ID, w.ID))

	_, err := env.expSvc.GetWorkExperienceByID(env.user1.ID, w.ID)
	require.ErrorIs(t, err, ErrWorkExperienceNotFound)

	all, err := env.expSvc.GetAllMyWorkExperiences(env.user1.ID)
	require.NoError(t, err)
	require.Empty(t, all)

	// second delete reports not found
	err = env.expSvc.DeleteWorkExperience(env.user1.ID, w.ID)
	require.ErrorIs(t, err, ErrWorkExperienceNotFound)
}

func TestGetAllMyWorkExperiencesScopedToCaller(t *testing.T) {
	env := newTestEnv(t)

	seedExperience(t, env, env.user1.ID)
	seedExperience(t, env, env.user2.ID)

	mine, err := env.expSvc.GetAllMyWorkExperiences(env.user1.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
}
