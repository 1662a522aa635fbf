package application

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndListSocials(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.socialSvc.CreateSocial(env.user1.ID, CreateSocialInput{
		Platform: "github", URL: "https://github.com/alice", SortOrder: 1,
	})
	require.NoError(t, err)
	_, err = env.socialSvc.CreateSocial(env.user2.ID, CreateSocialInput{
		Platform: "linkedin", URL: "https://linkedin.com/in/bob",
	})
	require.NoError(t, err)

	mine, err := env.socialSvc.GetAllMySocials(env.user1.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "github", mine[0].Platform)
}

func TestGetPublicSocialsByUsername(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.socialSvc.CreateSocial(env.user1.ID, CreateSocialInput{
		Platform: "github", URL: "https://github.com/alice",
	})
	require.NoError(t, err)

	out, err := env.socialSvc.GetPublicSocials("alice")
	require.NoError(t, err)
	require.Len(t, out, 1)

	_, err = env.socialSvc.GetPublicSocials("ghost")
	require.ErrorIs(t, err, ErrUserNotFound)

	// user without a profile resolves to profile-not-found
	_, err = env.auth.RegisterUser("empty", "empty@example.com", "password")
	require.NoError(t, err)
	_, err = env.socialSvc.GetPublicSocials("empty")
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSocialOwnershipAndDelete(t *testing.T) {
	env := newTestEnv(t)

	s, err := env.socialSvc.CreateSocial(env.user1.ID, CreateSocialInput{
		Platform: "github", URL: "https://github.com/alice",
	})
	require.NoError(t, err)

	_, err = env.socialSvc.GetSocialByID(env.user2.ID, s.ID)
	require.ErrorIs(t, err, ErrUnauthorizedAccess)

	url := "https://github.com/mallory"
	_, err = env.socialSvc.UpdateSocial(env.user2.ID, s.ID, UpdateSocialInput{URL: &url})
	require.ErrorIs(t, err, ErrUnauthorizedAccess)

	require.NoError(t, env.socialSvc.DeleteSocial(env.user1.ID, s.ID))
	_, err = env.socialSvc.GetSocialByID(env.user1.ID, s.ID)
	require.ErrorIs(t, err, ErrSocialNotFound)
}
