package application

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/pkg/helpers"
)

// testEnv wires the full service graph over in-memory repositories. Two users
// with profiles are pre-seeded so ownership checks can be exercised across
// tenants.
type testEnv struct {
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	exps     *fakeWorkExperienceRepo
	projects *fakeProjectRepo
	techs    *fakeProjectTechRepo
	previews *fakeProjectPreviewRepo
	skills   *fakeTechnologyRepo
	clients  *fakeClientRepo
	socials  *fakeSocialRepo

	scope *ProfileScope

	auth         *AuthService
	profileSvc   *ProfileService
	expSvc       *WorkExperienceService
	projectSvc   *ProjectService
	skillSvc     *TechnologyService
	clientSvc    *ClientService
	socialSvc    *SocialService
	jwt          *helpers.JWTManager
	user1, user2 *entity.User
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:    newFakeUserRepo(),
		profiles: newFakeProfileRepo(),
		exps:     newFakeWorkExperienceRepo(),
		projects: newFakeProjectRepo(),
		techs:    newFakeProjectTechRepo(),
		previews: newFakeProjectPreviewRepo(),
		skills:   newFakeTechnologyRepo(),
		clients:  newFakeClientRepo(),
		socials:  newFakeSocialRepo(),
		jwt:      helpers.NewJWTManager("test-secret", 15*time.Minute),
	}
	logger := quietLogger()
	env.scope = NewProfileScope(env.profiles)

	env.auth = NewAuthService(env.users, env.jwt, logger, "root@example.com")
	env.profileSvc = NewProfileService(env.profiles, logger)
	env.expSvc = NewWorkExperienceService(env.exps, env.scope, logger)
	env.projectSvc = NewProjectService(env.projects, env.techs, env.previews, env.exps, env.scope, logger)
	env.skillSvc = NewTechnologyService(env.skills, env.scope, logger)
	env.clientSvc = NewClientService(env.clients, env.scope, logger)
	env.socialSvc = NewSocialService(env.socials, env.users, env.scope, logger)

	var err error
	env.user1, err = env.auth.RegisterUser("alice", "alice@example.com", "password1")
	require.NoError(t, err)
	env.user2, err = env.auth.RegisterUser("bob", "bob@example.com", "password2")
	require.NoError(t, err)

	_, err = env.profileSvc.CreateProfile(env.user1.ID, CreateProfileInput{
		Name: "Alice", LastName: "Smith", Email: "alice@example.com",
	})
	require.NoError(t, err)
	_, err = env.profileSvc.CreateProfile(env.user2.ID, CreateProfileInput{
		Name: "Bob", LastName: "Jones", Email: "bob@example.com",
	})
	require.NoError(t, err)

	return env
}
