package router

import (
	"github.com/mvargas/portfolio-cms-api/internal/application"
	"github.com/mvargas/portfolio-cms-api/internal/container"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
	pginfra "github.com/mvargas/portfolio-cms-api/internal/infrastructure/postgres"
	handlers "github.com/mvargas/portfolio-cms-api/internal/interface/http"
	"github.com/mvargas/portfolio-cms-api/internal/router/modules"
)

// InitModules builds the repository, service and handler graph from the
// container singletons and registers every feature module.
// Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	var users repository.UserRepository = pginfra.NewUserRepository(pool)
	var profiles repository.ProfileRepository = pginfra.NewProfileRepository(pool)
	var experiences repository.WorkExperienceRepository = pginfra.NewWorkExperienceRepository(pool)
	var projects repository.ProjectRepository = pginfra.NewProjectRepository(pool)
	var techLinks repository.ProjectTechRepository = pginfra.NewProjectTechRepository(pool)
	var previews repository.ProjectPreviewRepository = pginfra.NewProjectPreviewRepository(pool)
	var technologies repository.TechnologyRepository = pginfra.NewTechnologyRepository(pool)
	var clients repository.ClientRepository = pginfra.NewClientRepository(pool)
	var socials repository.SocialRepository = pginfra.NewSocialRepository(pool)

	scope := application.NewProfileScope(profiles)

	authSvc := application.NewAuthService(users, container.GetJWT(), logger, cfg.SuperadminEmail)
	profileSvc := application.NewProfileService(profiles, logger)
	experienceSvc := application.NewWorkExperienceService(experiences, scope, logger)
	projectSvc := application.NewProjectService(projects, techLinks, previews, experiences, scope, logger)
	technologySvc := application.NewTechnologyService(technologies, scope, logger)
	clientSvc := application.NewClientService(clients, scope, logger)
	socialSvc := application.NewSocialService(socials, users, scope, logger)
	imageSvc := application.NewImageService(container.GetGCS(), cfg.GCSBucket, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc), users))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc), users))
	r.Add(modules.NewWorkExperienceModule(handlers.NewWorkExperienceHandler(experienceSvc), users))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc), users))
	r.Add(modules.NewTechnologyModule(handlers.NewTechnologyHandler(technologySvc), users))
	r.Add(modules.NewClientModule(handlers.NewClientHandler(clientSvc), users))
	r.Add(modules.NewSocialModule(handlers.NewSocialHandler(socialSvc), users))
	r.Add(modules.NewImagesModule(handlers.NewImageHandler(imageSvc), users))
}
