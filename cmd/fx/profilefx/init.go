package profilefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"essentia/internal/api/controllers"
	"essentia/internal/repositories"
	"essentia/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService, provideProfilesController)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(
	profileRepo repositories.ProfileRepository,
	questionRepo repositories.QuestionRepository,
	catalogService services.CatalogServiceInterface,
) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, questionRepo, catalogService)
}

func provideProfilesController(profileService services.ProfileServiceInterface) *controllers.ProfilesController {
	return controllers.NewProfilesController(profileService)
}
