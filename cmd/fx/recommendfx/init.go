package recommendfx

import (
	"go.uber.org/fx"

	"essentia/internal/api/controllers"
	"essentia/internal/services"
)

var Module = fx.Provide(
	provideRecommendationService, provideRecommendationsController)

func provideRecommendationService(
	profileService services.ProfileServiceInterface,
	catalogService services.CatalogServiceInterface,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(profileService, catalogService)
}

func provideRecommendationsController(recommendationService services.RecommendationServiceInterface) *controllers.RecommendationsController {
	return controllers.NewRecommendationsController(recommendationService)
}
