package planner_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripforge/internal/config"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	providePreferenceService,
	provideRecommendService,
	providePlannerService,
	provideItineraryService,
	provideTripRepo,
	provideTripService)

func providePreferenceService(logger *zap.Logger) services.PreferenceServiceInterface {
	return services.NewPreferenceService(logger)
}

func provideRecommendService(
	catalogService services.CatalogServiceInterface,
	geoService services.GeoServiceInterface,
	preferenceService services.PreferenceServiceInterface,
	logger *zap.Logger,
) services.RecommendServiceInterface {
	return services.NewRecommendService(catalogService, geoService, preferenceService, logger)
}

func providePlannerService(cfg *config.Config, logger *zap.Logger) services.PlannerServiceInterface {
	return services.NewPlannerService(cfg.Planner, logger)
}

func provideItineraryService(cfg *config.Config, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(cfg.Planner, logger)
}

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}
