package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripforge/internal/config"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo,
	provideWeatherRepo,
	provideGeoService,
	provideWeatherService,
	providePriceService,
	provideVisionService,
	provideCatalogService)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideWeatherRepo(db *gorm.DB) repositories.WeatherRepository {
	return repositories.NewWeatherRepository(db)
}

func provideGeoService(cfg *config.Config, logger *zap.Logger) services.GeoServiceInterface {
	return services.NewGeoService(cfg, services.NewInMemoryGeoCache(), logger)
}

func provideWeatherService(cfg *config.Config, weatherRepo repositories.WeatherRepository, logger *zap.Logger) services.WeatherServiceInterface {
	return services.NewWeatherService(cfg, weatherRepo, logger)
}

func providePriceService(logger *zap.Logger) services.PriceServiceInterface {
	return services.NewPriceService(logger)
}

func provideVisionService(logger *zap.Logger) services.VisionServiceInterface {
	return services.NewVisionService(logger)
}

func provideCatalogService(
	cfg *config.Config,
	geoService services.GeoServiceInterface,
	priceService services.PriceServiceInterface,
	vision services.VisionServiceInterface,
	catalogRepo repositories.CatalogRepository,
	logger *zap.Logger,
) services.CatalogServiceInterface {
	return services.NewCatalogService(cfg, geoService, priceService, vision, catalogRepo, logger)
}
