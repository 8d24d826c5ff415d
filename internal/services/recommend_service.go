package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"tripforge/internal/models/response_models"
)

// Fixed recommend-view sizes.
const (
	topHotels      = 2
	topCars        = 1
	topAttractions = 3
	topRestaurants = 3
)

// RecommendServiceInterface ranks candidate pools and exposes the top-N
// views the catalog endpoints serve. Scoring is a pure function of the
// candidate, the budget context and the injected preference oracle.
type RecommendServiceInterface interface {
	RecommendHotels(ctx context.Context, destination string, budget float64, start, end time.Time) ([]response_models.HotelOption, float64, float64)
	RecommendCars(ctx context.Context, destination string, budget float64, start, end time.Time, hotelLat, hotelLng float64, pickUpTime, dropOffTime string) []response_models.CarOption
	RecommendAttractions(ctx context.Context, destination string, hotelLat, hotelLng float64, preferIndoor bool) []response_models.AttractionOption
	RecommendRestaurants(ctx context.Context, destination string, hotelLat, hotelLng float64) []response_models.RestaurantOption

	ScoreLodging(budget, price, distance float64) float64
	ScoreAttraction(rating, distance, imageScore float64) float64
	ScoreDining(rating, distance float64) float64
}

type RecommendService struct {
	catalogService    CatalogServiceInterface
	geoService        GeoServiceInterface
	preferenceService PreferenceServiceInterface
	logger            *zap.Logger
}

func NewRecommendService(
	catalogService CatalogServiceInterface,
	geoService GeoServiceInterface,
	preferenceService PreferenceServiceInterface,
	logger *zap.Logger,
) RecommendServiceInterface {
	return &RecommendService{
		catalogService:    catalogService,
		geoService:        geoService,
		preferenceService: preferenceService,
		logger:            logger,
	}
}

// ScoreLodging also covers transport: both weigh predicted preference,
// budget headroom and proximity.
func (r *RecommendService) ScoreLodging(budget, price, distance float64) float64 {
	predicted := r.preferenceService.PredictPreference(price, distance)
	return 0.4*predicted + 0.3*(budget-price)/budget + 0.3*(5-distance)/5
}

func (r *RecommendService) ScoreAttraction(rating, distance, imageScore float64) float64 {
	return 0.5*rating + 0.5*(5-distance)/5 + 0.2*imageScore
}

func (r *RecommendService) ScoreDining(rating, distance float64) float64 {
	return 0.5*rating + 0.5*(5-distance)/5
}

func (r *RecommendService) RecommendHotels(ctx context.Context, destination string, budget float64, start, end time.Time) ([]response_models.HotelOption, float64, float64) {
	hotels := r.catalogService.FetchHotels(ctx, destination, budget, start, end)
	r.logger.Debug("hotels received", zap.String("destination", destination), zap.Int("count", len(hotels)))

	for i := range hotels {
		hotels[i].Score = r.ScoreLodging(budget, hotels[i].Price, hotels[i].Distance)
	}
	sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Score > hotels[j].Score })
	if len(hotels) > topHotels {
		hotels = hotels[:topHotels]
	}

	lat, lng := 0.0, 0.0
	if centralLat, centralLng, err := r.geoService.Coordinates(ctx, destination); err == nil {
		lat, lng = centralLat, centralLng
	} else {
		r.logger.Error("failed to fetch coordinates for recommendations",
			zap.String("destination", destination), zap.Error(err))
	}
	if len(hotels) > 0 && (hotels[0].Latitude != 0 || hotels[0].Longitude != 0) {
		lat, lng = hotels[0].Latitude, hotels[0].Longitude
	}
	return hotels, lat, lng
}

func (r *RecommendService) RecommendCars(ctx context.Context, destination string, budget float64, start, end time.Time, hotelLat, hotelLng float64, pickUpTime, dropOffTime string) []response_models.CarOption {
	cars := r.catalogService.FetchCars(ctx, destination, budget, start, end, hotelLat, hotelLng, pickUpTime, dropOffTime)
	r.logger.Debug("cars received", zap.String("destination", destination), zap.Int("count", len(cars)))

	for i := range cars {
		cars[i].Score = r.ScoreLodging(budget, cars[i].Price, cars[i].Distance)
	}
	sort.SliceStable(cars, func(i, j int) bool { return cars[i].Score > cars[j].Score })
	if len(cars) > topCars {
		cars = cars[:topCars]
	}
	return cars
}

func (r *RecommendService) RecommendAttractions(ctx context.Context, destination string, hotelLat, hotelLng float64, preferIndoor bool) []response_models.AttractionOption {
	attractions := r.catalogService.FetchAttractions(ctx, destination, hotelLat, hotelLng)
	r.logger.Debug("attractions received", zap.String("destination", destination), zap.Int("count", len(attractions)))

	if preferIndoor {
		indoor := make([]response_models.AttractionOption, 0, len(attractions))
		for _, a := range attractions {
			if a.IsIndoor {
				indoor = append(indoor, a)
			}
		}
		if len(indoor) == 0 {
			r.logger.Warn("no indoor attractions found, falling back to all attractions",
				zap.String("destination", destination))
		} else {
			attractions = indoor
		}
	}

	for i := range attractions {
		attractions[i].Score = r.ScoreAttraction(attractions[i].Rating, attractions[i].Distance, attractions[i].ImageScore)
	}
	sort.SliceStable(attractions, func(i, j int) bool { return attractions[i].Score > attractions[j].Score })
	if len(attractions) > topAttractions {
		attractions = attractions[:topAttractions]
	}
	return attractions
}

func (r *RecommendService) RecommendRestaurants(ctx context.Context, destination string, hotelLat, hotelLng float64) []response_models.RestaurantOption {
	restaurants := r.catalogService.FetchRestaurants(ctx, destination, hotelLat, hotelLng)
	r.logger.Debug("restaurants received", zap.String("destination", destination), zap.Int("count", len(restaurants)))

	for i := range restaurants {
		restaurants[i].Score = r.ScoreDining(restaurants[i].Rating, restaurants[i].Distance)
	}
	sort.SliceStable(restaurants, func(i, j int) bool { return restaurants[i].Score > restaurants[j].Score })
	if len(restaurants) > topRestaurants {
		restaurants = restaurants[:topRestaurants]
	}
	return restaurants
}
