package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tripforge/internal/config"
	"tripforge/internal/models/db_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

// CatalogServiceInterface supplies the four candidate pools the planning
// core consumes. Fetching never fails hard: a missing key or unreachable
// directory degrades to previously stored rows and, failing that, to a
// single placeholder candidate.
type CatalogServiceInterface interface {
	FetchHotels(ctx context.Context, destination string, budget float64, start, end time.Time) []response_models.HotelOption
	FetchCars(ctx context.Context, destination string, budget float64, start, end time.Time, hotelLat, hotelLng float64, pickUpTime, dropOffTime string) []response_models.CarOption
	FetchAttractions(ctx context.Context, destination string, hotelLat, hotelLng float64) []response_models.AttractionOption
	FetchRestaurants(ctx context.Context, destination string, hotelLat, hotelLng float64) []response_models.RestaurantOption
}

type CatalogService struct {
	HTTP             *http.Client
	PlacesKey        string
	PricelineKey     string
	PlacesSearchURL  string
	PlacesDetailsURL string
	PlacesPhotoURL   string
	PricelineURL     string
	CeilingFactor    float64

	geoService   GeoServiceInterface
	priceService PriceServiceInterface
	vision       VisionServiceInterface
	catalogRepo  repositories.CatalogRepository
	logger       *zap.Logger
}

func NewCatalogService(
	cfg *config.Config,
	geoService GeoServiceInterface,
	priceService PriceServiceInterface,
	vision VisionServiceInterface,
	catalogRepo repositories.CatalogRepository,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		HTTP:             &http.Client{Timeout: 10 * time.Second},
		PlacesKey:        cfg.Keys.GooglePlaces,
		PricelineKey:     cfg.Keys.Priceline,
		PlacesSearchURL:  "https://maps.googleapis.com/maps/api/place/textsearch/json",
		PlacesDetailsURL: "https://maps.googleapis.com/maps/api/place/details/json",
		PlacesPhotoURL:   "https://maps.googleapis.com/maps/api/place/photo",
		PricelineURL:     "https://priceline-com2.p.rapidapi.com/cars/search",
		CeilingFactor:    cfg.Planner.CeilingFactor,
		geoService:       geoService,
		priceService:     priceService,
		vision:           vision,
		catalogRepo:      catalogRepo,
		logger:           logger,
	}
}

// Placeholder candidates carry neutral defaults: rating 4.0, distance 1.0,
// one default review.

func PlaceholderHotel() response_models.HotelOption {
	return response_models.HotelOption{
		Name:     "Placeholder Hotel",
		Price:    100.0,
		Rating:   4.0,
		Distance: 1.0,
		Reviews:  []string{"Default review"},
	}
}

func PlaceholderCar() response_models.CarOption {
	return response_models.CarOption{
		Name:     "Placeholder Car",
		Company:  "Placeholder Company",
		Price:    50.0,
		Rating:   4.0,
		Distance: 1.0,
		Reviews:  []string{"Default review"},
	}
}

func PlaceholderAttraction() response_models.AttractionOption {
	return response_models.AttractionOption{
		Name:     "Placeholder Attraction",
		Rating:   4.0,
		Distance: 1.0,
		Reviews:  []string{"Default review"},
	}
}

func PlaceholderRestaurant() response_models.RestaurantOption {
	return response_models.RestaurantOption{
		Name:     "Placeholder Restaurant",
		Rating:   4.0,
		Distance: 1.0,
		Reviews:  []string{"Default review"},
	}
}

// ---- Google Places response shapes ----

type placesSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID    string  `json:"place_id"`
		Name       string  `json:"name"`
		Rating     float64 `json:"rating"`
		PriceLevel int     `json:"price_level"`
		Geometry   struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type placesDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Reviews []struct {
			Text string `json:"text"`
		} `json:"reviews"`
		Types  []string `json:"types"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"result"`
}

func (s *CatalogService) searchPlaces(ctx context.Context, query, placeType string) (*placesSearchResponse, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("type", placeType)
	q.Set("key", s.PlacesKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.PlacesSearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body placesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("places API status %q", body.Status)
	}
	return &body, nil
}

func (s *CatalogService) placeDetails(ctx context.Context, placeID, fields string) (*placesDetailsResponse, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", fields)
	q.Set("key", s.PlacesKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.PlacesDetailsURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body placesDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("place details status %q", body.Status)
	}
	return &body, nil
}

func reviewTexts(details *placesDetailsResponse) []string {
	out := make([]string, 0, 2)
	for i, r := range details.Result.Reviews {
		if i >= 2 {
			break
		}
		out = append(out, r.Text)
	}
	return out
}

func isIndoorType(types []string) bool {
	for _, t := range types {
		switch t {
		case "museum", "gallery", "indoor":
			return true
		}
	}
	return false
}

// ---- Hotels ----

func (s *CatalogService) FetchHotels(ctx context.Context, destination string, budget float64, start, end time.Time) []response_models.HotelOption {
	s.logger.Info("fetching hotels", zap.String("destination", destination), zap.Float64("budget", budget))

	if s.PlacesKey == "" {
		s.logger.Warn("GOOGLE_PLACES_API_KEY not set, using fallback hotels")
		return []response_models.HotelOption{PlaceholderHotel()}
	}

	centralLat, centralLng, err := s.geoService.Coordinates(ctx, destination)
	if err != nil {
		s.logger.Error("failed to fetch coordinates", zap.String("destination", destination), zap.Error(err))
		return s.storedHotelsOrPlaceholder(ctx, destination)
	}

	search, err := s.searchPlaces(ctx, "hotels in "+destination, "lodging")
	if err != nil {
		s.logger.Error("hotel search failed", zap.String("destination", destination), zap.Error(err))
		return s.storedHotelsOrPlaceholder(ctx, destination)
	}

	hotels := make([]response_models.HotelOption, 0, 10)
	for i, place := range search.Results {
		if i >= 10 {
			break
		}

		priceLevel := place.PriceLevel
		if priceLevel == 0 {
			priceLevel = 2
		}
		estimatedPrice := s.priceService.PredictPrice(float64(priceLevel)*50, start)
		if estimatedPrice > budget*s.CeilingFactor {
			s.logger.Debug("hotel exceeds budget ceiling, skipping",
				zap.String("name", place.Name), zap.Float64("price", estimatedPrice))
			continue
		}

		placeLat, placeLng := place.Geometry.Location.Lat, place.Geometry.Location.Lng
		distance := utils.HaversineDistance(centralLat, centralLng, placeLat, placeLng)

		details, err := s.placeDetails(ctx, place.PlaceID, "name,rating,reviews")
		if err != nil {
			s.logger.Error("hotel details failed", zap.String("name", place.Name), zap.Error(err))
			continue
		}
		reviews := reviewTexts(details)

		hotel := response_models.HotelOption{
			Name:      place.Name,
			Price:     estimatedPrice,
			Rating:    place.Rating,
			Distance:  distance,
			Latitude:  placeLat,
			Longitude: placeLng,
			Reviews:   reviews,
		}
		hotels = append(hotels, hotel)

		if s.catalogRepo != nil {
			record := &db_models.Hotel{
				Name:       hotel.Name,
				City:       destination,
				Price:      hotel.Price,
				Rating:     hotel.Rating,
				DistanceKm: hotel.Distance,
				Latitude:   placeLat,
				Longitude:  placeLng,
				Reviews:    reviews,
			}
			if err := s.catalogRepo.InsertHotel(ctx, record); err != nil {
				s.logger.Warn("failed to persist hotel", zap.Error(err))
			}
		}
	}

	if len(hotels) == 0 {
		s.logger.Warn("no hotels found within budget, using fallback", zap.String("destination", destination))
		return s.storedHotelsOrPlaceholder(ctx, destination)
	}
	return hotels
}

func (s *CatalogService) storedHotelsOrPlaceholder(ctx context.Context, destination string) []response_models.HotelOption {
	if s.catalogRepo != nil {
		stored, err := s.catalogRepo.ListHotelsByCity(ctx, destination, 10)
		if err == nil && len(stored) > 0 {
			out := make([]response_models.HotelOption, 0, len(stored))
			for _, h := range stored {
				out = append(out, response_models.HotelOption{
					Name:      h.Name,
					Price:     h.Price,
					Rating:    h.Rating,
					Distance:  h.DistanceKm,
					Latitude:  h.Latitude,
					Longitude: h.Longitude,
					Reviews:   h.Reviews,
				})
			}
			return out
		}
	}
	return []response_models.HotelOption{PlaceholderHotel()}
}

// ---- Cars ----

type pricelineResponse struct {
	Data []struct {
		VehicleName    string   `json:"vehicleName"`
		Price          float64  `json:"price"`
		Rating         float64  `json:"rating"`
		Company        string   `json:"company"`
		Reviews        []string `json:"reviews"`
		PickUpLocation struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"pickUpLocation"`
	} `json:"data"`
}

func (s *CatalogService) FetchCars(ctx context.Context, destination string, budget float64, start, end time.Time, hotelLat, hotelLng float64, pickUpTime, dropOffTime string) []response_models.CarOption {
	s.logger.Info("fetching cars", zap.String("destination", destination), zap.Float64("budget", budget))

	if s.PricelineKey == "" {
		s.logger.Warn("RAPIDAPI_KEY_PRICELINE not set, using fallback car")
		return []response_models.CarOption{PlaceholderCar()}
	}

	centralLat, centralLng, err := s.geoService.Coordinates(ctx, destination)
	if err != nil {
		s.logger.Error("failed to fetch coordinates", zap.String("destination", destination), zap.Error(err))
		return s.storedCarsOrPlaceholder(ctx, destination)
	}
	refLat, refLng := hotelLat, hotelLng
	if refLat == 0 && refLng == 0 {
		refLat, refLng = centralLat, centralLng
	}

	location := s.geoService.AirportCode(destination)
	if location == "" {
		location = fmt.Sprintf("%f,%f", centralLat, centralLng)
	}

	q := url.Values{}
	q.Set("pickUpLocation", location)
	q.Set("pickUpDate", utils.DateKey(start))
	q.Set("pickUpTime", pickUpTime)
	q.Set("dropOffLocation", location)
	q.Set("dropOffDate", utils.DateKey(end))
	q.Set("dropOffTime", dropOffTime)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.PricelineURL+"?"+q.Encode(), nil)
	if err != nil {
		return s.storedCarsOrPlaceholder(ctx, destination)
	}
	req.Header.Set("X-RapidAPI-Key", s.PricelineKey)
	req.Header.Set("X-RapidAPI-Host", "priceline-com2.p.rapidapi.com")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		s.logger.Error("car search failed", zap.String("destination", destination), zap.Error(err))
		return s.storedCarsOrPlaceholder(ctx, destination)
	}
	defer resp.Body.Close()

	var body pricelineResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		s.logger.Error("car response malformed", zap.Error(err))
		return s.storedCarsOrPlaceholder(ctx, destination)
	}
	if len(body.Data) == 0 {
		s.logger.Warn("no vehicles found in response")
		return s.storedCarsOrPlaceholder(ctx, destination)
	}

	cars := make([]response_models.CarOption, 0, 10)
	for i, vehicle := range body.Data {
		if i >= 10 {
			break
		}
		if vehicle.Price > budget*s.CeilingFactor {
			s.logger.Debug("car exceeds budget ceiling, skipping", zap.Float64("price", vehicle.Price))
			continue
		}

		vehicleLat, vehicleLng := vehicle.PickUpLocation.Latitude, vehicle.PickUpLocation.Longitude
		if vehicleLat == 0 && vehicleLng == 0 {
			vehicleLat, vehicleLng = refLat, refLng
		}
		distance := utils.HaversineDistance(refLat, refLng, vehicleLat, vehicleLng)

		name := vehicle.VehicleName
		if name == "" {
			name = "Unknown Car"
		}
		company := vehicle.Company
		if company == "" {
			company = "Unknown"
		}
		reviews := vehicle.Reviews
		if reviews == nil {
			reviews = []string{}
		}

		car := response_models.CarOption{
			Name:     name,
			Company:  company,
			Price:    vehicle.Price,
			Rating:   vehicle.Rating,
			Distance: distance,
			Reviews:  reviews,
		}
		cars = append(cars, car)

		if s.catalogRepo != nil {
			record := &db_models.Car{
				Name:       car.Name,
				Company:    car.Company,
				City:       destination,
				Price:      car.Price,
				Rating:     car.Rating,
				DistanceKm: car.Distance,
				Reviews:    reviews,
			}
			if err := s.catalogRepo.InsertCar(ctx, record); err != nil {
				s.logger.Warn("failed to persist car", zap.Error(err))
			}
		}
	}

	if len(cars) == 0 {
		s.logger.Warn("no cars found within budget, using fallback", zap.String("destination", destination))
		return s.storedCarsOrPlaceholder(ctx, destination)
	}
	if len(cars) > 5 {
		cars = cars[:5]
	}
	return cars
}

func (s *CatalogService) storedCarsOrPlaceholder(ctx context.Context, destination string) []response_models.CarOption {
	if s.catalogRepo != nil {
		stored, err := s.catalogRepo.ListCarsByCity(ctx, destination, 5)
		if err == nil && len(stored) > 0 {
			out := make([]response_models.CarOption, 0, len(stored))
			for _, c := range stored {
				out = append(out, response_models.CarOption{
					Name:     c.Name,
					Company:  c.Company,
					Price:    c.Price,
					Rating:   c.Rating,
					Distance: c.DistanceKm,
					Reviews:  c.Reviews,
				})
			}
			return out
		}
	}
	return []response_models.CarOption{PlaceholderCar()}
}

// ---- Attractions ----

func (s *CatalogService) FetchAttractions(ctx context.Context, destination string, hotelLat, hotelLng float64) []response_models.AttractionOption {
	s.logger.Info("fetching attractions", zap.String("destination", destination))

	if s.PlacesKey == "" {
		s.logger.Warn("GOOGLE_PLACES_API_KEY not set, using fallback attractions")
		return []response_models.AttractionOption{PlaceholderAttraction()}
	}

	centralLat, centralLng, err := s.geoService.Coordinates(ctx, destination)
	if err != nil {
		s.logger.Error("failed to fetch coordinates", zap.String("destination", destination), zap.Error(err))
		return s.storedAttractionsOrPlaceholder(ctx, destination)
	}
	refLat, refLng := hotelLat, hotelLng
	if refLat == 0 && refLng == 0 {
		refLat, refLng = centralLat, centralLng
	}

	search, err := s.searchPlaces(ctx, "attractions in "+destination, "tourist_attraction")
	if err != nil {
		s.logger.Error("attraction search failed", zap.String("destination", destination), zap.Error(err))
		return s.storedAttractionsOrPlaceholder(ctx, destination)
	}

	attractions := make([]response_models.AttractionOption, 0, 10)
	for i, place := range search.Results {
		if i >= 10 {
			break
		}

		placeLat, placeLng := place.Geometry.Location.Lat, place.Geometry.Location.Lng
		if placeLat == 0 && placeLng == 0 {
			placeLat, placeLng = refLat, refLng
		}
		distance := utils.HaversineDistance(refLat, refLng, placeLat, placeLng)

		details, err := s.placeDetails(ctx, place.PlaceID, "name,rating,reviews,types,photos")
		if err != nil {
			s.logger.Error("attraction details failed", zap.String("name", place.Name), zap.Error(err))
			continue
		}

		imageScore := 0.0
		if len(details.Result.Photos) > 0 {
			photoURL := fmt.Sprintf("%s?maxwidth=400&photoreference=%s&key=%s",
				s.PlacesPhotoURL, details.Result.Photos[0].PhotoReference, s.PlacesKey)
			imageScore = s.vision.ScoreImage(ctx, photoURL)
		}

		reviews := reviewTexts(details)
		attraction := response_models.AttractionOption{
			Name:       place.Name,
			Rating:     place.Rating,
			Distance:   distance,
			Latitude:   placeLat,
			Longitude:  placeLng,
			IsIndoor:   isIndoorType(details.Result.Types),
			ImageScore: imageScore,
			Reviews:    reviews,
		}
		attractions = append(attractions, attraction)

		if s.catalogRepo != nil {
			record := &db_models.Attraction{
				Name:       attraction.Name,
				City:       destination,
				Rating:     attraction.Rating,
				DistanceKm: attraction.Distance,
				Latitude:   placeLat,
				Longitude:  placeLng,
				IsIndoor:   attraction.IsIndoor,
				ImageScore: imageScore,
				Reviews:    reviews,
			}
			if err := s.catalogRepo.InsertAttraction(ctx, record); err != nil {
				s.logger.Warn("failed to persist attraction", zap.Error(err))
			}
		}
	}

	if len(attractions) == 0 {
		s.logger.Warn("no attractions found, using fallback", zap.String("destination", destination))
		return s.storedAttractionsOrPlaceholder(ctx, destination)
	}
	return attractions
}

func (s *CatalogService) storedAttractionsOrPlaceholder(ctx context.Context, destination string) []response_models.AttractionOption {
	if s.catalogRepo != nil {
		stored, err := s.catalogRepo.ListAttractionsByCity(ctx, destination, 10)
		if err == nil && len(stored) > 0 {
			out := make([]response_models.AttractionOption, 0, len(stored))
			for _, a := range stored {
				out = append(out, response_models.AttractionOption{
					Name:       a.Name,
					Rating:     a.Rating,
					Distance:   a.DistanceKm,
					Latitude:   a.Latitude,
					Longitude:  a.Longitude,
					IsIndoor:   a.IsIndoor,
					ImageScore: a.ImageScore,
					Reviews:    a.Reviews,
				})
			}
			return out
		}
	}
	return []response_models.AttractionOption{PlaceholderAttraction()}
}

// ---- Restaurants ----

func (s *CatalogService) FetchRestaurants(ctx context.Context, destination string, hotelLat, hotelLng float64) []response_models.RestaurantOption {
	s.logger.Info("fetching restaurants", zap.String("destination", destination))

	if s.PlacesKey == "" {
		s.logger.Warn("GOOGLE_PLACES_API_KEY not set, using fallback restaurants")
		return []response_models.RestaurantOption{PlaceholderRestaurant()}
	}

	centralLat, centralLng, err := s.geoService.Coordinates(ctx, destination)
	if err != nil {
		s.logger.Error("failed to fetch coordinates", zap.String("destination", destination), zap.Error(err))
		return s.storedRestaurantsOrPlaceholder(ctx, destination)
	}
	refLat, refLng := hotelLat, hotelLng
	if refLat == 0 && refLng == 0 {
		refLat, refLng = centralLat, centralLng
	}

	search, err := s.searchPlaces(ctx, "restaurants in "+destination, "restaurant")
	if err != nil {
		s.logger.Error("restaurant search failed", zap.String("destination", destination), zap.Error(err))
		return s.storedRestaurantsOrPlaceholder(ctx, destination)
	}

	restaurants := make([]response_models.RestaurantOption, 0, 10)
	for i, place := range search.Results {
		if i >= 10 {
			break
		}

		placeLat, placeLng := place.Geometry.Location.Lat, place.Geometry.Location.Lng
		if placeLat == 0 && placeLng == 0 {
			placeLat, placeLng = refLat, refLng
		}
		distance := utils.HaversineDistance(refLat, refLng, placeLat, placeLng)

		details, err := s.placeDetails(ctx, place.PlaceID, "name,rating,reviews")
		if err != nil {
			s.logger.Error("restaurant details failed", zap.String("name", place.Name), zap.Error(err))
			continue
		}

		reviews := reviewTexts(details)
		restaurant := response_models.RestaurantOption{
			Name:      place.Name,
			Rating:    place.Rating,
			Distance:  distance,
			Latitude:  placeLat,
			Longitude: placeLng,
			Reviews:   reviews,
		}
		restaurants = append(restaurants, restaurant)

		if s.catalogRepo != nil {
			record := &db_models.Restaurant{
				Name:       restaurant.Name,
				City:       destination,
				Rating:     restaurant.Rating,
				DistanceKm: restaurant.Distance,
				Latitude:   placeLat,
				Longitude:  placeLng,
				Reviews:    reviews,
			}
			if err := s.catalogRepo.InsertRestaurant(ctx, record); err != nil {
				s.logger.Warn("failed to persist restaurant", zap.Error(err))
			}
		}
	}

	if len(restaurants) == 0 {
		s.logger.Warn("no restaurants found, using fallback", zap.String("destination", destination))
		return s.storedRestaurantsOrPlaceholder(ctx, destination)
	}
	return restaurants
}

func (s *CatalogService) storedRestaurantsOrPlaceholder(ctx context.Context, destination string) []response_models.RestaurantOption {
	if s.catalogRepo != nil {
		stored, err := s.catalogRepo.ListRestaurantsByCity(ctx, destination, 10)
		if err == nil && len(stored) > 0 {
			out := make([]response_models.RestaurantOption, 0, len(stored))
			for _, r := range stored {
				out = append(out, response_models.RestaurantOption{
					Name:      r.Name,
					Rating:    r.Rating,
					Distance:  r.DistanceKm,
					Latitude:  r.Latitude,
					Longitude: r.Longitude,
					Reviews:   r.Reviews,
				})
			}
			return out
		}
	}
	return []response_models.RestaurantOption{PlaceholderRestaurant()}
}
