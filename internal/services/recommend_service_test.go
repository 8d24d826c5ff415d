package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripforge/internal/models/response_models"
)

type fakeCatalog struct {
	hotels      []response_models.HotelOption
	cars        []response_models.CarOption
	attractions []response_models.AttractionOption
	restaurants []response_models.RestaurantOption
}

func (f *fakeCatalog) FetchHotels(ctx context.Context, destination string, budget float64, start, end time.Time) []response_models.HotelOption {
	return f.hotels
}

func (f *fakeCatalog) FetchCars(ctx context.Context, destination string, budget float64, start, end time.Time, hotelLat, hotelLng float64, pickUpTime, dropOffTime string) []response_models.CarOption {
	return f.cars
}

func (f *fakeCatalog) FetchAttractions(ctx context.Context, destination string, hotelLat, hotelLng float64) []response_models.AttractionOption {
	return f.attractions
}

func (f *fakeCatalog) FetchRestaurants(ctx context.Context, destination string, hotelLat, hotelLng float64) []response_models.RestaurantOption {
	return f.restaurants
}

type fakeGeo struct {
	lat, lng float64
	err      error
}

func (f *fakeGeo) Coordinates(ctx context.Context, destination string) (float64, float64, error) {
	return f.lat, f.lng, f.err
}

func (f *fakeGeo) AirportCode(destination string) string { return "TPA" }

type fixedPreference struct{ value float64 }

func (f fixedPreference) PredictPreference(price, distance float64) float64 { return f.value }

func newTestRecommender(catalog *fakeCatalog) RecommendServiceInterface {
	return NewRecommendService(catalog, &fakeGeo{lat: 27.95, lng: -82.46}, fixedPreference{value: 4.0}, zap.NewNop())
}

func TestScoreLodging(t *testing.T) {
	r := newTestRecommender(&fakeCatalog{})
	// 0.4*4.0 + 0.3*(500-100)/500 + 0.3*(5-1)/5
	assert.InDelta(t, 1.6+0.24+0.24, r.ScoreLodging(500, 100, 1.0), 1e-9)
}

func TestScoreAttraction(t *testing.T) {
	r := newTestRecommender(&fakeCatalog{})
	// 0.5*4.5 + 0.5*(5-2)/5 + 0.2*0.5
	assert.InDelta(t, 2.25+0.3+0.1, r.ScoreAttraction(4.5, 2.0, 0.5), 1e-9)
}

func TestScoreDining(t *testing.T) {
	r := newTestRecommender(&fakeCatalog{})
	assert.InDelta(t, 0.5*4.0+0.5*0.8, r.ScoreDining(4.0, 1.0), 1e-9)
}

func TestRecommendHotels_TopTwoByScore(t *testing.T) {
	catalog := &fakeCatalog{hotels: []response_models.HotelOption{
		{Name: "Grand Palace", Price: 450, Distance: 0.2},
		{Name: "Bay Inn", Price: 90, Distance: 1.0},
		{Name: "Budget Stop", Price: 40, Distance: 4.5},
	}}
	r := newTestRecommender(catalog)

	hotels, _, _ := r.RecommendHotels(context.Background(), "Tampa", 500, time.Now(), time.Now())
	require.Len(t, hotels, 2)
	// With a fixed affinity the cheap nearby hotel outranks the expensive one.
	assert.Equal(t, "Bay Inn", hotels[0].Name)
	for _, h := range hotels {
		assert.Greater(t, h.Score, 0.0)
	}
}

func TestRecommendHotels_CoordinatesPreferTopHotel(t *testing.T) {
	catalog := &fakeCatalog{hotels: []response_models.HotelOption{
		{Name: "Bay Inn", Price: 90, Distance: 1.0, Latitude: 28.0, Longitude: -82.5},
	}}
	r := newTestRecommender(catalog)

	_, lat, lng := r.RecommendHotels(context.Background(), "Tampa", 500, time.Now(), time.Now())
	assert.InDelta(t, 28.0, lat, 1e-9)
	assert.InDelta(t, -82.5, lng, 1e-9)
}

func TestRecommendHotels_FallsBackToCityCoordinates(t *testing.T) {
	catalog := &fakeCatalog{hotels: []response_models.HotelOption{
		{Name: "Bay Inn", Price: 90, Distance: 1.0},
	}}
	r := newTestRecommender(catalog)

	_, lat, lng := r.RecommendHotels(context.Background(), "Tampa", 500, time.Now(), time.Now())
	assert.InDelta(t, 27.95, lat, 1e-9)
	assert.InDelta(t, -82.46, lng, 1e-9)
}

func TestRecommendCars_TopOne(t *testing.T) {
	catalog := &fakeCatalog{cars: []response_models.CarOption{
		{Name: "SUV", Price: 120, Distance: 2.0},
		{Name: "Compact", Price: 35, Distance: 1.0},
	}}
	r := newTestRecommender(catalog)

	cars := r.RecommendCars(context.Background(), "Tampa", 500, time.Now(), time.Now(), 0, 0, "", "")
	require.Len(t, cars, 1)
	assert.Equal(t, "Compact", cars[0].Name)
}

func TestRecommendAttractions_TopThreeByScore(t *testing.T) {
	catalog := &fakeCatalog{attractions: []response_models.AttractionOption{
		{Name: "Pier Park", Rating: 3.9, Distance: 4.0},
		{Name: "City Museum", Rating: 4.8, Distance: 1.2, IsIndoor: true},
		{Name: "Riverwalk", Rating: 4.6, Distance: 0.8},
		{Name: "Aquarium", Rating: 4.5, Distance: 2.0, IsIndoor: true},
	}}
	r := newTestRecommender(catalog)

	attractions := r.RecommendAttractions(context.Background(), "Tampa", 0, 0, false)
	require.Len(t, attractions, 3)
	assert.Equal(t, "City Museum", attractions[0].Name)
}

func TestRecommendAttractions_IndoorFilter(t *testing.T) {
	catalog := &fakeCatalog{attractions: []response_models.AttractionOption{
		{Name: "Riverwalk", Rating: 4.6, Distance: 0.8},
		{Name: "City Museum", Rating: 4.8, Distance: 1.2, IsIndoor: true},
	}}
	r := newTestRecommender(catalog)

	attractions := r.RecommendAttractions(context.Background(), "Tampa", 0, 0, true)
	require.Len(t, attractions, 1)
	assert.Equal(t, "City Museum", attractions[0].Name)
}

func TestRecommendAttractions_IndoorFallbackWhenNoneExist(t *testing.T) {
	catalog := &fakeCatalog{attractions: []response_models.AttractionOption{
		{Name: "Riverwalk", Rating: 4.6, Distance: 0.8},
		{Name: "Pier Park", Rating: 3.9, Distance: 4.0},
	}}
	r := newTestRecommender(catalog)

	attractions := r.RecommendAttractions(context.Background(), "Tampa", 0, 0, true)
	assert.Len(t, attractions, 2)
}

func TestRecommendRestaurants_TopThree(t *testing.T) {
	catalog := &fakeCatalog{restaurants: []response_models.RestaurantOption{
		{Name: "Noodle House", Rating: 4.2, Distance: 1.9},
		{Name: "Harbor Grill", Rating: 4.7, Distance: 0.5},
		{Name: "Casa Verde", Rating: 4.4, Distance: 1.1},
		{Name: "Taco Stand", Rating: 3.8, Distance: 2.5},
	}}
	r := newTestRecommender(catalog)

	restaurants := r.RecommendRestaurants(context.Background(), "Tampa", 0, 0)
	require.Len(t, restaurants, 3)
	assert.Equal(t, "Harbor Grill", restaurants[0].Name)
	assert.Equal(t, "Casa Verde", restaurants[1].Name)
	assert.Equal(t, "Noodle House", restaurants[2].Name)
}
