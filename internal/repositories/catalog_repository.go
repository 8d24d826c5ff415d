package repositories

import (
	"context"

	"gorm.io/gorm"
	"tripforge/internal/models/db_models"
)

// CatalogRepository stores every candidate returned by the external place
// directories so that planning can degrade to previously seen data when a
// directory is unreachable.
type CatalogRepository interface {
	InsertHotel(ctx context.Context, hotel *db_models.Hotel) error
	InsertCar(ctx context.Context, car *db_models.Car) error
	InsertAttraction(ctx context.Context, attraction *db_models.Attraction) error
	InsertRestaurant(ctx context.Context, restaurant *db_models.Restaurant) error

	ListHotelsByCity(ctx context.Context, city string, limit int) ([]db_models.Hotel, error)
	ListCarsByCity(ctx context.Context, city string, limit int) ([]db_models.Car, error)
	ListAttractionsByCity(ctx context.Context, city string, limit int) ([]db_models.Attraction, error)
	ListRestaurantsByCity(ctx context.Context, city string, limit int) ([]db_models.Restaurant, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) InsertHotel(ctx context.Context, hotel *db_models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *catalogRepository) InsertCar(ctx context.Context, car *db_models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *catalogRepository) InsertAttraction(ctx context.Context, attraction *db_models.Attraction) error {
	return r.db.WithContext(ctx).Create(attraction).Error
}

func (r *catalogRepository) InsertRestaurant(ctx context.Context, restaurant *db_models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *catalogRepository) ListHotelsByCity(ctx context.Context, city string, limit int) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("created_at DESC").
		Limit(limit).
		Find(&hotels).Error
	return hotels, err
}

func (r *catalogRepository) ListCarsByCity(ctx context.Context, city string, limit int) ([]db_models.Car, error) {
	var cars []db_models.Car
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("created_at DESC").
		Limit(limit).
		Find(&cars).Error
	return cars, err
}

func (r *catalogRepository) ListAttractionsByCity(ctx context.Context, city string, limit int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("created_at DESC").
		Limit(limit).
		Find(&attractions).Error
	return attractions, err
}

func (r *catalogRepository) ListRestaurantsByCity(ctx context.Context, city string, limit int) ([]db_models.Restaurant, error) {
	var restaurants []db_models.Restaurant
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("created_at DESC").
		Limit(limit).
		Find(&restaurants).Error
	return restaurants, err
}
