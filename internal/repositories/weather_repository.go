package repositories

import (
	"context"

	"gorm.io/gorm"
	"tripforge/internal/models/db_models"
)

type WeatherRepository interface {
	InsertObservation(ctx context.Context, record *db_models.WeatherRecord) error
	FindByCityAndDate(ctx context.Context, city, date string) (*db_models.WeatherRecord, error)
}

type weatherRepository struct {
	db *gorm.DB
}

func NewWeatherRepository(db *gorm.DB) WeatherRepository {
	return &weatherRepository{db: db}
}

func (r *weatherRepository) InsertObservation(ctx context.Context, record *db_models.WeatherRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *weatherRepository) FindByCityAndDate(ctx context.Context, city, date string) (*db_models.WeatherRecord, error) {
	var record db_models.WeatherRecord
	err := r.db.WithContext(ctx).
		Where("city = ? AND date = ?", city, date).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
