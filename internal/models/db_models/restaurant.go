package db_models

import "github.com/lib/pq"

type Restaurant struct {
	BaseModel
	Name       string
	City       string `gorm:"index"`
	Rating     float64
	DistanceKm float64
	Latitude   float64
	Longitude  float64
	Reviews    pq.StringArray `gorm:"type:text[]"`
}
