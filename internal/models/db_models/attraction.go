package db_models

import "github.com/lib/pq"

type Attraction struct {
	BaseModel
	Name       string
	City       string `gorm:"index"`
	Rating     float64
	DistanceKm float64
	Latitude   float64
	Longitude  float64
	IsIndoor   bool
	ImageScore float64
	Reviews    pq.StringArray `gorm:"type:text[]"`
}
