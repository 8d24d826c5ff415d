package db_models

import "github.com/lib/pq"

type Car struct {
	BaseModel
	Name       string
	Company    string
	City       string `gorm:"index"`
	Price      float64
	Rating     float64
	DistanceKm float64
	Reviews    pq.StringArray `gorm:"type:text[]"`
}
