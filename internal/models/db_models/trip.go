package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	AccountID    uuid.UUID `gorm:"type:uuid;index"`
	Destinations pq.StringArray `gorm:"type:text[]"`
	StartDate    int64
	EndDate      int64
	Days         int
	HotelName    string
	CarName      string
	CostHotels   float64
	CostCars     float64
	CostFood     float64
	CostTotal    float64
}
