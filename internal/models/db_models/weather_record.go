package db_models

type WeatherRecord struct {
	BaseModel
	City        string `gorm:"index"`
	Date        string `gorm:"index"` // YYYY-MM-DD
	Forecast    string
	Temperature float64
	Humidity    float64
}
