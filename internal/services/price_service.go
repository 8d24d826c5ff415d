package services

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"tripforge/pkg/utils"
)

// PriceServiceInterface forecasts a nightly price for a date, degrading to
// the base price whenever no forecast covers it. Built lazily on first use.
type PriceServiceInterface interface {
	PredictPrice(basePrice float64, date time.Time) float64
}

type PriceService struct {
	once     sync.Once
	forecast map[string]float64
	logger   *zap.Logger
}

func NewPriceService(logger *zap.Logger) PriceServiceInterface {
	return &PriceService{logger: logger}
}

// Seed series standing in for historical nightly prices.
var priceSeed = []float64{100, 110, 120, 130}

func (p *PriceService) PredictPrice(basePrice float64, date time.Time) float64 {
	p.once.Do(p.build)

	if v, ok := p.forecast[utils.DateKey(date)]; ok {
		return v
	}
	return basePrice
}

// build extrapolates the seed trend over the next seven days.
func (p *PriceService) build() {
	n := float64(len(priceSeed))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range priceSeed {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	p.forecast = make(map[string]float64, forecastHorizonDays)
	today := time.Now()
	for i := 0; i < forecastHorizonDays; i++ {
		x := n + float64(i)
		p.forecast[utils.DateKey(today.AddDate(0, 0, i))] = intercept + slope*x
	}
	p.logger.Info("price forecast built", zap.Float64("trend_per_day", slope))
}
