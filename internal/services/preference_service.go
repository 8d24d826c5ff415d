package services

import (
	"math"
	"sync"

	"go.uber.org/zap"
)

// PreferenceServiceInterface is the preference-affinity oracle the scorer
// consumes: (price, distance) -> predicted rating. The model is fitted
// lazily on first use and cached for the process lifetime; callers treat
// it as a pure function.
type PreferenceServiceInterface interface {
	PredictPreference(price, distance float64) float64
}

type PreferenceService struct {
	once   sync.Once
	coeffs [3]float64 // intercept, price, distance
	logger *zap.Logger
}

func NewPreferenceService(logger *zap.Logger) PreferenceServiceInterface {
	return &PreferenceService{logger: logger}
}

// Seed observations standing in for real traveler feedback.
var preferenceSeed = []struct {
	price    float64
	distance float64
	rating   float64
}{
	{100, 0.5, 4.5},
	{150, 2.0, 3.0},
	{200, 1.0, 5.0},
	{120, 1.5, 4.0},
}

func (p *PreferenceService) PredictPreference(price, distance float64) float64 {
	p.once.Do(p.fit)

	predicted := p.coeffs[0] + p.coeffs[1]*price + p.coeffs[2]*distance
	return math.Max(0, math.Min(5, predicted))
}

// fit solves the normal equations for rating ~ 1 + price + distance.
func (p *PreferenceService) fit() {
	var xtx [3][3]float64
	var xty [3]float64

	for _, row := range preferenceSeed {
		x := [3]float64{1, row.price, row.distance}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				xtx[i][j] += x[i] * x[j]
			}
			xty[i] += x[i] * row.rating
		}
	}

	coeffs, ok := solve3(xtx, xty)
	if !ok {
		// Degenerate seed data: fall back to the mean rating.
		var mean float64
		for _, row := range preferenceSeed {
			mean += row.rating
		}
		mean /= float64(len(preferenceSeed))
		p.coeffs = [3]float64{mean, 0, 0}
		p.logger.Warn("preference model fit degenerate, using mean rating")
		return
	}

	p.coeffs = coeffs
	p.logger.Info("preference model fitted",
		zap.Float64("intercept", coeffs[0]),
		zap.Float64("price_coeff", coeffs[1]),
		zap.Float64("distance_coeff", coeffs[2]))
}

// solve3 runs Gaussian elimination with partial pivoting on a 3x3 system.
func solve3(a [3][3]float64, b [3]float64) ([3]float64, bool) {
	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return [3]float64{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < 3; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < 3; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	var x [3]float64
	for row := 2; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < 3; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, true
}
