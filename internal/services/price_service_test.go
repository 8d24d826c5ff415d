package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPredictPrice_FollowsSeedTrend(t *testing.T) {
	p := NewPriceService(zap.NewNop())
	// The seed grows 10 a day from 100, so today extrapolates to 140.
	assert.InDelta(t, 140, p.PredictPrice(75, time.Now()), 1e-6)
	assert.InDelta(t, 150, p.PredictPrice(75, time.Now().AddDate(0, 0, 1)), 1e-6)
}

func TestPredictPrice_BeyondForecastUsesBasePrice(t *testing.T) {
	p := NewPriceService(zap.NewNop())
	farOut := time.Now().AddDate(0, 1, 0)
	assert.InDelta(t, 75, p.PredictPrice(75, farOut), 1e-9)
}
