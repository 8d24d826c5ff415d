package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripforge/pkg/utils"
)

func newTestWeather(apiKey, baseURL string) *WeatherService {
	return &WeatherService{
		HTTP:    &http.Client{Timeout: time.Second},
		APIKey:  apiKey,
		BaseURL: baseURL,
		logger:  zap.NewNop(),
	}
}

func TestForecastByDate_NoAPIKey(t *testing.T) {
	w := newTestWeather("", "http://unused")
	out := w.ForecastByDate(context.Background(), "Tampa", 0, 0, time.Now(), time.Now())
	assert.Empty(t, out)
}

func TestForecastByDate_BeyondHorizon(t *testing.T) {
	w := newTestWeather("key", "http://unused")
	start := time.Now().AddDate(0, 0, 30)
	end := start.AddDate(0, 0, 1)

	out := w.ForecastByDate(context.Background(), "Tampa", 0, 0, start, end)
	require.Len(t, out, 2)
	for _, label := range out {
		assert.Equal(t, ForecastUnavailableAhead, label)
	}
}

func TestForecastByDate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWeather("key", srv.URL)
	start := time.Now()
	out := w.ForecastByDate(context.Background(), "Tampa", 0, 0, start, start)

	require.Len(t, out, 1)
	assert.Equal(t, ForecastUnavailableError, out[utils.DateKey(start)])
}

func TestForecastByDate_MapsDailyEntries(t *testing.T) {
	start := time.Now()
	next := start.AddDate(0, 0, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.URL.Query().Get("appid"))
		fmt.Fprintf(rw, `{"daily":[
			{"dt":%d,"temp":{"day":28.5},"humidity":70,"weather":[{"main":"Rain"}]},
			{"dt":%d,"temp":{"day":30.1},"humidity":60,"weather":[{"main":"Clouds"}]}
		]}`, start.Unix(), next.Unix())
	}))
	defer srv.Close()

	w := newTestWeather("key", srv.URL)
	out := w.ForecastByDate(context.Background(), "Tampa", 27.95, -82.46, start, next.AddDate(0, 0, 1))

	assert.Equal(t, "Rain", out[utils.DateKey(start)])
	assert.Equal(t, "Clouds", out[utils.DateKey(next)])
	// Days the feed doesn't cover default to clear.
	assert.Equal(t, ForecastClear, out[utils.DateKey(next.AddDate(0, 0, 1))])
}
