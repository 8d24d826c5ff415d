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
)

func newTestGeo(apiKey, baseURL string) *GeoService {
	return &GeoService{
		HTTP:       &http.Client{Timeout: time.Second},
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Cache:      NewInMemoryGeoCache(),
		DefaultTTL: time.Hour,
		logger:     zap.NewNop(),
	}
}

func TestCoordinates_NoKey(t *testing.T) {
	g := newTestGeo("", "http://unused")
	_, _, err := g.Coordinates(context.Background(), "Tampa")
	assert.Error(t, err)
}

func TestCoordinates_GeocodeAndCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Tampa", r.URL.Query().Get("address"))
		fmt.Fprint(rw, `{"status":"OK","results":[{"geometry":{"location":{"lat":27.9506,"lng":-82.4572}}}]}`)
	}))
	defer srv.Close()

	g := newTestGeo("key", srv.URL)
	for i := 0; i < 3; i++ {
		lat, lng, err := g.Coordinates(context.Background(), "Tampa")
		require.NoError(t, err)
		assert.InDelta(t, 27.9506, lat, 1e-9)
		assert.InDelta(t, -82.4572, lng, 1e-9)
	}
	// Repeat lookups come from the cache.
	assert.Equal(t, 1, calls)
}

func TestCoordinates_ZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		fmt.Fprint(rw, `{"status":"ZERO_RESULTS","results":[]}`)
	}))
	defer srv.Close()

	g := newTestGeo("key", srv.URL)
	_, _, err := g.Coordinates(context.Background(), "Nowhereville")
	assert.Error(t, err)
}

func TestGeoCache_Expiry(t *testing.T) {
	cache := NewInMemoryGeoCache()
	cache.Set("Tampa", 27.95, -82.46, -time.Second)
	_, _, ok := cache.Get("Tampa")
	assert.False(t, ok)

	cache.Set("Tampa", 27.95, -82.46, time.Hour)
	lat, lng, ok := cache.Get("Tampa")
	assert.True(t, ok)
	assert.InDelta(t, 27.95, lat, 1e-9)
	assert.InDelta(t, -82.46, lng, 1e-9)
}

func TestAirportCode(t *testing.T) {
	g := newTestGeo("", "")
	assert.Equal(t, "TPA", g.AirportCode("Tampa"))
	assert.Equal(t, "MCO", g.AirportCode("Orlando"))
	assert.Equal(t, "", g.AirportCode("Boise"))
}
