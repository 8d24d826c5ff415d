package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"tripforge/internal/config"
)

// --------- In-memory cache per destination ---------

type geoCacheEntry struct {
	Lat       float64
	Lng       float64
	ExpiresAt time.Time
}

type GeoCache interface {
	Get(destination string) (float64, float64, bool)
	Set(destination string, lat, lng float64, ttl time.Duration)
}

type inMemoryGeoCache struct {
	mu    sync.RWMutex
	store map[string]geoCacheEntry
}

func NewInMemoryGeoCache() GeoCache {
	return &inMemoryGeoCache{store: make(map[string]geoCacheEntry)}
}

func (c *inMemoryGeoCache) Get(destination string) (float64, float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[destination]
	if !ok || time.Now().After(it.ExpiresAt) {
		return 0, 0, false
	}
	return it.Lat, it.Lng, true
}

func (c *inMemoryGeoCache) Set(destination string, lat, lng float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[destination] = geoCacheEntry{Lat: lat, Lng: lng, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Geocoding client ---------------

type GeoServiceInterface interface {
	Coordinates(ctx context.Context, destination string) (float64, float64, error)
	AirportCode(destination string) string
}

type GeoService struct {
	HTTP       *http.Client
	APIKey     string
	BaseURL    string
	Cache      GeoCache
	DefaultTTL time.Duration
	logger     *zap.Logger
}

// Static map mirroring the car-rental pickup locations we support.
var airportCodes = map[string]string{
	"Tampa":   "TPA",
	"Orlando": "MCO",
	"Miami":   "MIA",
}

func NewGeoService(cfg *config.Config, cache GeoCache, logger *zap.Logger) GeoServiceInterface {
	return &GeoService{
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		APIKey:     cfg.Keys.GoogleGeocoding,
		BaseURL:    "https://maps.googleapis.com/maps/api/geocode/json",
		Cache:      cache,
		DefaultTTL: 7 * 24 * time.Hour,
		logger:     logger,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *GeoService) Coordinates(ctx context.Context, destination string) (float64, float64, error) {
	if lat, lng, ok := g.Cache.Get(destination); ok {
		return lat, lng, nil
	}

	if g.APIKey == "" {
		return 0, 0, fmt.Errorf("GOOGLE_GEOCODING_API_KEY not set")
	}

	q := url.Values{}
	q.Set("address", destination)
	q.Set("key", g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, fmt.Errorf("geocoding response malformed: %w", err)
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return 0, 0, fmt.Errorf("no coordinates found for %q", destination)
	}

	loc := body.Results[0].Geometry.Location
	g.Cache.Set(destination, loc.Lat, loc.Lng, g.DefaultTTL)
	g.logger.Debug("geocoded destination",
		zap.String("destination", destination),
		zap.Float64("lat", loc.Lat),
		zap.Float64("lng", loc.Lng))
	return loc.Lat, loc.Lng, nil
}

func (g *GeoService) AirportCode(destination string) string {
	return airportCodes[destination]
}
