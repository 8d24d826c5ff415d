package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tripforge/internal/config"
	"tripforge/internal/models/db_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

const (
	ForecastClear            = "Clear"
	ForecastUnavailableAhead = "Weather unavailable (future date)"
	ForecastUnavailableError = "Weather unavailable (API error)"

	forecastHorizonDays = 7
)

// WeatherServiceInterface maps each date of a stay to a forecast label.
// Lookups never fail: unreachable feeds degrade to documented labels so
// planning always completes.
type WeatherServiceInterface interface {
	ForecastByDate(ctx context.Context, city string, lat, lng float64, start, end time.Time) map[string]string
}

type WeatherService struct {
	HTTP        *http.Client
	APIKey      string
	BaseURL     string
	weatherRepo repositories.WeatherRepository
	logger      *zap.Logger
}

func NewWeatherService(cfg *config.Config, weatherRepo repositories.WeatherRepository, logger *zap.Logger) WeatherServiceInterface {
	return &WeatherService{
		HTTP:        &http.Client{Timeout: 10 * time.Second},
		APIKey:      cfg.Keys.OpenWeatherMap,
		BaseURL:     "https://api.openweathermap.org/data/3.0/onecall",
		weatherRepo: weatherRepo,
		logger:      logger,
	}
}

type onecallResponse struct {
	Daily []struct {
		Dt      int64 `json:"dt"`
		Temp    struct {
			Day float64 `json:"day"`
		} `json:"temp"`
		Humidity float64 `json:"humidity"`
		Weather  []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"daily"`
}

func (w *WeatherService) ForecastByDate(ctx context.Context, city string, lat, lng float64, start, end time.Time) map[string]string {
	out := make(map[string]string)

	if w.APIKey == "" {
		w.logger.Warn("OPENWEATHERMAP_API_KEY not set, skipping weather fetch")
		return out
	}

	// The free forecast feed only covers the next few days.
	if start.After(time.Now().AddDate(0, 0, forecastHorizonDays)) {
		w.logger.Warn("requested dates beyond forecast horizon",
			zap.String("start", utils.DateKey(start)),
			zap.String("end", utils.DateKey(end)))
		fillLabels(out, start, end, ForecastUnavailableAhead)
		return out
	}

	body, err := w.fetch(ctx, lat, lng)
	if err != nil {
		w.logger.Error("weather fetch failed", zap.Error(err))
		fillLabels(out, start, end, ForecastUnavailableError)
		return out
	}

	byDate := make(map[string]string, len(body.Daily))
	for _, day := range body.Daily {
		if len(day.Weather) == 0 {
			continue
		}
		key := utils.DateKey(time.Unix(day.Dt, 0))
		byDate[key] = day.Weather[0].Main

		if w.weatherRepo != nil {
			record := &db_models.WeatherRecord{
				City:        city,
				Date:        key,
				Forecast:    day.Weather[0].Main,
				Temperature: day.Temp.Day,
				Humidity:    day.Humidity,
			}
			if err := w.weatherRepo.InsertObservation(ctx, record); err != nil {
				w.logger.Warn("failed to persist weather observation", zap.Error(err))
			}
		}
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := utils.DateKey(d)
		if label, ok := byDate[key]; ok {
			out[key] = label
		} else {
			out[key] = ForecastClear
		}
	}
	return out
}

func (w *WeatherService) fetch(ctx context.Context, lat, lng float64) (*onecallResponse, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("exclude", "current,minutely,hourly,alerts")
	q.Set("units", "metric")
	q.Set("appid", w.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned %d", resp.StatusCode)
	}

	var body onecallResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

func fillLabels(out map[string]string, start, end time.Time, label string) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out[utils.DateKey(d)] = label
	}
}
