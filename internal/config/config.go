package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything the application reads from the environment or
// an optional config file. Environment variables win over file values.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		PostgresURL string `mapstructure:"postgres_url"`
	} `mapstructure:"database"`
	Keys struct {
		GooglePlaces    string `mapstructure:"google_places"`
		GoogleGeocoding string `mapstructure:"google_geocoding"`
		OpenWeatherMap  string `mapstructure:"openweathermap"`
		Priceline       string `mapstructure:"priceline"`
		OpenAI          string `mapstructure:"openai"`
	} `mapstructure:"keys"`
	Planner PlannerPolicy `mapstructure:"planner"`
}

// PlannerPolicy holds the fixed spending policy the planning core applies.
//
// Ceilings, by stage: candidate fetching filters anything priced above
// budget*CeilingFactor; lodging selection inside the allocator compares
// against the plain budget; final plan acceptance compares the realized
// total against budget*CeilingFactor.
type PlannerPolicy struct {
	FoodPerDay           float64 `mapstructure:"food_per_day"`
	AttractionUnitCost   float64 `mapstructure:"attraction_unit_cost"`
	CeilingFactor        float64 `mapstructure:"ceiling_factor"`
	TransportBudgetShare float64 `mapstructure:"transport_budget_share"`
	AssumedSpeedKmh      float64 `mapstructure:"assumed_speed_kmh"`
	DayStart             string  `mapstructure:"day_start"`
	DinnerStart          string  `mapstructure:"dinner_start"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/tripforge")

	v.SetDefault("server.port", "8080")
	v.SetDefault("planner.food_per_day", 50.0)
	v.SetDefault("planner.attraction_unit_cost", 20.0)
	v.SetDefault("planner.ceiling_factor", 1.2)
	v.SetDefault("planner.transport_budget_share", 0.3)
	v.SetDefault("planner.assumed_speed_kmh", 30.0)
	v.SetDefault("planner.day_start", "09:00")
	v.SetDefault("planner.dinner_start", "18:00")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.postgres_url", "POSTGRES_URL")
	v.BindEnv("keys.google_places", "GOOGLE_PLACES_API_KEY")
	v.BindEnv("keys.google_geocoding", "GOOGLE_GEOCODING_API_KEY")
	v.BindEnv("keys.openweathermap", "OPENWEATHERMAP_API_KEY")
	v.BindEnv("keys.priceline", "RAPIDAPI_KEY_PRICELINE")
	v.BindEnv("keys.openai", "OPENAI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// DefaultPlannerPolicy is used by tests and by callers that plan without a
// loaded configuration.
func DefaultPlannerPolicy() PlannerPolicy {
	return PlannerPolicy{
		FoodPerDay:           50,
		AttractionUnitCost:   20,
		CeilingFactor:        1.2,
		TransportBudgetShare: 0.3,
		AssumedSpeedKmh:      30,
		DayStart:             "09:00",
		DinnerStart:          "18:00",
	}
}
