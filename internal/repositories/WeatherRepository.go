package repositories

import (
	"context"
	"fmt"
	"net/http"

	"weather-dashboard/config"
	"weather-dashboard/pkg/logger"
)

const (
	CommandGetWeather         = "get_weather"
	CommandGetWeatherByCoords = "get_weather_by_coords"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherBackend implements the get_weather and get_weather_by_coords commands.
// Both return a serialized models.WeatherSnapshot.
type WeatherBackend interface {
	Name() string
	GetWeather(ctx context.Context, city string) ([]byte, error)
	GetWeatherByCoords(ctx context.Context, lat, lon float64) ([]byte, error)
}

func InitWeatherBackend(cfg *config.Config, l *logger.Logger) (WeatherBackend, error) {
	httpClient := &http.Client{Timeout: cfg.WeatherTimeout()}

	var backend WeatherBackend
	switch cfg.Weather.Provider {
	case "openweathermap":
		repo, err := NewOpenWeatherMapRepository(cfg.Weather.APIKey, l, httpClient)
		if err != nil {
			return nil, err
		}
		if cfg.Weather.BaseURL != "" {
			repo.BaseURL = cfg.Weather.BaseURL
		}
		backend = repo
	case "open-meteo":
		repo := NewOpenMeteoRepository(l, httpClient)
		if cfg.Weather.BaseURL != "" {
			repo.BaseURL = cfg.Weather.BaseURL
		}
		if cfg.Weather.GeocodingURL != "" {
			repo.GeocodingURL = cfg.Weather.GeocodingURL
		}
		backend = repo
	default:
		return nil, fmt.Errorf("unknown weather provider %q", cfg.Weather.Provider)
	}

	if cfg.Weather.RateLimitRPS > 0 {
		backend = NewRateLimitedBackend(backend, cfg.Weather.RateLimitRPS, cfg.Weather.RateLimitBurst)
	}

	return backend, nil
}

func InitLocator(cfg *config.Config, l *logger.Logger) Locator {
	if !cfg.Geolocation.Enabled {
		return DisabledLocator{}
	}

	return NewIPLocator(cfg.Geolocation.BaseURL, l, &http.Client{Timeout: cfg.GeolocationTimeout()})
}
