package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedBackend wraps a WeatherBackend with a shared token bucket.
// Each command costs one token regardless of how many upstream calls it makes.
type RateLimitedBackend struct {
	backend WeatherBackend
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedBackend allows rps commands per second (fractional values allowed) with the given burst.
func NewRateLimitedBackend(backend WeatherBackend, rps float64, burst int) *RateLimitedBackend {
	if burst < 1 {
		burst = 1
	}

	return &RateLimitedBackend{
		backend: backend,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", backend.Name()),
	}
}

func (r *RateLimitedBackend) Name() string {
	return r.name
}

func (r *RateLimitedBackend) GetWeather(ctx context.Context, city string) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.backend.GetWeather(ctx, city)
}

func (r *RateLimitedBackend) GetWeatherByCoords(ctx context.Context, lat, lon float64) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.backend.GetWeatherByCoords(ctx, lat, lon)
}

var (
	_ WeatherBackend = (*RateLimitedBackend)(nil)
	_ WeatherBackend = (*OpenWeatherMapRepository)(nil)
	_ WeatherBackend = (*OpenMeteoRepository)(nil)
)
