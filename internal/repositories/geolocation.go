package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

var (
	ErrGeolocationUnavailable = errors.New("geolocation unavailable")
	ErrGeolocationDenied      = errors.New("geolocation permission denied")
)

// Locator resolves the user's current position.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// DisabledLocator is used when geolocation is switched off.
type DisabledLocator struct{}

func (DisabledLocator) Locate(context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, fmt.Errorf("%w: geolocation not supported", ErrGeolocationUnavailable)
}

// IPLocator resolves the position from the caller's public IP through an
// ip-api.com compatible endpoint.
type IPLocator struct {
	BaseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewIPLocator(baseURL string, l *logger.Logger, httpClient HTTPClient) *IPLocator {
	return &IPLocator{
		BaseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

func (i *IPLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.BaseURL, nil)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrGeolocationUnavailable, err)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrGeolocationUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrGeolocationUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, fmt.Errorf("%w: HTTP error (status %d)", ErrGeolocationUnavailable, resp.StatusCode)
	}

	var response ipAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrGeolocationUnavailable, err)
	}

	if response.Status != "success" {
		return models.Coordinates{}, fmt.Errorf("%w: %s", ErrGeolocationDenied, response.Message)
	}

	coords := models.Coordinates{Lat: response.Lat, Lon: response.Lon}
	if err := coords.Validate(); err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrGeolocationUnavailable, err)
	}

	i.l.Info("resolved geolocation", map[string]any{
		"city":   response.City,
		"coords": coords.String(),
	})

	return coords, nil
}
