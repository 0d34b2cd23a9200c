package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-dashboard/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
)

type OpenWeatherMapRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherMapRepository(apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &OpenWeatherMapRepository{
		BaseURL:    OpenWeatherMapBaseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

type openWeatherMapError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

func (w *OpenWeatherMapRepository) GetWeather(ctx context.Context, city string) ([]byte, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.New("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)

	return w.fetchSnapshot(ctx, query)
}

func (w *OpenWeatherMapRepository) GetWeatherByCoords(ctx context.Context, lat, lon float64) ([]byte, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	return w.fetchSnapshot(ctx, query)
}

// fetchSnapshot joins the /weather and /forecast bodies verbatim into one snapshot document.
func (w *OpenWeatherMapRepository) fetchSnapshot(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("units", "metric")
	query.Set("appid", w.APIKey)

	current, err := w.get(ctx, "weather", query)
	if err != nil {
		return nil, fmt.Errorf("current conditions: %w", err)
	}

	forecast, err := w.get(ctx, "forecast", query)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	body, err := json.Marshal(struct {
		Current  json.RawMessage `json:"current"`
		Forecast json.RawMessage `json:"forecast"`
	}{
		Current:  current,
		Forecast: forecast,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}

	return body, nil
}

func (w *OpenWeatherMapRepository) get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	endpointURL := strings.TrimRight(w.BaseURL, "/") + "/" + endpoint

	w.l.Info("making openweathermap API request", map[string]any{
		"endpoint": endpoint,
		"q":        query.Get("q"),
		"lat":      query.Get("lat"),
		"lon":      query.Get("lon"),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Info("received openweathermap API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr openWeatherMapError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	if !json.Valid(body) {
		return nil, errors.New("failed to parse JSON response")
	}

	return json.RawMessage(body), nil
}
