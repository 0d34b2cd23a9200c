package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	OpenMeteoBaseURL      = "https://api.open-meteo.com/v1/forecast"
	OpenMeteoGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

	openMeteoForecastDays = 5
	// forecastStepHours matches the three-hourly OpenWeatherMap forecast list.
	forecastStepHours = 3
	dtTxtLayout       = "2006-01-02 15:04:05"
)

var ErrCityNotFound = errors.New("city not found")

// OpenMeteoRepository serves the dashboard from Open-Meteo, which needs no API key.
// Its responses are reshaped into the same snapshot document as OpenWeatherMap.
type OpenMeteoRepository struct {
	BaseURL      string
	GeocodingURL string
	httpClient   HTTPClient
	l            *logger.Logger
}

func NewOpenMeteoRepository(l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	return &OpenMeteoRepository{
		BaseURL:      OpenMeteoBaseURL,
		GeocodingURL: OpenMeteoGeocodingURL,
		httpClient:   httpClient,
		l:            l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

type openMeteoGeocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type OpenMeteoResponse struct {
	Current struct {
		Temperature2m       float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
		WindSpeed10m        float64 `json:"wind_speed_10m"`
		WeatherCode         int     `json:"weather_code"`
		IsDay               int     `json:"is_day"`
	} `json:"current"`
	Hourly struct {
		Time          []int64   `json:"time"`
		Temperature2m []float64 `json:"temperature_2m"`
		WeatherCode   []int     `json:"weather_code"`
		IsDay         []int     `json:"is_day"`
	} `json:"hourly"`
}

type openMeteoError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func (o *OpenMeteoRepository) GetWeather(ctx context.Context, city string) ([]byte, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.New("city cannot be empty")
	}

	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "1")
	query.Set("format", "json")

	var geo openMeteoGeocodingResponse
	if err := o.getJSON(ctx, o.GeocodingURL, query, &geo); err != nil {
		return nil, fmt.Errorf("geocoding: %w", err)
	}
	if len(geo.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}

	place := geo.Results[0]
	return o.fetchSnapshot(ctx, place.Name, place.Latitude, place.Longitude)
}

func (o *OpenMeteoRepository) GetWeatherByCoords(ctx context.Context, lat, lon float64) ([]byte, error) {
	name := fmt.Sprintf("%.4f, %.4f", lat, lon)
	return o.fetchSnapshot(ctx, name, lat, lon)
}

func (o *OpenMeteoRepository) fetchSnapshot(ctx context.Context, name string, lat, lon float64) ([]byte, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,weather_code,is_day")
	query.Set("hourly", "temperature_2m,weather_code,is_day")
	query.Set("wind_speed_unit", "ms")
	query.Set("timeformat", "unixtime")
	query.Set("timezone", "GMT")
	query.Set("forecast_days", strconv.Itoa(openMeteoForecastDays))

	var response OpenMeteoResponse
	if err := o.getJSON(ctx, o.BaseURL, query, &response); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	o.l.Info("parsed API response", map[string]any{
		"repository": o.Name(),
		"hours":      len(response.Hourly.Time),
	})

	if len(response.Hourly.Time) == 0 {
		return nil, fmt.Errorf("no forecast data available")
	}

	body, err := json.Marshal(snapshotFromOpenMeteo(name, response))
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}

	return body, nil
}

func (o *OpenMeteoRepository) getJSON(ctx context.Context, baseURL string, query url.Values, out any) error {
	o.l.Info("making openmeteo API request", map[string]any{
		"url": baseURL,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openmeteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr openMeteoError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Reason)
		}
		return fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}

// snapshotFromOpenMeteo samples the hourly series every three UTC hours.
func snapshotFromOpenMeteo(name string, response OpenMeteoResponse) models.WeatherSnapshot {
	current := response.Current
	snapshot := models.WeatherSnapshot{
		Current: models.CurrentConditions{
			Name:    name,
			Weather: []models.Condition{wmoCondition(current.WeatherCode, current.IsDay == 1)},
			Main: models.CurrentMain{
				Temp:      current.Temperature2m,
				FeelsLike: current.ApparentTemperature,
				Humidity:  int(math.Round(current.RelativeHumidity2m)),
			},
			Wind: models.Wind{Speed: current.WindSpeed10m},
		},
	}

	hourly := response.Hourly
	n := min(len(hourly.Time), len(hourly.Temperature2m), len(hourly.WeatherCode))
	list := make([]models.ForecastEntry, 0, n/forecastStepHours+1)
	for i := 0; i < n; i++ {
		t := time.Unix(hourly.Time[i], 0).UTC()
		if t.Hour()%forecastStepHours != 0 {
			continue
		}

		isDay := t.Hour() >= 6 && t.Hour() < 18
		if i < len(hourly.IsDay) {
			isDay = hourly.IsDay[i] == 1
		}

		list = append(list, models.ForecastEntry{
			Dt:      hourly.Time[i],
			DtTxt:   t.Format(dtTxtLayout),
			Main:    models.EntryMain{Temp: hourly.Temperature2m[i]},
			Weather: []models.Condition{wmoCondition(hourly.WeatherCode[i], isDay)},
		})
	}
	snapshot.Forecast.List = list

	return snapshot
}

// wmoCondition maps a WMO weather interpretation code onto OpenWeatherMap's
// condition groups and icon identifiers.
func wmoCondition(code int, isDay bool) models.Condition {
	var main, description, icon string

	switch code {
	case 0:
		main, description, icon = "Clear", "clear sky", "01"
	case 1:
		main, description, icon = "Clouds", "mainly clear", "02"
	case 2:
		main, description, icon = "Clouds", "partly cloudy", "03"
	case 3:
		main, description, icon = "Clouds", "overcast clouds", "04"
	case 45, 48:
		main, description, icon = "Fog", "fog", "50"
	case 51, 53, 55:
		main, description, icon = "Drizzle", "drizzle", "09"
	case 56, 57:
		main, description, icon = "Drizzle", "freezing drizzle", "09"
	case 61, 63, 65:
		main, description, icon = "Rain", "rain", "10"
	case 66, 67:
		main, description, icon = "Rain", "freezing rain", "13"
	case 71, 73, 75, 77:
		main, description, icon = "Snow", "snow", "13"
	case 80, 81, 82:
		main, description, icon = "Rain", "rain showers", "09"
	case 85, 86:
		main, description, icon = "Snow", "snow showers", "13"
	case 95:
		main, description, icon = "Thunderstorm", "thunderstorm", "11"
	case 96, 99:
		main, description, icon = "Thunderstorm", "thunderstorm with hail", "11"
	default:
		main, description, icon = "Clouds", "unknown", "03"
	}

	if isDay {
		icon += "d"
	} else {
		icon += "n"
	}

	return models.Condition{ID: code, Main: main, Description: description, Icon: icon}
}
