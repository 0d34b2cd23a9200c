package repositories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
)

// 2025-07-25 00:00:00 UTC
const omStart = int64(1753401600)

func omForecastBody() string {
	return `{
		"current": {"temperature_2m": 20.4, "apparent_temperature": 19.8, "relative_humidity_2m": 63.6, "wind_speed_10m": 4.1, "weather_code": 61, "is_day": 1},
		"hourly": {
			"time": [1753401600, 1753405200, 1753408800, 1753412400, 1753444800],
			"temperature_2m": [15.1, 14.8, 14.2, 13.9, 21.7],
			"weather_code": [0, 0, 3, 3, 95],
			"is_day": [0, 0, 0, 0, 1]
		}
	}`
}

func newOpenMeteoServer(t *testing.T, handler http.HandlerFunc) *OpenMeteoRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repo := NewOpenMeteoRepository(testLogger(), server.Client())
	repo.BaseURL = server.URL + "/v1/forecast"
	repo.GeocodingURL = server.URL + "/v1/search"

	return repo
}

func TestOpenMeteoRepository_Name(t *testing.T) {
	repo := &OpenMeteoRepository{}
	assert.Equal(t, "open-meteo", repo.Name())
}

func TestOpenMeteoRepository_GetWeather(t *testing.T) {
	repo := newOpenMeteoServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/search":
			assert.Equal(t, "Paris", r.URL.Query().Get("name"))
			w.Write([]byte(`{"results": [{"name": "Paris", "latitude": 48.85341, "longitude": 2.3488}]}`))
		case "/v1/forecast":
			assert.Equal(t, "48.85341", r.URL.Query().Get("latitude"))
			assert.Equal(t, "ms", r.URL.Query().Get("wind_speed_unit"))
			w.Write([]byte(omForecastBody()))
		}
	})

	body, err := repo.GetWeather(context.Background(), "Paris")
	require.NoError(t, err)

	snapshot, err := models.DecodeSnapshot(body)
	require.NoError(t, err)

	assert.Equal(t, "Paris", snapshot.Current.Name)
	assert.Equal(t, 20.4, snapshot.Current.Main.Temp)
	assert.Equal(t, 64, snapshot.Current.Main.Humidity)
	assert.Equal(t, models.Condition{ID: 61, Main: "Rain", Description: "rain", Icon: "10d"}, snapshot.Current.Condition())

	// 00:00, 03:00 and 12:00 survive the three-hour sampling
	require.Len(t, snapshot.Forecast.List, 3)
	assert.Equal(t, "2025-07-25 00:00:00", snapshot.Forecast.List[0].DtTxt)
	assert.Equal(t, omStart, snapshot.Forecast.List[0].Dt)
	assert.Equal(t, "01n", snapshot.Forecast.List[0].Condition().Icon)
	assert.Equal(t, "2025-07-25 03:00:00", snapshot.Forecast.List[1].DtTxt)
	assert.True(t, snapshot.Forecast.List[2].IsNoonSlot())
	assert.Equal(t, "Thunderstorm", snapshot.Forecast.List[2].Condition().Main)
}

func TestOpenMeteoRepository_CityNotFound(t *testing.T) {
	repo := newOpenMeteoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generationtime_ms": 0.5}`))
	})

	_, err := repo.GetWeather(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCityNotFound))
}

func TestOpenMeteoRepository_APIError(t *testing.T) {
	repo := newOpenMeteoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": true, "reason": "Latitude must be in range of -90 to 90°."}`))
	})

	_, err := repo.GetWeatherByCoords(context.Background(), 48.85, 2.35)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Latitude must be in range")
}

func TestOpenMeteoRepository_ByCoordsNamesLocation(t *testing.T) {
	repo := newOpenMeteoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(omForecastBody()))
	})

	body, err := repo.GetWeatherByCoords(context.Background(), 48.85341, 2.3488)
	require.NoError(t, err)

	snapshot, err := models.DecodeSnapshot(body)
	require.NoError(t, err)
	assert.Equal(t, "48.8534, 2.3488", snapshot.Current.Name)
}

func TestWMOCondition(t *testing.T) {
	cases := []struct {
		code  int
		isDay bool
		main  string
		icon  string
	}{
		{0, true, "Clear", "01d"},
		{2, false, "Clouds", "03n"},
		{45, true, "Fog", "50d"},
		{53, true, "Drizzle", "09d"},
		{65, true, "Rain", "10d"},
		{75, false, "Snow", "13n"},
		{82, true, "Rain", "09d"},
		{99, true, "Thunderstorm", "11d"},
		{42, true, "Clouds", "03d"},
	}

	for _, tc := range cases {
		c := wmoCondition(tc.code, tc.isDay)
		assert.Equal(t, tc.main, c.Main, "code %d", tc.code)
		assert.Equal(t, tc.icon, c.Icon, "code %d", tc.code)
	}
}
