package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
)

var utcRender = RenderOptions{IconBaseURL: "https://openweathermap.org/img/wn", Location: time.UTC}

func TestRender_NoSnapshot(t *testing.T) {
	view, ok := Render(nil, models.Celsius, utcRender)
	assert.False(t, ok)
	assert.Equal(t, View{}, view)
}

func TestRender_CurrentConditions(t *testing.T) {
	snapshot := snapshotFixture("Paris", 20.4, "Clear", 40)

	view, ok := Render(snapshot, models.Celsius, utcRender)
	require.True(t, ok)

	assert.Equal(t, CurrentView{
		Location:    "Paris",
		Description: "light rain",
		IconURL:     "https://openweathermap.org/img/wn/10d@4x.png",
		Temperature: 20,
		Unit:        "°C",
		FeelsLike:   20,
		Humidity:    64,
		WindKMH:     15,
	}, view.Current)
	assert.Equal(t, "Paris: 20.4°C", view.Title)

	view, ok = Render(snapshot, models.Fahrenheit, utcRender)
	require.True(t, ok)
	assert.Equal(t, 69, view.Current.Temperature)
	assert.Equal(t, 68, view.Current.FeelsLike)
	assert.Equal(t, "°F", view.Current.Unit)
	// Humidity and wind are unit independent
	assert.Equal(t, 64, view.Current.Humidity)
	assert.Equal(t, 15, view.Current.WindKMH)
	// The title stays in Celsius
	assert.Equal(t, "Paris: 20.4°C", view.Title)
}

func TestRender_DailyList(t *testing.T) {
	// 7 days of three-hourly entries hold 7 noon slots
	snapshot := snapshotFixture("Paris", 20.4, "Clear", 56)

	view, ok := Render(snapshot, models.Celsius, utcRender)
	require.True(t, ok)

	require.Len(t, view.Daily, DailyLimit)
	assert.Equal(t, []string{"Fri", "Sat", "Sun", "Mon", "Tue"}, weekdays(view.Daily))

	// Noon of day k is entry 8k+4, temp 10 + (8k+4)*0.5
	for k, day := range view.Daily {
		assert.Equal(t, DisplayTemp(10+float64(8*k+4)*0.5, models.Celsius), day.Temperature)
		assert.Equal(t, "Clouds", day.Label)
		assert.Equal(t, "https://openweathermap.org/img/wn/03d.png", day.IconURL)
	}

	entries := DailyEntries(snapshot.Forecast, DailyLimit)
	for i, entry := range entries {
		assert.True(t, entry.IsNoonSlot())
		if i > 0 {
			assert.Greater(t, entry.Dt, entries[i-1].Dt)
		}
	}
}

func TestRender_DailyListFewerThanFive(t *testing.T) {
	// 20 entries span 00:00 day 1 to 09:00 day 3, with two noon slots
	snapshot := snapshotFixture("Paris", 20.4, "Clear", 20)

	view, ok := Render(snapshot, models.Celsius, utcRender)
	require.True(t, ok)
	assert.Equal(t, []string{"Fri", "Sat"}, weekdays(view.Daily))
}

func TestRender_Chart(t *testing.T) {
	snapshot := snapshotFixture("Paris", 20.4, "Clear", 40)

	view, ok := Render(snapshot, models.Fahrenheit, utcRender)
	require.True(t, ok)

	assert.Equal(t, "Temp (°F)", view.Chart.AxisLabel)
	assert.Equal(t, []string{"00:00", "03:00", "06:00", "09:00", "12:00", "15:00", "18:00", "21:00"}, view.Chart.Labels)
	require.Len(t, view.Chart.Values, ChartLimit)
	for i, v := range view.Chart.Values {
		assert.Equal(t, DisplayTemp(10+float64(i)*0.5, models.Fahrenheit), v)
	}
}

func TestRender_ChartFewerThanEight(t *testing.T) {
	snapshot := snapshotFixture("Paris", 20.4, "Clear", 3)

	view, ok := Render(snapshot, models.Celsius, utcRender)
	require.True(t, ok)
	assert.Equal(t, []string{"00:00", "03:00", "06:00"}, view.Chart.Labels)
	assert.Len(t, view.Chart.Values, 3)
	assert.Empty(t, view.Daily)
}

func TestRender_Location(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	snapshot := snapshotFixture("Tokyo", 28, "Clear", 8)

	view, ok := Render(snapshot, models.Celsius, RenderOptions{Location: tokyo})
	require.True(t, ok)
	assert.Equal(t, "09:00", view.Chart.Labels[0])
	// Noon UTC on Friday is still Friday in Tokyo
	assert.Equal(t, []string{"Fri"}, weekdays(view.Daily))
	assert.Equal(t, "https://openweathermap.org/img/wn/10d@4x.png", view.Current.IconURL)
}

func TestRender_Idempotent(t *testing.T) {
	snapshot := snapshotFixture("Paris", 20.4, "Clear", 40)

	first, _ := Render(snapshot, models.Fahrenheit, utcRender)
	second, _ := Render(snapshot, models.Fahrenheit, utcRender)
	assert.Equal(t, first, second)
	// The snapshot is never converted in place
	assert.Equal(t, 20.4, snapshot.Current.Main.Temp)
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "https://img.example/wn/01d@4x.png", IconURL("https://img.example/wn/", "01d", true))
	assert.Equal(t, "https://img.example/wn/01d.png", IconURL("https://img.example/wn", "01d", false))
	assert.Empty(t, IconURL("https://img.example/wn", "", true))
}

func TestChartEntries_TimeOfDayAgnostic(t *testing.T) {
	series := forecastFixture(12)
	entries := ChartEntries(series, ChartLimit)
	assert.Equal(t, series.List[:8], entries)
}

func weekdays(days []DayView) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Weekday)
	}
	return out
}
