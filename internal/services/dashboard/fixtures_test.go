package dashboard

import (
	"encoding/json"
	"time"

	"weather-dashboard/internal/models"
)

// 2025-07-25 00:00:00 UTC, a Friday.
var fixtureStart = time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)

// forecastFixture builds n three-hourly entries starting at fixtureStart.
func forecastFixture(n int) models.ForecastSeries {
	list := make([]models.ForecastEntry, 0, n)
	for i := 0; i < n; i++ {
		at := fixtureStart.Add(time.Duration(i*3) * time.Hour)
		list = append(list, models.ForecastEntry{
			Dt:      at.Unix(),
			DtTxt:   at.Format("2006-01-02 15:04:05"),
			Main:    models.EntryMain{Temp: 10 + float64(i)*0.5},
			Weather: []models.Condition{{Main: "Clouds", Description: "scattered clouds", Icon: "03d"}},
		})
	}
	return models.ForecastSeries{List: list}
}

func snapshotFixture(name string, temp float64, condition string, entries int) *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Current: models.CurrentConditions{
			Name:    name,
			Weather: []models.Condition{{Main: condition, Description: "light rain", Icon: "10d"}},
			Main:    models.CurrentMain{Temp: temp, FeelsLike: temp - 0.6, Humidity: 64},
			Wind:    models.Wind{Speed: 4.1},
		},
		Forecast: forecastFixture(entries),
	}
}

func snapshotBody(snapshot *models.WeatherSnapshot) []byte {
	body, err := json.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return body
}
