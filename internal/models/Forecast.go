package models

import (
	"strings"
	"time"
)

// NoonSlot marks the midday entry of each forecast day in dt_txt.
const NoonSlot = "12:00:00"

type ForecastSeries struct {
	List []ForecastEntry `json:"list"`
}

// ForecastEntry is one three-hourly point of the OpenWeatherMap /forecast list.
type ForecastEntry struct {
	Dt      int64       `json:"dt" example:"1753444800"`
	DtTxt   string      `json:"dt_txt" example:"2025-07-25 12:00:00"`
	Main    EntryMain   `json:"main"`
	Weather []Condition `json:"weather"`
}

type EntryMain struct {
	Temp float64 `json:"temp" example:"21.7"`
}

func (e ForecastEntry) Time() time.Time {
	return time.Unix(e.Dt, 0)
}

func (e ForecastEntry) Condition() Condition {
	return firstCondition(e.Weather)
}

func (e ForecastEntry) IsNoonSlot() bool {
	return strings.Contains(e.DtTxt, NoonSlot)
}
