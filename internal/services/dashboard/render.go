package dashboard

import (
	"strings"
	"time"

	"weather-dashboard/internal/models"
)

const (
	DailyLimit = 5
	ChartLimit = 8

	DefaultIconBaseURL = "https://openweathermap.org/img/wn"
)

type RenderOptions struct {
	IconBaseURL string
	// Location for weekday and hour labels, time.Local when nil.
	Location *time.Location
}

type CurrentView struct {
	Location    string `json:"location" example:"Paris"`
	Description string `json:"description" example:"light rain"`
	IconURL     string `json:"icon_url" example:"https://openweathermap.org/img/wn/10d@4x.png"`
	Temperature int    `json:"temperature" example:"20"`
	Unit        string `json:"unit" example:"°C"`
	FeelsLike   int    `json:"feels_like" example:"20"`
	Humidity    int    `json:"humidity" example:"64"`
	WindKMH     int    `json:"wind_kmh" example:"15"`
}

type DayView struct {
	Weekday     string `json:"weekday" example:"Fri"`
	IconURL     string `json:"icon_url" example:"https://openweathermap.org/img/wn/03d.png"`
	Label       string `json:"label" example:"Clouds"`
	Temperature int    `json:"temperature" example:"22"`
}

type ChartView struct {
	Labels    []string `json:"labels"`
	Values    []int    `json:"values"`
	AxisLabel string   `json:"axis_label" example:"Temp (°C)"`
}

// View is everything rendered from one (snapshot, unit) pair.
type View struct {
	Current CurrentView `json:"current"`
	Daily   []DayView   `json:"daily"`
	Chart   ChartView   `json:"chart"`
	Title   string      `json:"title"`
}

// Render projects the snapshot into a View. It reports false when there is nothing to render.
func Render(snapshot *models.WeatherSnapshot, unit models.DisplayUnit, opts RenderOptions) (View, bool) {
	if snapshot == nil {
		return View{}, false
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	iconBase := opts.IconBaseURL
	if iconBase == "" {
		iconBase = DefaultIconBaseURL
	}

	current := snapshot.Current
	condition := current.Condition()

	view := View{
		Current: CurrentView{
			Location:    current.Name,
			Description: condition.Description,
			IconURL:     IconURL(iconBase, condition.Icon, true),
			Temperature: DisplayTemp(current.Main.Temp, unit),
			Unit:        unit.Symbol(),
			FeelsLike:   DisplayTemp(current.Main.FeelsLike, unit),
			Humidity:    current.Main.Humidity,
			WindKMH:     WindKMH(current.Wind.Speed),
		},
		Title: WindowTitle(current),
	}

	days := DailyEntries(snapshot.Forecast, DailyLimit)
	view.Daily = make([]DayView, 0, len(days))
	for _, day := range days {
		view.Daily = append(view.Daily, DayView{
			Weekday:     day.Time().In(loc).Format("Mon"),
			IconURL:     IconURL(iconBase, day.Condition().Icon, false),
			Label:       day.Condition().Main,
			Temperature: DisplayTemp(day.Main.Temp, unit),
		})
	}

	points := ChartEntries(snapshot.Forecast, ChartLimit)
	view.Chart = ChartView{
		Labels:    make([]string, 0, len(points)),
		Values:    make([]int, 0, len(points)),
		AxisLabel: "Temp (" + unit.Symbol() + ")",
	}
	for _, point := range points {
		view.Chart.Labels = append(view.Chart.Labels, point.Time().In(loc).Format("15:04"))
		view.Chart.Values = append(view.Chart.Values, DisplayTemp(point.Main.Temp, unit))
	}

	return view, true
}

// DailyEntries returns up to limit noon-slot entries in series order.
func DailyEntries(series models.ForecastSeries, limit int) []models.ForecastEntry {
	var days []models.ForecastEntry
	for _, entry := range series.List {
		if len(days) == limit {
			break
		}
		if entry.IsNoonSlot() {
			days = append(days, entry)
		}
	}
	return days
}

// ChartEntries returns the first limit entries regardless of time of day.
func ChartEntries(series models.ForecastSeries, limit int) []models.ForecastEntry {
	if len(series.List) <= limit {
		return series.List
	}
	return series.List[:limit]
}

// IconURL resolves an icon identifier on the image host. Large selects the @4x variant.
func IconURL(base, icon string, large bool) string {
	if icon == "" {
		return ""
	}

	suffix := ".png"
	if large {
		suffix = "@4x.png"
	}
	return strings.TrimRight(base, "/") + "/" + icon + suffix
}
