package models

// CurrentConditions mirrors the OpenWeatherMap /weather payload in metric units.
type CurrentConditions struct {
	Name    string      `json:"name" example:"Paris"`
	Weather []Condition `json:"weather"`
	Main    CurrentMain `json:"main"`
	Wind    Wind        `json:"wind"`
}

type CurrentMain struct {
	Temp      float64 `json:"temp" example:"20.4"`
	FeelsLike float64 `json:"feels_like" example:"19.8"`
	Humidity  int     `json:"humidity" example:"64"`
}

// Wind speed is in meters per second.
type Wind struct {
	Speed float64 `json:"speed" example:"4.1"`
}

type Condition struct {
	ID          int    `json:"id,omitempty" example:"800"`
	Main        string `json:"main" example:"Clear"`
	Description string `json:"description" example:"clear sky"`
	Icon        string `json:"icon" example:"01d"`
}

func (c CurrentConditions) Condition() Condition {
	return firstCondition(c.Weather)
}

func firstCondition(conditions []Condition) Condition {
	if len(conditions) == 0 {
		return Condition{}
	}
	return conditions[0]
}
