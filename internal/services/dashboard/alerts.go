package dashboard

import (
	"fmt"

	"weather-dashboard/internal/models"
)

var severeConditions = map[string]bool{
	"Thunderstorm": true,
	"Rain":         true,
	"Snow":         true,
	"Extreme":      true,
}

// WindowTitle is always in Celsius with one decimal, independent of the display unit.
func WindowTitle(current models.CurrentConditions) string {
	if current.Name == "" {
		return ""
	}
	return fmt.Sprintf("%s: %.1f°C", current.Name, current.Main.Temp)
}

func SevereWeatherAlert(current models.CurrentConditions) (Notification, bool) {
	condition := current.Condition().Main
	if !severeConditions[condition] {
		return Notification{}, false
	}

	city := current.Name
	if city == "" {
		city = "Unknown City"
	}

	return Notification{
		Kind:    NotificationSevereWeather,
		Title:   "Severe Weather Alert",
		Message: fmt.Sprintf("Warning: %s detected in %s. Stay safe!", condition, city),
	}, true
}
