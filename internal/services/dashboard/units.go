package dashboard

import (
	"math"

	"weather-dashboard/internal/models"
)

// DisplayTemp converts a stored Celsius value for display. math.Round rounds
// half away from zero.
func DisplayTemp(celsius float64, unit models.DisplayUnit) int {
	if unit == models.Fahrenheit {
		return int(math.Round(celsius*9/5 + 32))
	}
	return int(math.Round(celsius))
}

// WindKMH converts meters per second to whole kilometers per hour.
func WindKMH(metersPerSecond float64) int {
	return int(math.Round(metersPerSecond * 3.6))
}
