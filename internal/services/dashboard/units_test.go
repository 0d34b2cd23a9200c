package dashboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-dashboard/internal/models"
)

func TestDisplayTemp(t *testing.T) {
	cases := []struct {
		celsius float64
		unit    models.DisplayUnit
		want    int
	}{
		{20.4, models.Celsius, 20},
		{20.4, models.Fahrenheit, 69},
		{0, models.Fahrenheit, 32},
		{-40, models.Fahrenheit, -40},
		{100, models.Fahrenheit, 212},
		{21.5, models.Celsius, 22},
		{-3.5, models.Celsius, -4},
		{36.6, models.Fahrenheit, 98},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DisplayTemp(tc.celsius, tc.unit), "%.2f %s", tc.celsius, tc.unit)
	}
}

func TestDisplayTemp_MatchesFormulaAcrossRange(t *testing.T) {
	for c := -60.0; c <= 60.0; c += 0.1 {
		assert.Equal(t, int(math.Round(c*9/5+32)), DisplayTemp(c, models.Fahrenheit))
		assert.Equal(t, int(math.Round(c)), DisplayTemp(c, models.Celsius))
	}
}

func TestWindKMH(t *testing.T) {
	assert.Equal(t, 15, WindKMH(4.1))
	assert.Equal(t, 0, WindKMH(0))
	assert.Equal(t, 36, WindKMH(10))
}
