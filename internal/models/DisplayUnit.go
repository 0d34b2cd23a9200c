package models

import (
	"fmt"
	"strings"
)

type DisplayUnit string

const (
	Celsius    DisplayUnit = "C"
	Fahrenheit DisplayUnit = "F"
)

func ParseDisplayUnit(s string) (DisplayUnit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C":
		return Celsius, nil
	case "F":
		return Fahrenheit, nil
	}
	return "", fmt.Errorf("unknown display unit %q", s)
}

// UnitFromToggle maps the unit switch: checked means Fahrenheit.
func UnitFromToggle(checked bool) DisplayUnit {
	if checked {
		return Fahrenheit
	}
	return Celsius
}

func (u DisplayUnit) Symbol() string {
	return "°" + string(u)
}
