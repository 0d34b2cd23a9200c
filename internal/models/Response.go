package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedResponse = errors.New("malformed weather response")

// WeatherSnapshot is the payload returned by the get_weather commands.
type WeatherSnapshot struct {
	Current  CurrentConditions `json:"current"`
	Forecast ForecastSeries    `json:"forecast"`
}

// DecodeSnapshot parses a serialized snapshot. Both top-level members must be present.
func DecodeSnapshot(body []byte) (*WeatherSnapshot, error) {
	var raw struct {
		Current  json.RawMessage `json:"current"`
		Forecast json.RawMessage `json:"forecast"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if isAbsent(raw.Current) {
		return nil, fmt.Errorf("%w: missing current conditions", ErrMalformedResponse)
	}
	if isAbsent(raw.Forecast) {
		return nil, fmt.Errorf("%w: missing forecast", ErrMalformedResponse)
	}

	var snapshot WeatherSnapshot
	if err := json.Unmarshal(raw.Current, &snapshot.Current); err != nil {
		return nil, fmt.Errorf("%w: current conditions: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(raw.Forecast, &snapshot.Forecast); err != nil {
		return nil, fmt.Errorf("%w: forecast: %v", ErrMalformedResponse, err)
	}

	return &snapshot, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
