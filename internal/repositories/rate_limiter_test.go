package repositories

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBackend struct {
	calls atomic.Int32
}

func (c *countingBackend) Name() string { return "counting" }

func (c *countingBackend) GetWeather(ctx context.Context, city string) ([]byte, error) {
	c.calls.Add(1)
	return []byte(`{}`), nil
}

func (c *countingBackend) GetWeatherByCoords(ctx context.Context, lat, lon float64) ([]byte, error) {
	c.calls.Add(1)
	return []byte(`{}`), nil
}

func TestRateLimitedBackend_Name(t *testing.T) {
	limited := NewRateLimitedBackend(&countingBackend{}, 1, 1)
	assert.Equal(t, "counting [Rate Limited]", limited.Name())
}

func TestRateLimitedBackend_BurstThenWait(t *testing.T) {
	inner := &countingBackend{}
	limited := NewRateLimitedBackend(inner, 0.01, 2)

	_, err := limited.GetWeather(context.Background(), "Paris")
	require.NoError(t, err)
	_, err = limited.GetWeatherByCoords(context.Background(), 1, 2)
	require.NoError(t, err)

	// The bucket is empty and refills far slower than the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = limited.GetWeather(ctx, "Paris")
	assert.Error(t, err)
	assert.Equal(t, int32(2), inner.calls.Load())
}
