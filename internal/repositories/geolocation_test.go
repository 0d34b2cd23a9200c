package repositories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
)

func newLocator(t *testing.T, status int, body string) *IPLocator {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return NewIPLocator(server.URL, testLogger(), server.Client())
}

func TestIPLocator_Success(t *testing.T) {
	locator := newLocator(t, http.StatusOK, `{"status": "success", "lat": 48.8566, "lon": 2.3522, "city": "Paris"}`)

	coords, err := locator.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Coordinates{Lat: 48.8566, Lon: 2.3522}, coords)
}

func TestIPLocator_Denied(t *testing.T) {
	locator := newLocator(t, http.StatusOK, `{"status": "fail", "message": "private range"}`)

	_, err := locator.Locate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeolocationDenied))
}

func TestIPLocator_Unavailable(t *testing.T) {
	locator := newLocator(t, http.StatusServiceUnavailable, ``)

	_, err := locator.Locate(context.Background())
	assert.True(t, errors.Is(err, ErrGeolocationUnavailable))

	locator = newLocator(t, http.StatusOK, `not json`)
	_, err = locator.Locate(context.Background())
	assert.True(t, errors.Is(err, ErrGeolocationUnavailable))
}

func TestDisabledLocator(t *testing.T) {
	_, err := DisabledLocator{}.Locate(context.Background())
	assert.True(t, errors.Is(err, ErrGeolocationUnavailable))
}
