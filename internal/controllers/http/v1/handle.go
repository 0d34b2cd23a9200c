package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

// CityRequest asks for the weather of a named city
type CityRequest struct {
	City string `json:"city" example:"Paris"`
}

// CoordinatesRequest asks for the weather at a position
type CoordinatesRequest struct {
	Lat *float64 `json:"lat" example:"48.8566"`
	Lon *float64 `json:"lon" example:"2.3522"`
}

// UnitRequest mirrors the unit toggle: true selects Fahrenheit
type UnitRequest struct {
	Fahrenheit bool `json:"fahrenheit" example:"true"`
}

// AcceptedResponse is returned once a request has been issued
type AcceptedResponse struct {
	Generation uint64 `json:"generation,omitempty" example:"3"`
}

// UnitResponse reports the active display unit
type UnitResponse struct {
	Unit string `json:"unit" example:"F"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"city cannot be empty"`
}

// HandleCityRequest godoc
// @Summary Request weather by city
// @Description Issues a weather request for a city. The result is published to the dashboard view and the event stream.
// @Tags Weather
// @Accept json
// @Produce json
// @Param request body CityRequest true "City name"
// @Success 202 {object} AcceptedResponse "Request issued"
// @Failure 400 {object} ErrorResponse "Bad request - empty city"
// @Failure 503 {object} ErrorResponse "Dashboard stopped"
// @Router /api/v1/weather/city [post]
func (r *routes) handleCityRequest(c *fiber.Ctx) error {
	var req CityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	gen, err := r.dashboard.RequestByCity(c.UserContext(), req.City)
	if err != nil {
		return r.fail(c, err, map[string]any{"city": req.City})
	}

	return c.Status(fiber.StatusAccepted).JSON(AcceptedResponse{Generation: gen})
}

// HandleCoordinatesRequest godoc
// @Summary Request weather by coordinates
// @Description Issues a weather request for a latitude and longitude.
// @Tags Weather
// @Accept json
// @Produce json
// @Param request body CoordinatesRequest true "Coordinates"
// @Success 202 {object} AcceptedResponse "Request issued"
// @Failure 400 {object} ErrorResponse "Bad request - invalid coordinates"
// @Failure 503 {object} ErrorResponse "Dashboard stopped"
// @Router /api/v1/weather/coords [post]
func (r *routes) handleCoordinatesRequest(c *fiber.Ctx) error {
	var req CoordinatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	// Check for required parameters
	if req.Lat == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lat",
		})
	}
	if req.Lon == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lon",
		})
	}

	gen, err := r.dashboard.RequestByCoordinates(c.UserContext(), *req.Lat, *req.Lon)
	if err != nil {
		return r.fail(c, err, map[string]any{"lat": *req.Lat, "lon": *req.Lon})
	}

	return c.Status(fiber.StatusAccepted).JSON(AcceptedResponse{Generation: gen})
}

// HandleGeolocate godoc
// @Summary Request weather for the current location
// @Description Resolves the current position and requests its weather. Lookup failures are published as notifications.
// @Tags Weather
// @Produce json
// @Success 202 {object} AcceptedResponse "Lookup started"
// @Failure 503 {object} ErrorResponse "Dashboard stopped"
// @Router /api/v1/weather/geolocate [post]
func (r *routes) handleGeolocate(c *fiber.Ctx) error {
	if err := r.dashboard.UseGeolocation(c.UserContext()); err != nil {
		return r.fail(c, err, nil)
	}

	return c.Status(fiber.StatusAccepted).JSON(AcceptedResponse{})
}

// HandleSetUnit godoc
// @Summary Set the display unit
// @Description Switches between Celsius and Fahrenheit and re-renders the cached weather without fetching.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body UnitRequest true "Unit toggle"
// @Success 200 {object} UnitResponse "Unit applied"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 503 {object} ErrorResponse "Dashboard stopped"
// @Router /api/v1/unit [put]
func (r *routes) handleSetUnit(c *fiber.Ctx) error {
	var req UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	unit := models.UnitFromToggle(req.Fahrenheit)
	if err := r.dashboard.SetUnit(c.UserContext(), unit); err != nil {
		return r.fail(c, err, map[string]any{"unit": unit})
	}

	return c.JSON(UnitResponse{Unit: string(unit)})
}

// HandleDashboard godoc
// @Summary Get the dashboard view
// @Description Returns everything currently on display: clock, current conditions, daily forecast, chart, title, loading state and recent notifications.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} presenter.State "Current view"
// @Router /api/v1/dashboard [get]
func (r *routes) handleDashboard(c *fiber.Ctx) error {
	return c.JSON(r.store.Snapshot())
}

func (r *routes) fail(c *fiber.Ctx, err error, fields map[string]any) error {
	switch {
	case errors.Is(err, dashboard.ErrEmptyCity), errors.Is(err, models.ErrInvalidCoordinates):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, dashboard.ErrStopped):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: err.Error()})
	}

	r.l.Error(err, fields)

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "Failed to issue request",
	})
}
