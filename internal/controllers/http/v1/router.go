package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/presenter"
	"weather-dashboard/pkg/logger"
)

const defaultHeartbeat = 15 * time.Second

// DashboardService is the part of the dashboard the API drives.
type DashboardService interface {
	RequestByCity(ctx context.Context, city string) (uint64, error)
	RequestByCoordinates(ctx context.Context, lat, lon float64) (uint64, error)
	UseGeolocation(ctx context.Context) error
	SetUnit(ctx context.Context, unit models.DisplayUnit) error
}

type routes struct {
	dashboard DashboardService
	store     *presenter.Store
	l         *logger.Logger

	// done ends open event streams on shutdown.
	done      <-chan struct{}
	heartbeat time.Duration
}

func NewRouter(
	app *fiber.App,
	dashboard DashboardService,
	store *presenter.Store,
	done <-chan struct{},
	l *logger.Logger,
) {
	r := &routes{
		dashboard: dashboard,
		store:     store,
		l:         l,
		done:      done,
		heartbeat: defaultHeartbeat,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	api := app.Group("/api/v1")
	api.Post("/weather/city", r.handleCityRequest)
	api.Post("/weather/coords", r.handleCoordinatesRequest)
	api.Post("/weather/geolocate", r.handleGeolocate)
	api.Put("/unit", r.handleSetUnit)
	api.Get("/dashboard", r.handleDashboard)
	api.Get("/events", r.handleEvents)
}
