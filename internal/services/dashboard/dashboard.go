package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

const queueSize = 64

var (
	ErrEmptyCity = errors.New("city cannot be empty")
	ErrStopped   = errors.New("dashboard stopped")
)

type Options struct {
	LoadingDelay time.Duration
	ClockPeriod  time.Duration
	Clock12h     bool
	DefaultUnit  models.DisplayUnit
	Render       RenderOptions
	Clock        Clock
}

// Dashboard owns the presentation state. Every state change runs on the
// goroutine executing Run; other goroutines only enqueue work.
type Dashboard struct {
	backend   repositories.WeatherBackend
	locator   repositories.Locator
	presenter Presenter
	l         *logger.Logger
	opts      Options

	queue   chan func()
	stopped chan struct{}

	// Loop-owned state.
	runCtx       context.Context
	snapshot     *models.WeatherSnapshot
	unit         models.DisplayUnit
	chart        Chart
	generation   uint64
	inFlight     bool
	spinnerTimer *time.Timer
}

func NewDashboard(
	backend repositories.WeatherBackend,
	locator repositories.Locator,
	presenter Presenter,
	l *logger.Logger,
	opts Options,
) *Dashboard {
	if opts.ClockPeriod <= 0 {
		opts.ClockPeriod = time.Second
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.DefaultUnit == "" {
		opts.DefaultUnit = models.Celsius
	}
	if locator == nil {
		locator = repositories.DisabledLocator{}
	}

	return &Dashboard{
		backend:   backend,
		locator:   locator,
		presenter: presenter,
		l:         l,
		opts:      opts,
		queue:     make(chan func(), queueSize),
		stopped:   make(chan struct{}),
		unit:      opts.DefaultUnit,
	}
}

// Run processes clock ticks, user actions and fetch completions until ctx is done.
func (d *Dashboard) Run(ctx context.Context) error {
	d.runCtx = ctx
	defer close(d.stopped)

	ticker := time.NewTicker(d.opts.ClockPeriod)
	defer ticker.Stop()

	d.presenter.SetLoading(LoadingIdle)
	d.updateClock()

	d.l.Info("dashboard started", map[string]any{
		"unit":        d.unit,
		"clockPeriod": d.opts.ClockPeriod.String(),
	})

	for {
		select {
		case <-ctx.Done():
			d.stopSpinnerTimer()
			d.l.Info("dashboard stopped")
			return nil
		case <-ticker.C:
			d.updateClock()
		case fn := <-d.queue:
			fn()
		}
	}
}

// RequestByCity issues get_weather and returns the request generation.
func (d *Dashboard) RequestByCity(ctx context.Context, city string) (uint64, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return 0, ErrEmptyCity
	}

	var gen uint64
	err := d.call(ctx, func() {
		gen = d.issue(repositories.CommandGetWeather, map[string]any{"city": city},
			func(ctx context.Context) ([]byte, error) {
				return d.backend.GetWeather(ctx, city)
			})
	})
	return gen, err
}

// RequestByCoordinates issues get_weather_by_coords and returns the request generation.
func (d *Dashboard) RequestByCoordinates(ctx context.Context, lat, lon float64) (uint64, error) {
	coords := models.Coordinates{Lat: lat, Lon: lon}
	if err := coords.Validate(); err != nil {
		return 0, err
	}

	var gen uint64
	err := d.call(ctx, func() {
		gen = d.issueCoordinates(coords)
	})
	return gen, err
}

// UseGeolocation resolves the current position and then requests its weather.
// A failed lookup is reported to the user and makes no backend call.
func (d *Dashboard) UseGeolocation(ctx context.Context) error {
	return d.post(ctx, func() {
		runCtx := d.runCtx
		go func() {
			coords, err := d.locator.Locate(runCtx)
			_ = d.post(context.Background(), func() {
				if err != nil {
					d.l.Warning("geolocation failed", map[string]any{"err": err.Error()})
					d.notifyError(err)
					return
				}
				d.issueCoordinates(coords)
			})
		}()
	})
}

// SetUnit changes the display unit and re-renders the cached snapshot without fetching.
func (d *Dashboard) SetUnit(ctx context.Context, unit models.DisplayUnit) error {
	return d.call(ctx, func() {
		if d.unit == unit {
			return
		}
		d.unit = unit
		d.render()
	})
}

// State returns the current snapshot and display unit.
func (d *Dashboard) State(ctx context.Context) (*models.WeatherSnapshot, models.DisplayUnit, error) {
	var (
		snapshot *models.WeatherSnapshot
		unit     models.DisplayUnit
	)
	err := d.call(ctx, func() {
		snapshot, unit = d.snapshot, d.unit
	})
	return snapshot, unit, err
}

func (d *Dashboard) post(ctx context.Context, fn func()) error {
	select {
	case d.queue <- fn:
		return nil
	case <-d.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// call runs fn on the loop and waits for it.
func (d *Dashboard) call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := d.post(ctx, func() {
		fn()
		close(done)
	}); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-d.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dashboard) issueCoordinates(coords models.Coordinates) uint64 {
	return d.issue(repositories.CommandGetWeatherByCoords, map[string]any{"lat": coords.Lat, "lon": coords.Lon},
		func(ctx context.Context) ([]byte, error) {
			return d.backend.GetWeatherByCoords(ctx, coords.Lat, coords.Lon)
		})
}

// issue starts a backend call under a new generation. Only the latest
// generation may install its result or clear the loading state.
func (d *Dashboard) issue(command string, args map[string]any, invoke func(context.Context) ([]byte, error)) uint64 {
	d.generation++
	gen := d.generation
	d.inFlight = true

	d.l.Info("issuing backend command", map[string]any{
		"command":    command,
		"args":       args,
		"generation": gen,
	})

	d.presenter.SetLoading(LoadingPending)

	d.stopSpinnerTimer()
	d.spinnerTimer = time.AfterFunc(d.opts.LoadingDelay, func() {
		_ = d.post(context.Background(), func() { d.revealSpinner(gen) })
	})

	runCtx := d.runCtx
	go func() {
		body, err := invoke(runCtx)
		_ = d.post(context.Background(), func() { d.complete(gen, command, body, err) })
	}()

	return gen
}

func (d *Dashboard) revealSpinner(gen uint64) {
	if gen != d.generation || !d.inFlight {
		return
	}
	d.presenter.SetLoading(LoadingSpinner)
}

func (d *Dashboard) complete(gen uint64, command string, body []byte, err error) {
	if gen != d.generation {
		d.l.Debug("discarding stale response", map[string]any{
			"command":    command,
			"generation": gen,
			"latest":     d.generation,
		})
		return
	}

	d.inFlight = false
	d.stopSpinnerTimer()
	defer d.presenter.SetLoading(LoadingIdle)

	if err != nil {
		d.l.Error(err, map[string]any{"command": command, "generation": gen})
		d.notifyError(err)
		return
	}

	snapshot, err := models.DecodeSnapshot(body)
	if err != nil {
		d.l.Error(err, map[string]any{"command": command, "generation": gen})
		d.notifyError(err)
		return
	}

	d.snapshot = snapshot
	d.render()

	d.l.Info("weather updated", map[string]any{
		"command":    command,
		"generation": gen,
		"location":   snapshot.Current.Name,
		"entries":    len(snapshot.Forecast.List),
	})

	if alert, ok := SevereWeatherAlert(snapshot.Current); ok {
		alert.At = d.opts.Clock.Now()
		d.presenter.Notify(alert)
	}
}

func (d *Dashboard) render() {
	view, ok := Render(d.snapshot, d.unit, d.opts.Render)
	if !ok {
		return
	}

	d.presenter.ShowCurrent(view.Current)
	d.presenter.ShowDaily(view.Daily)
	if d.chart != nil {
		d.chart.Destroy()
	}
	d.chart = d.presenter.DrawChart(view.Chart)
	d.presenter.SetTitle(view.Title)
}

func (d *Dashboard) updateClock() {
	now := d.opts.Clock.Now()
	if d.opts.Render.Location != nil {
		now = now.In(d.opts.Render.Location)
	}
	d.presenter.ShowClock(FormatClock(now, d.opts.Clock12h))
}

func (d *Dashboard) notifyError(err error) {
	d.presenter.Notify(Notification{
		Kind:    NotificationError,
		Message: "Error: " + err.Error(),
		At:      d.opts.Clock.Now(),
	})
}

func (d *Dashboard) stopSpinnerTimer() {
	if d.spinnerTimer != nil {
		d.spinnerTimer.Stop()
		d.spinnerTimer = nil
	}
}
