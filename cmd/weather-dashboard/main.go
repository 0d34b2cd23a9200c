package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/config"
	_ "weather-dashboard/docs"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/presenter"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Headless weather dashboard: issue weather requests, toggle the display unit and follow the rendered view as JSON or server-sent events.

// @contact.name Weather Dashboard Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Weather requests
// @tag.name Dashboard
// @tag.description Dashboard view and display settings
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config: %v\n", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot init sentry: %v\n", err)
		} else {
			writers = append(writers, hook)
		}
	}

	l := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	location, err := time.LoadLocation(cnf.Dashboard.Timezone)
	if err != nil {
		l.Fatal("cannot load timezone", map[string]any{"err": err, "timezone": cnf.Dashboard.Timezone})
	}

	unit, err := models.ParseDisplayUnit(cnf.Dashboard.DefaultUnit)
	if err != nil {
		l.Fatal("cannot parse default unit", map[string]any{"err": err})
	}

	backend, err := repositories.InitWeatherBackend(cnf, l)
	if err != nil {
		l.Fatal("cannot init weather backend", map[string]any{"err": err})
	}

	locator := repositories.InitLocator(cnf, l)

	store := presenter.NewStore(l)

	dash := dashboard.NewDashboard(backend, locator, store, l, dashboard.Options{
		LoadingDelay: cnf.LoadingDelay(),
		ClockPeriod:  cnf.ClockPeriod(),
		Clock12h:     cnf.Dashboard.Clock12h,
		DefaultUnit:  unit,
		Render: dashboard.RenderOptions{
			IconBaseURL: cnf.Dashboard.IconBaseURL,
			Location:    location,
		},
	})

	dashDone := make(chan struct{})
	go func() {
		defer close(dashDone)
		if err := dash.Run(ctx); err != nil {
			l.Error(err)
		}
	}()

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cnf.Server.IdleTimeout) * time.Second,
	})

	v1.NewRouter(
		app,
		dash,
		store,
		ctx.Done(),
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": backend.Name(),
		"env":      cnf.App.Env,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		// Cancelling first ends the event loop and any open event streams.
		cancel()
		<-dashDone

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
