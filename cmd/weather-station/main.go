package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-station/config"
	v1 "weather-station/internal/controllers/http/v1"
	"weather-station/internal/scheduler"
	"weather-station/internal/things"
	"weather-station/pkg/httpserver"
	"weather-station/pkg/observe"
)

// @title Weather Station
// @version 1.0.0
// @description A virtual Web-of-Things weather station that polls Weather Underground and exposes the readings as typed properties.

// @host localhost:8080
// @BasePath /
// @schemes http

// @tag.name Things
// @tag.description Thing and property read operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	hook := observe.NewSentryHook(cnf.AppName, cnf.SentryDSN, cnf.SentryDebug)
	if hook != nil {
		writers = append(writers, hook)
		defer hook.Flush()
	}

	l := observe.NewZapLogger(cnf.AppName, writers...)

	app := httpserver.InitFiberServer(cnf.AppName)

	httpClient := &http.Client{}

	registry, err := things.InitThings(cnf, httpClient, l)
	if err != nil {
		l.Fatal("cannot build things", map[string]any{"err": err})
	}

	sched := scheduler.New(ctx, registry, time.Duration(cnf.PollSeconds)*time.Second, l)
	if err := sched.Start(); err != nil {
		l.Fatal("cannot start scheduler", map[string]any{"err": err})
	}

	v1.NewRouter(
		app,
		registry,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":   cnf.Port,
		"things": len(registry.All()),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		sched.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
