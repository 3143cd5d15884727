package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(logger); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns every resource it opens, so its deferred cleanups always execute
// before main exits.
func run(logger *slog.Logger) error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var publisher ports.EventPublisher
	if configs.KafkaHost != "" {
		writer := kafka.NewWriter(configs.KafkaHost)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("failed to close kafka writer", "error", err)
			}
		}()
		publisher = kafka.NewStatusEventPublisher(writer, configs.KafkaOrderStatusTopic, logger)
	}

	uowFactory, closeStorage, err := cmd.OpenStorage(configs, publisher, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	app, err := cmd.NewCompositionRoot(configs, uowFactory, logger)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	if err := app.CreateHTTPServer().Register(e); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
