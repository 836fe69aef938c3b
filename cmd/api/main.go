package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"usersvc/internal/app/user"
	"usersvc/internal/config"
	"usersvc/internal/db"
	"usersvc/internal/db/repository"
	"usersvc/internal/http/handlers/health"
	userhandler "usersvc/internal/http/handlers/user"
	"usersvc/internal/http/router"
	"usersvc/internal/kafka"
	"usersvc/internal/logging"
	"usersvc/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
		cfg.Log.Level,
	)
	defer logging.Sync(logger)

	logger.Info("starting service", "env", cfg.Environment)

	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	dbClient, err := db.NewClient(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer dbClient.Close()

	bus, closeBus, err := kafka.NewBus(cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("init kafka bus: %w", err)
	}
	defer func() {
		if err := closeBus(context.Background()); err != nil {
			logger.Error("failed to close kafka bus", "error", err)
		}
	}()

	kafkaRouter, err := kafka.NewRouter(cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("init kafka router: %w", err)
	}

	userRepo := repository.NewUserRepository(dbClient, logger)
	userEvents := kafka.NewUserEvents(bus, cfg.Kafka, logger)
	userService := user.NewService(userRepo, userEvents, logger)

	httpRouter := router.NewRouter(
		logger,
		cfg.HTTP.RequestTimeout,
		health.NewHandler(dbClient, logger),
		userhandler.NewHandler(userService, logger),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      otelhttp.NewHandler(httpRouter, cfg.Observability.ServiceName),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", "host", cfg.HTTP.Host, "port", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go func() {
		if err := kafkaRouter.Run(ctx); err != nil {
			errCh <- fmt.Errorf("kafka router: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case runErr = <-errCh:
		logger.Error("fatal error from subsystem", "error", runErr)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}
	if err := kafkaRouter.Close(shutdownCtx); err != nil {
		logger.Error("failed to close kafka router", "error", err)
	}

	logger.Info("service stopped")
	return runErr
}
