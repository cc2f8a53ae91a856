package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-relay/internal/config"
	"github.com/umalmyha/customer-relay/internal/infra"
	"github.com/umalmyha/customer-relay/internal/service"
)

// @title       Customer relay API
// @version     1.0
// @description Relays customers to the downstream collector
// @BasePath    /
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Build()
	if err != nil {
		logrus.Errorf("failed to build config - %v", err)
		return err
	}

	logger, closeLog, err := infra.Logger(cfg.LogCfg)
	if err != nil {
		logrus.Errorf("failed to build logger - %v", err)
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			logrus.Errorf("failed to close log file - %v", err)
		}
	}()

	collectorClient, err := infra.Collector(cfg.CollectorCfg)
	if err != nil {
		logger.Errorf("failed to build collector client - %v", err)
		return err
	}

	relaySvc := service.NewCustomerRelayService(collectorClient, logger)

	app, err := infra.Router(cfg.HTTPCfg, logger, relaySvc)
	if err != nil {
		logger.Errorf("failed to build router - %v", err)
		return err
	}

	logger.Infof("relaying customers to %s", collectorClient.URL())
	return start(app, cfg.HTTPCfg, logger)
}

// start serves app until interrupt, error is returned only if server failed unexpectedly
func start(app *echo.Echo, cfg config.HTTPCfg, logger *logrus.Logger) error {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	go func() {
		logger.Infof("starting http server on port %d", cfg.Port)
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logger.Errorf("failed to stop server gracefully - %v", err)
			return err
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("shutting down the server, unexpected error occurred - %v", err)
			return err
		}
	}
	return nil
}
