package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonesrussell/north-cloud/weather-api/internal/app"
	"github.com/jonesrussell/north-cloud/weather-api/internal/logger"
	"github.com/jonesrussell/north-cloud/weather-api/internal/server"
	"github.com/jonesrussell/north-cloud/weather-api/internal/settings"
)

const serviceName = "weather-api"

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, srvCfg, err := settings.LoadEnvironment(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		return 1
	}

	// Initialize logger
	log, err := createLogger(cfg, srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	app.LogSettings(log, cfg)

	return runServer(cfg, srvCfg, log)
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *settings.Settings, srvCfg *settings.Server) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       srvCfg.LogLevel,
		Development: cfg.Mode == settings.ModeDevelopment,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", serviceName)), nil
}

// runServer builds the application and serves it until shutdown.
func runServer(cfg *settings.Settings, srvCfg *settings.Server, log logger.Logger) int {
	server.SetMode(cfg.Mode)

	httpCfg := server.NewConfig(cfg, srvCfg.Port)
	engine := app.NewWithServerConfig(cfg, httpCfg, log)
	srv := server.NewServer(httpCfg, log, engine)

	if err := srv.RunWithGracefulShutdown(context.Background()); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("Weather API exited cleanly")
	return 0
}
