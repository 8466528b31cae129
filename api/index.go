// Package handler is the serverless entry point.
//
// The platform's Go runtime compiles this file on its own and routes every
// request to its single exported http.HandlerFunc. Keep Handler the only
// exported identifier here: additional exported functions make the runtime's
// entry detection ambiguous.
package handler

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/north-cloud/weather-api/internal/app"
	"github.com/jonesrussell/north-cloud/weather-api/internal/bootstrap"
	"github.com/jonesrussell/north-cloud/weather-api/internal/logger"
	"github.com/jonesrussell/north-cloud/weather-api/internal/server"
	"github.com/jonesrussell/north-cloud/weather-api/internal/settings"
)

var (
	initOnce sync.Once
	initErr  error

	// application is the engine built by app.New, served as-is.
	application *gin.Engine
)

// Handler serves every request with the application engine. Settings are
// loaded and the engine is built on the first call only.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(initialize)

	if initErr != nil {
		http.Error(w, "service unavailable: configuration error", http.StatusServiceUnavailable)
		return
	}
	application.ServeHTTP(w, r)
}

// initialize puts the project root on the search path so .env and
// config.yml resolve regardless of the working directory the platform uses,
// then loads settings and builds the application.
func initialize() {
	root := bootstrap.EnsureProjectRoot()

	cfg, srvCfg, err := settings.LoadEnvironment(bootstrap.Default)
	if err != nil {
		initErr = err
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		return
	}

	log, err := logger.New(logger.Config{
		Level:       srvCfg.LogLevel,
		Development: cfg.Mode == settings.ModeDevelopment,
	})
	if err != nil {
		initErr = err
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return
	}
	log = log.With(logger.String("service", "weather-api"), logger.String("project_root", root))

	app.LogSettings(log, cfg)

	server.SetMode(cfg.Mode)
	application = app.New(cfg, log)
}
