// Package app builds the service's HTTP application from its settings.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/north-cloud/weather-api/internal/logger"
	"github.com/jonesrussell/north-cloud/weather-api/internal/metrics"
	"github.com/jonesrussell/north-cloud/weather-api/internal/server"
	"github.com/jonesrussell/north-cloud/weather-api/internal/settings"
)

// IndexResponse describes the API mounted at API_V1_STR.
type IndexResponse struct {
	ProjectName string `json:"project_name"`
	APIVersion  string `json:"api_version"`
	Mode        string `json:"mode"`
}

// New builds the application engine. The engine listens on no port; callers
// serve it through server.NewServer or a serverless handler.
func New(cfg *settings.Settings, log logger.Logger) *gin.Engine {
	return NewWithServerConfig(cfg, server.NewConfig(cfg, settings.DefaultPort), log)
}

// NewWithServerConfig is like New but takes an explicit server configuration.
func NewWithServerConfig(cfg *settings.Settings, srvCfg *server.Config, log logger.Logger) *gin.Engine {
	m := metrics.New(cfg.ProjectName)

	return server.NewEngine(srvCfg, log, func(router *gin.Engine) {
		router.Use(m.Middleware())

		server.RegisterHealthRoutes(router, cfg.ProjectName, cfg.APIVersion)
		router.GET("/metrics", gin.WrapH(m.Handler()))

		api := router.Group(cfg.APIV1Str)
		api.GET("/", indexHandler(cfg))
	})
}

func indexHandler(cfg *settings.Settings) gin.HandlerFunc {
	body := IndexResponse{
		ProjectName: cfg.ProjectName,
		APIVersion:  cfg.APIVersion,
		Mode:        cfg.Mode.String(),
	}
	return func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Debug("API index requested",
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusOK, body)
	}
}

// LogSettings records the effective settings and warns when API_V1_STR does
// not follow API_VERSION.
func LogSettings(log logger.Logger, cfg *settings.Settings) {
	log.Info("Settings loaded",
		logger.String("project_name", cfg.ProjectName),
		logger.String("mode", cfg.Mode.String()),
		logger.String("api_version", cfg.APIVersion),
		logger.String("api_prefix", cfg.APIV1Str),
		logger.Strings("cors_origins", cfg.BackendCORSOrigins),
	)

	if !cfg.APIPathConsistent() {
		log.Warn("API_V1_STR does not match API_VERSION; set API_V1_STR explicitly",
			logger.String("api_version", cfg.APIVersion),
			logger.String("api_prefix", cfg.APIV1Str),
		)
	}
}
