// Package server provides the gin engine, standard middleware, health
// endpoints and HTTP server lifecycle for the service.
package server

import (
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/north-cloud/weather-api/internal/settings"
)

// Default timeout values for HTTP server configuration.
const (
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultCORSMaxAge      = 12 * time.Hour
)

// Config holds the HTTP server configuration.
type Config struct {
	// Port is the port number to listen on.
	Port int

	// Mode selects the gin mode.
	Mode settings.Mode

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	CORS CORSConfig

	// ServiceName and ServiceVersion are reported by the health endpoint.
	ServiceName    string
	ServiceVersion string
}

// CORSConfig holds the CORS middleware configuration.
type CORSConfig struct {
	// AllowedOrigins is a list of origins a cross-domain request can be executed from.
	// If the special "*" value is present, all origins will be allowed.
	// Nil means the default; an empty non-nil list allows no origin.
	AllowedOrigins []string

	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool

	// MaxAge indicates how long the results of a preflight request can be cached.
	MaxAge time.Duration
}

// NewConfig derives the server configuration from application settings.
func NewConfig(cfg *settings.Settings, port int) *Config {
	c := &Config{
		Port:           port,
		Mode:           cfg.Mode,
		ServiceName:    cfg.ProjectName,
		ServiceVersion: cfg.APIVersion,
		CORS: CORSConfig{
			AllowedOrigins: slices.Clone(cfg.BackendCORSOrigins),
		},
	}
	c.SetDefaults()
	return c
}

// SetDefaults applies default values to the config where values are not set.
func (c *Config) SetDefaults() {
	if c.Mode == "" {
		c.Mode = settings.DefaultMode
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	c.CORS.SetDefaults()
}

// SetDefaults applies default values to the CORS config where values are not set.
func (c *CORSConfig) SetDefaults() {
	if c.AllowedOrigins == nil {
		c.AllowedOrigins = settings.DefaultBackendCORSOrigins()
	}
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = []string{
			"Origin",
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
			"X-Request-ID",
		}
	}
	if c.MaxAge == 0 {
		c.MaxAge = DefaultCORSMaxAge
	}
}

// GinMode maps a deployment mode to the gin mode constant.
func GinMode(mode settings.Mode) string {
	switch mode {
	case settings.ModeProduction:
		return gin.ReleaseMode
	case settings.ModeTesting:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// SetMode applies the gin mode for mode to the process.
func SetMode(mode settings.Mode) {
	gin.SetMode(GinMode(mode))
}
