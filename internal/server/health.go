package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus represents the status of a health check.
type HealthStatus string

// HealthStatusHealthy indicates the service is healthy.
const HealthStatusHealthy HealthStatus = "healthy"

// HealthResponse is the health check response body.
type HealthResponse struct {
	Status  HealthStatus `json:"status"`
	Service string       `json:"service"`
	Version string       `json:"version"`
	Uptime  string       `json:"uptime,omitempty"`
}

// RegisterHealthRoutes adds the health endpoints to router:
//   - GET /health returns status, service name, version and uptime
//   - HEAD /health is a body-less probe for load balancers
func RegisterHealthRoutes(router gin.IRoutes, serviceName, version string) {
	started := time.Now()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  HealthStatusHealthy,
			Service: serviceName,
			Version: version,
			Uptime:  time.Since(started).Truncate(time.Second).String(),
		})
	})
	router.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}
