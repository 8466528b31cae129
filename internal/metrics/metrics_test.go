package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(m *Metrics) *gin.Engine {
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))
	return router
}

func TestMiddleware_CountsByRoute(t *testing.T) {
	t.Parallel()

	m := New("weather")
	router := newRouter(m)

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	expected := `
# HELP http_requests_total Total HTTP requests by method, route and status
# TYPE http_requests_total counter
http_requests_total{method="GET",route="/items/:id",service="weather",status="200"} 2
http_requests_total{method="GET",route="unmatched",service="weather",status="404"} 1
`
	err := testutil.GatherAndCompare(m.registry, strings.NewReader(expected), "http_requests_total")
	require.NoError(t, err)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	t.Parallel()

	m := New("weather")
	router := newRouter(m)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/7", http.NoBody))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds_bucket")
	assert.Contains(t, w.Body.String(), `route="/items/:id"`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		a := New("a")
		b := New("b")
		assert.NotSame(t, a.registry, b.registry)
	})
}
