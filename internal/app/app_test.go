package app_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/north-cloud/weather-api/internal/app"
	"github.com/jonesrussell/north-cloud/weather-api/internal/logger"
	"github.com/jonesrussell/north-cloud/weather-api/internal/server"
	"github.com/jonesrussell/north-cloud/weather-api/internal/settings"
)

func TestMain(m *testing.M) {
	server.SetMode(settings.ModeTesting)
	os.Exit(m.Run())
}

func get(t *testing.T, h http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew_Index(t *testing.T) {
	t.Parallel()

	cfg := settings.MustLoad(settings.MapSource{
		"PROJECT_NAME": "weather",
		"MODE":         "testing",
	})
	engine := app.New(cfg, logger.NewNop())

	w := get(t, engine, "/api/v1/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body app.IndexResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, app.IndexResponse{ProjectName: "weather", APIVersion: "v1", Mode: "testing"}, body)
}

func TestNew_IndexFollowsAPIPrefixNotVersion(t *testing.T) {
	t.Parallel()

	cfg := settings.MustLoad(settings.MapSource{"API_VERSION": "v2"})
	engine := app.New(cfg, logger.NewNop())

	assert.Equal(t, http.StatusOK, get(t, engine, "/api/v1/", nil).Code)
	assert.Equal(t, http.StatusNotFound, get(t, engine, "/api/v2/", nil).Code)
}

func TestNew_HealthAndMetrics(t *testing.T) {
	t.Parallel()

	engine := app.New(settings.Defaults(), logger.NewNop())

	w := get(t, engine, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"app"`)

	w = get(t, engine, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/health",service="app",status="200"} 1`)
}

func TestNew_CORSFromSettings(t *testing.T) {
	t.Parallel()

	cfg := settings.MustLoad(settings.MapSource{
		"BACKEND_CORS_ORIGINS": `["https://weather.example.com"]`,
	})
	engine := app.New(cfg, logger.NewNop())

	w := get(t, engine, "/health", map[string]string{"Origin": "https://weather.example.com"})
	assert.Equal(t, "https://weather.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(t, engine, "/health", map[string]string{"Origin": "https://other.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogSettings_WarnsOnPrefixMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      settings.MapSource
		wantWarn bool
	}{
		{name: "defaults", src: settings.MapSource{}, wantWarn: false},
		{name: "version only", src: settings.MapSource{"API_VERSION": "v2"}, wantWarn: true},
		{name: "both set", src: settings.MapSource{"API_VERSION": "v2", "API_V1_STR": "/api/v2"}, wantWarn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := filepath.Join(t.TempDir(), "app.log")
			log, err := logger.New(logger.Config{Level: "info", OutputPaths: []string{out}})
			require.NoError(t, err)

			app.LogSettings(log, settings.MustLoad(tt.src))
			_ = log.Sync()

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"msg":"Settings loaded"`)
			if tt.wantWarn {
				assert.Contains(t, string(data), `"level":"warn"`)
			} else {
				assert.NotContains(t, string(data), `"level":"warn"`)
			}
		})
	}
}

func TestNew_IndexLogsWithRequestID(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "app.log")
	log, err := logger.New(logger.Config{Level: "debug", OutputPaths: []string{out}})
	require.NoError(t, err)

	engine := app.New(settings.Defaults(), log)
	w := get(t, engine, "/api/v1/", map[string]string{"X-Request-ID": "req-42"})
	require.Equal(t, http.StatusOK, w.Code)
	_ = log.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var indexLine string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, `"msg":"API index requested"`) {
			indexLine = line
		}
	}
	require.NotEmpty(t, indexLine)
	assert.Contains(t, indexLine, `"request_id":"req-42"`)
	assert.Contains(t, indexLine, `"path":"/api/v1/"`)
}
