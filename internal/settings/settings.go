// Package settings loads the service's typed configuration from layered
// key/value sources.
//
// Sources are consulted in precedence order (highest first):
//
//  1. Process environment variables
//  2. The .env file (ENV_FILE if set, otherwise .env on the search path)
//  3. An optional YAML settings file (CONFIG_PATH if set, otherwise config.yml)
//  4. Static defaults
//
// Keys are case-sensitive and unknown keys are ignored. Every field is parsed
// explicitly; an invalid value fails construction with a *ValidationError
// naming the key.
//
// Example .env file:
//
//	PROJECT_NAME=weather
//	MODE=production
//	BACKEND_CORS_ORIGINS=["https://example.com","https://admin.example.com"]
package settings

// Mode is the deployment mode of the service.
type Mode string

const (
	// ModeDevelopment enables debug behaviour.
	ModeDevelopment Mode = "development"
	// ModeProduction is the release configuration.
	ModeProduction Mode = "production"
	// ModeTesting is used by automated test runs.
	ModeTesting Mode = "testing"
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// Setting keys. WHEATER_URL keeps the spelling deployments already use.
const (
	KeyProjectName        = "PROJECT_NAME"
	KeyBackendCORSOrigins = "BACKEND_CORS_ORIGINS"
	KeyMode               = "MODE"
	KeyAPIVersion         = "API_VERSION"
	KeyAPIV1Str           = "API_V1_STR"
	KeyWeatherURL         = "WHEATER_URL"
)

// Default setting values.
const (
	DefaultProjectName = "app"
	DefaultMode        = ModeDevelopment
	DefaultAPIVersion  = "v1"
	DefaultWeatherURL  = "https://wttr.in"

	// DefaultAPIV1Str is derived once from DefaultAPIVersion. Overriding
	// API_VERSION does not change it.
	DefaultAPIV1Str = "/api/" + DefaultAPIVersion
)

// DefaultBackendCORSOrigins returns the default list of allowed origins.
func DefaultBackendCORSOrigins() []string {
	return []string{"*"}
}

// Settings is the application configuration. It is built once at startup and
// must be treated as read-only afterwards.
type Settings struct {
	ProjectName        string
	BackendCORSOrigins []string
	Mode               Mode
	APIVersion         string
	APIV1Str           string
	// WeatherURL is the weather service base URL, read from WHEATER_URL.
	WeatherURL string
}

// Defaults returns Settings populated with the static defaults.
func Defaults() *Settings {
	return &Settings{
		ProjectName:        DefaultProjectName,
		BackendCORSOrigins: DefaultBackendCORSOrigins(),
		Mode:               DefaultMode,
		APIVersion:         DefaultAPIVersion,
		APIV1Str:           DefaultAPIV1Str,
		WeatherURL:         DefaultWeatherURL,
	}
}

// APIPathConsistent reports whether APIV1Str matches the prefix that
// APIVersion would produce. A mismatch happens when API_VERSION is overridden
// without API_V1_STR.
func (s *Settings) APIPathConsistent() bool {
	return s.APIV1Str == "/api/"+s.APIVersion
}
