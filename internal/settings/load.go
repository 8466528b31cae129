package settings

import (
	"errors"
	"strings"

	json "github.com/goccy/go-json"
)

// Load builds Settings from src, falling back to the static defaults for
// absent keys. All invalid keys are reported together; on error no Settings
// value is returned.
func Load(src Source) (*Settings, error) {
	cfg := Defaults()
	var errs []error

	if v, ok := src.Lookup(KeyProjectName); ok {
		cfg.ProjectName = v
	}

	if v, ok := src.Lookup(KeyBackendCORSOrigins); ok {
		origins, err := parseOrigins(v)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.BackendCORSOrigins = origins
		}
	}

	if v, ok := src.Lookup(KeyMode); ok {
		if err := ValidateMode(v); err != nil {
			errs = append(errs, err)
		} else {
			cfg.Mode = Mode(v)
		}
	}

	if v, ok := src.Lookup(KeyAPIVersion); ok {
		cfg.APIVersion = v
	}

	// API_V1_STR keeps its declared default even when API_VERSION changes.
	if v, ok := src.Lookup(KeyAPIV1Str); ok {
		cfg.APIV1Str = v
	}

	if v, ok := src.Lookup(KeyWeatherURL); ok {
		cfg.WeatherURL = v
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// MustLoad is like Load but panics if an error occurs.
func MustLoad(src Source) *Settings {
	cfg, err := Load(src)
	if err != nil {
		panic("failed to load settings: " + err.Error())
	}
	return cfg
}

// parseOrigins accepts either a JSON array of strings or a comma-separated
// list. Every entry must be "*" or an http(s) URL. An empty JSON array
// disables CORS; an empty plain value is an error.
func parseOrigins(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)

	var origins []string
	isJSON := strings.HasPrefix(raw, "[")
	if isJSON {
		if err := json.Unmarshal([]byte(raw), &origins); err != nil {
			return nil, invalid(KeyBackendCORSOrigins, "must be a JSON array of strings: %v", err)
		}
	} else if raw != "" {
		origins = strings.Split(raw, ",")
	}

	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if err := ValidateOrigin(origin); err != nil {
			return nil, err
		}
		cleaned = append(cleaned, origin)
	}

	if len(cleaned) == 0 && !isJSON {
		return nil, invalid(KeyBackendCORSOrigins, "must list at least one origin")
	}
	return cleaned, nil
}
