package settings

import (
	"errors"
	"strconv"
	"strings"
)

// Server setting keys.
const (
	KeyPort     = "PORT"
	KeyLogLevel = "LOG_LEVEL"
)

// Server setting defaults.
const (
	DefaultPort     = 8000
	DefaultLogLevel = "info"
)

// Server holds the settings used by the local HTTP entry point.
type Server struct {
	Port     int
	LogLevel string
}

// LoadServer builds Server settings from src.
func LoadServer(src Source) (*Server, error) {
	cfg := &Server{
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
	}
	var errs []error

	if v, ok := src.Lookup(KeyPort); ok {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, invalid(KeyPort, "must be an integer (got %q)", v))
		} else if portErr := ValidatePort(KeyPort, port); portErr != nil {
			errs = append(errs, portErr)
		} else {
			cfg.Port = port
		}
	}

	if v, ok := src.Lookup(KeyLogLevel); ok {
		level := strings.ToLower(strings.TrimSpace(v))
		if err := ValidateLogLevel(level); err != nil {
			errs = append(errs, err)
		} else {
			cfg.LogLevel = level
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}
