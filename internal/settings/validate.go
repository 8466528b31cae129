package settings

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a setting that could not be parsed or validated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// modeTag lists the accepted MODE values in validator syntax.
var modeTag = "oneof=" + strings.Join([]string{
	string(ModeDevelopment),
	string(ModeProduction),
	string(ModeTesting),
}, " ")

// ValidateMode checks that value names a known Mode.
func ValidateMode(value string) error {
	if err := validate.Var(value, "required,"+modeTag); err != nil {
		return invalid(KeyMode, "must be one of: development, production, testing (got %q)", value)
	}
	return nil
}

// ValidateOrigin checks that origin is the wildcard or an absolute http(s) URL.
func ValidateOrigin(origin string) error {
	if origin == "*" {
		return nil
	}
	if err := validate.Var(origin, "required,http_url"); err != nil {
		return invalid(KeyBackendCORSOrigins, "invalid URL %q", origin)
	}
	return nil
}

// ValidatePort checks if a port number is valid.
func ValidatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return invalid(field, "must be between 1 and 65535")
	}
	return nil
}

// ValidateLogLevel checks if a log level is valid.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error", "fatal":
		return nil
	default:
		return invalid(KeyLogLevel, "must be one of: debug, info, warn, error, fatal")
	}
}
