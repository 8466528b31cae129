package settings

import (
	"fmt"
	"os"

	"github.com/jonesrussell/north-cloud/weather-api/internal/bootstrap"
)

// File locations.
const (
	// EnvFileVar names a .env file to load instead of the default.
	EnvFileVar = "ENV_FILE"
	// ConfigPathVar names a YAML settings file.
	ConfigPathVar = "CONFIG_PATH"

	DefaultEnvFile    = ".env"
	DefaultConfigFile = "config.yml"
)

// Environment resolves the layered process source: environment variables,
// then the .env file, then the optional YAML settings file. Relative file
// names are resolved through paths; a nil paths uses bootstrap.Default.
func Environment(paths *bootstrap.SearchPath) (Source, error) {
	if paths == nil {
		paths = bootstrap.Default
	}

	dotenv := MapSource{}
	if path, ok := paths.Find(fileName(EnvFileVar, DefaultEnvFile)); ok {
		src, err := DotenvSource(path)
		if err != nil {
			return nil, err
		}
		dotenv = src
	}

	yamlSrc := MapSource{}
	if path, ok := paths.Find(fileName(ConfigPathVar, DefaultConfigFile)); ok {
		src, err := YAMLSource(path)
		if err != nil {
			return nil, err
		}
		yamlSrc = src
	}

	return Layered(EnvSource{}, dotenv, yamlSrc), nil
}

// LoadEnvironment loads Settings and Server settings from the process
// environment and its files.
func LoadEnvironment(paths *bootstrap.SearchPath) (*Settings, *Server, error) {
	src, err := Environment(paths)
	if err != nil {
		return nil, nil, fmt.Errorf("load environment files: %w", err)
	}

	cfg, err := Load(src)
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}

	srv, err := LoadServer(src)
	if err != nil {
		return nil, nil, fmt.Errorf("load server settings: %w", err)
	}

	return cfg, srv, nil
}

func fileName(envVar, fallback string) string {
	if name := os.Getenv(envVar); name != "" {
		return name
	}
	return fallback
}
