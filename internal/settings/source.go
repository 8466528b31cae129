package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source provides raw string values by key.
type Source interface {
	// Lookup returns the value for key and whether the key is present.
	Lookup(key string) (string, bool)
}

// MapSource is a Source backed by a literal map.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvSource reads process environment variables. A variable that is set to
// the empty string is present.
type EnvSource struct{}

// Lookup implements Source.
func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// layered consults its sources in order and returns the first hit.
type layered []Source

// Layered combines sources; earlier sources take precedence.
func Layered(sources ...Source) Source {
	return layered(sources)
}

// Lookup implements Source.
func (l layered) Lookup(key string) (string, bool) {
	for _, src := range l {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// DotenvSource parses a .env file without touching the process environment.
// A missing file yields an empty source.
func DotenvSource(path string) (MapSource, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return MapSource{}, nil
		}
		return nil, fmt.Errorf("load env file %s: %w", path, err)
	}
	return MapSource(values), nil
}

// YAMLSource reads a flat YAML mapping of setting keys. Scalars are kept in
// their textual form and sequences are re-encoded as JSON arrays, so list
// settings parse the same way they do from the environment. A missing file
// yields an empty source.
func YAMLSource(path string) (MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return MapSource{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	values := make(MapSource, len(doc))
	for key, node := range doc {
		value, err := nodeString(&node)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: key %s: %w", path, key, err)
		}
		values[key] = value
	}
	return values, nil
}

func nodeString(node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return "", fmt.Errorf("decode sequence: %w", err)
		}
		encoded, err := json.Marshal(items)
		if err != nil {
			return "", fmt.Errorf("encode sequence: %w", err)
		}
		return string(encoded), nil
	default:
		return "", fmt.Errorf("unsupported YAML value at line %d", node.Line)
	}
}
