package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names accepted by Parse.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// ErrUnsupportedFormat is returned for unknown profile formats.
var ErrUnsupportedFormat = errors.New("unsupported profile format")

// LoadFile loads and parses a profile, inferring the format from the extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	f, err := Parse(data, InferFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses profile data in the given format.
func Parse(data []byte, format string) (*File, error) {
	var f File

	switch format {
	case FormatYAML, "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse profile TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (supported: yaml, toml, json)", ErrUnsupportedFormat, format)
	}

	applyDefaults(&f)

	return &f, nil
}

// InferFormat returns the format matching a file extension, or "".
func InferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return ""
	}
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Mappings {
		if f.Mappings[i].Ignore == nil {
			f.Mappings[i].Ignore = StringOrArray{}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path as YAML.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}

	return nil
}
