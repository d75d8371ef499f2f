package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
// CITDB_DATABASE__TYPE overrides database.type, CITDB_LOGGER__LOG_LEVEL
// overrides logger.log_level, and so on ("__" separates nesting levels).
const EnvPrefix = "CITDB_"

// Settings is the root configuration for consumers of the model layer.
type Settings struct {
	Database DatabaseSettings `koanf:"database"`
	Logger   LoggerSettings   `koanf:"logger"`
}

// Validate checks all nested settings
func (s *Settings) Validate() error {
	if err := s.Database.Validate(); err != nil {
		return err
	}
	if err := s.Logger.Validate(); err != nil {
		return err
	}
	return nil
}

// LoadSettings loads settings from an optional YAML file, applies environment
// variable overrides and validates the result. An empty path skips the file
// source entirely.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}
