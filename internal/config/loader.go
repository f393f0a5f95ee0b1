package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the YAML file read when no path is given.
const DefaultPath = "./config.yaml"

// Load reads and validates the configuration. The YAML file path comes
// from CONFIG_PATH; see Read for precedence.
func Load() (*Config, error) {
	cfg, err := Read(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Read loads configuration without validating it, so callers can apply
// overrides first. Priority: ENV > YAML > env-default tags.
//
// An empty path means DefaultPath, which may be absent: configuration then
// comes from ENV and defaults only. An explicit path must exist.
func Read(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
