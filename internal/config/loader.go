package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfigPath names the YAML file to load. When unset, the loader
// falls back to config.yaml in the working directory and tolerates its
// absence; a path set explicitly must exist.
const envConfigPath = "PAIRLOG_CONFIG"

const defaultConfigPath = "config.yaml"

// Load builds the configuration from the YAML file plus environment
// variables, env winning over file and file over the struct-tag
// defaults. The result is validated before being returned.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv(envConfigPath)
	if !explicit {
		path = defaultConfigPath
	}

	err := cleanenv.ReadConfig(path, &cfg)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Env-only deployment, no file on disk.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
