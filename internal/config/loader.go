package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom behaves like Load with an explicit file path. An empty path falls
// back to "./config.yaml"; if that file does not exist, configuration is
// loaded from ENV + defaults only. A non-empty path must exist.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Usage returns a description of every supported environment variable.
func Usage() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}
