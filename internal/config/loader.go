package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigPath is read when CONFIG_PATH is unset and the file exists.
const defaultConfigPath = "./config.yaml"

// Load reads configuration with priority ENV > YAML > env-default tags,
// normalizes it and validates it.
//
// The YAML path comes from CONFIG_PATH. An explicit path must exist; the
// default path is optional, and without it only ENV and defaults apply.
func Load() (*Config, error) {
	var cfg Config

	if err := read(&cfg); err != nil {
		return nil, err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(cfg *Config) error {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}

// normalize strips the separators that would otherwise be doubled when keys
// and URLs are joined.
func (c *Config) normalize() {
	c.Storage.UploadPrefix = strings.Trim(strings.TrimSpace(c.Storage.UploadPrefix), "/")
	c.Storage.Endpoint = strings.TrimRight(strings.TrimSpace(c.Storage.Endpoint), "/")
	c.Inference.BaseURL = strings.TrimRight(strings.TrimSpace(c.Inference.BaseURL), "/")
	c.Model.Version = strings.TrimSpace(c.Model.Version)
}
