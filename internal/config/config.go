// Package config loads taskdeck runtime configuration from a toml file
// with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultAPIURL points at a locally running backend.
	DefaultAPIURL = "http://127.0.0.1:8000"

	configFileName  = ".taskdeck.toml"
	configDirEnvKey = "TASKDECK_CONFIG_DIR"
	apiURLEnvKey    = "TASKDECK_API_URL"
	tokenEnvKey     = "TASKDECK_TOKEN"
)

// Config defines runtime configuration for taskdeck.
type Config struct {
	APIURL string `toml:"api_url"`
	Token  string `toml:"token"`
}

// Default returns default configuration values.
func Default() Config {
	return Config{APIURL: DefaultAPIURL}
}

// Load resolves configuration: defaults, then the config file if present,
// then environment overrides. A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	if err := loadFileIfExists(path, &cfg); err != nil {
		return cfg, err
	}

	if v := strings.TrimSpace(os.Getenv(apiURLEnvKey)); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(tokenEnvKey)); v != "" {
		cfg.Token = v
	}
	return cfg, nil
}

// Path returns the location the config file is read from.
func Path() (string, error) {
	return configPath()
}

func configPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(configDirEnvKey)); dir != "" {
		return filepath.Join(dir, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

func loadFileIfExists(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}
