package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/countdown/internal/util"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a config file parses but holds
// unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds user preferences read at start-up.
type Config struct {
	Theme           string `yaml:"theme"`
	DefaultDuration int    `yaml:"default_duration"` // Seconds pre-staged in the input, 0 for none
	Bell            bool   `yaml:"bell"`             // Ring the terminal bell when a countdown finishes
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeDefault,
		Bell:  true,
	}
}

// DefaultConfigPath returns $COUNTDOWN_CONFIG if set, otherwise
// config.yaml under the XDG config directory.
func DefaultConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigEnv)); p != "" {
		return p
	}
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the timer cannot use and normalises the rest.
func (c *Config) Validate() error {
	if c.DefaultDuration < 0 {
		return fmt.Errorf("%w: default_duration must not be negative", ErrInvalidConfig)
	}
	if c.DefaultDuration > MaxDuration {
		return fmt.Errorf("%w: default_duration must not exceed %d", ErrInvalidConfig, MaxDuration)
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = ThemeDefault
	}
	return nil
}
