// Package config loads the optional savings.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"

	"savings/internal/calculator"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "savings.yaml"

// DefaultLogFile is used when the config has no log_file key.
const DefaultLogFile = "savings.log"

// Config holds all application configuration.
type Config struct {
	Variant calculator.Variant `yaml:"variant"`
	Sound   struct {
		// Enabled is a pointer so an absent key keeps the default of true.
		Enabled *bool  `yaml:"enabled"`
		Path    string `yaml:"path"`
		Muted   bool   `yaml:"muted"`
	} `yaml:"sound"`
	// LogFile is a pointer so an explicit "" turns logging off while an
	// absent key keeps savings.log.
	LogFile      *string `yaml:"log_file"`
	ShowActivity bool    `yaml:"show_activity"`
	Trace        struct {
		OTLPEndpoint string `yaml:"otlp_endpoint"`
		ServiceName  string `yaml:"service_name"`
	} `yaml:"trace"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads config from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Variant == 0 {
		c.Variant = calculator.VariantClassic
	}
	if c.Sound.Enabled == nil {
		enabled := true
		c.Sound.Enabled = &enabled
	}
	if c.LogFile == nil {
		path := DefaultLogFile
		c.LogFile = &path
	}
	if c.Trace.ServiceName == "" {
		c.Trace.ServiceName = "savings"
	}
}

// SoundEnabled reports whether a real sound player should be created.
func (c *Config) SoundEnabled() bool {
	return c.Sound.Enabled == nil || *c.Sound.Enabled
}

// SetSoundEnabled overrides the sound switch.
func (c *Config) SetSoundEnabled(v bool) {
	c.Sound.Enabled = &v
}

// LogPath returns the log file path. Empty means logging is off.
func (c *Config) LogPath() string {
	if c.LogFile == nil {
		return DefaultLogFile
	}
	return *c.LogFile
}

// SetLogFile overrides the log file path; "" turns logging off.
func (c *Config) SetLogFile(path string) {
	c.LogFile = &path
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if !c.Variant.Valid() {
		return fmt.Errorf("variant must be 1 or 2, got %d", int(c.Variant))
	}
	if c.Sound.Muted && c.Variant != calculator.VariantTracked {
		return fmt.Errorf("sound.muted requires variant 2 (variant %d has no mute control)", int(c.Variant))
	}
	return nil
}
