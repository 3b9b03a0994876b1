// Package config provides Viper-based configuration loading for the catalog search tools.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	// Path is the catalog file. Empty means the user is asked at startup.
	Path string `mapstructure:"path"`
	// Format is "auto", "json" or "yaml". "auto" infers it from the extension.
	Format string `mapstructure:"format"`
}

// DisplayConfig holds interactive display settings.
type DisplayConfig struct {
	// Color enables ANSI colours in results.
	Color bool `mapstructure:"color"`
	// Prompt is printed before each query.
	Prompt string `mapstructure:"prompt"`
	// Banner prints the welcome text and help when a session starts.
	Banner bool `mapstructure:"banner"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateCatalog(c.Catalog); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDisplay(c.Display); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCatalog(c CatalogConfig) error {
	validFormats := map[string]bool{"auto": true, "json": true, "yaml": true, "yml": true}
	if !validFormats[c.Format] {
		return fmt.Errorf("catalog.format must be one of [auto, json, yaml, yml], got %q", c.Format)
	}
	return nil
}

func validateDisplay(d DisplayConfig) error {
	if d.Prompt == "" {
		return errors.New("display.prompt must not be empty")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus the environment.
//
// Precondition: path must be empty or name a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with CARDEX_ prefix
	v.SetEnvPrefix("CARDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.format", "auto")

	v.SetDefault("display.color", false)
	v.SetDefault("display.prompt", "query> ")
	v.SetDefault("display.banner", true)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
