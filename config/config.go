// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"

	availabilitydistribution "github.com/ChainSafe/parachain-availability/dot/parachain/availability-distribution"
	"github.com/ChainSafe/parachain-availability/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the toml configuration of the availability distribution node component.
type Config struct {
	Log                      LogConfig                       `toml:"log,omitempty"`
	AvailabilityDistribution availabilitydistribution.Config `toml:"availability-distribution,omitempty"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	Level      string `toml:"level,omitempty" validate:"omitempty,loglevel"`
	Format     string `toml:"format,omitempty" validate:"omitempty,oneof=console text"`
	CallerFile bool   `toml:"caller-file,omitempty"`
	CallerLine bool   `toml:"caller-line,omitempty"`
	CallerFunc bool   `toml:"caller-func,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  log.Info.String(),
			Format: "console",
		},
		AvailabilityDistribution: availabilitydistribution.DefaultConfig(),
	}
}

// Load reads the toml file at the given path on top of the default configuration
// and validates the result.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return cfg, fmt.Errorf("opening config file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing config file: %w", closeErr)
		}
	}()

	if err = toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	validate := validator.New()
	// Add custom validator for log levels
	err := validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("registering log level validation: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Apply patches the global logger, and with it every package logger, with the
// logging configuration. Empty values and unset caller flags leave the current
// settings untouched.
func (c LogConfig) Apply() error {
	var options []log.Option
	if c.CallerFile {
		options = append(options, log.SetCallerFile(true))
	}
	if c.CallerLine {
		options = append(options, log.SetCallerLine(true))
	}
	if c.CallerFunc {
		options = append(options, log.SetCallerFunc(true))
	}

	if c.Level != "" {
		level, err := log.ParseLevel(c.Level)
		if err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}
		options = append(options, log.SetLevel(level))
	}

	switch c.Format {
	case "":
	case "console":
		options = append(options, log.SetFormat(log.FormatConsole))
	case "text":
		options = append(options, log.SetFormat(log.FormatText))
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Format)
	}

	log.Patch(options...)
	return nil
}
