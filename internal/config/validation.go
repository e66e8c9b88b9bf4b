package config

import (
	"fmt"
	"strings"

	"github.com/LeJamon/xrplmodel/internal/flags"
)

var validLogLevels = []string{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"}

var validFormats = []string{FormatText, FormatJSON, FormatYAML}

// ValidateConfig checks every section of the configuration
func ValidateConfig(config *Config) error {
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	if err := config.Output.Validate(); err != nil {
		return fmt.Errorf("output config validation failed: %w", err)
	}

	if config.DefaultEntity != "" {
		if _, ok := flags.Lookup(config.DefaultEntity); !ok {
			return fmt.Errorf("default_entity %q is not a known entity", config.DefaultEntity)
		}
	}

	return nil
}

// Validate checks the log level name.
func (l *LogConfig) Validate() error {
	if !isOneOf(strings.ToLower(l.Level), validLogLevels) {
		return fmt.Errorf("invalid level %q (valid: %s)", l.Level, strings.Join(validLogLevels, ", "))
	}
	return nil
}

// Validate checks the output format.
func (o *OutputConfig) Validate() error {
	if !isOneOf(o.Format, validFormats) {
		return fmt.Errorf("invalid format %q (valid: %s)", o.Format, strings.Join(validFormats, ", "))
	}
	return nil
}

func isOneOf(value string, options []string) bool {
	for _, option := range options {
		if value == option {
			return true
		}
	}
	return false
}
