package config

import "github.com/spf13/viper"

// setDefaults registers every key so environment overrides apply to all of them
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
	v.SetDefault("log.color", false)

	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.color", true)

	v.SetDefault("default_entity", "")
}

// Default returns the configuration used when no file or environment is set.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Format: FormatText, Color: true},
	}
}
