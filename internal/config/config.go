package config

// Config is the xrplflags configuration.
type Config struct {
	Log    LogConfig    `toml:"log" mapstructure:"log"`
	Output OutputConfig `toml:"output" mapstructure:"output"`

	// Entity used by commands when none is given on the command line
	DefaultEntity string `toml:"default_entity" mapstructure:"default_entity"`

	configPath string `toml:"-" mapstructure:"-"`
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level string `toml:"level" mapstructure:"level"`
	JSON  bool   `toml:"json" mapstructure:"json"`
	Color bool   `toml:"color" mapstructure:"color"`
}

// OutputConfig controls how command results are printed.
type OutputConfig struct {
	Format string `toml:"format" mapstructure:"format"` // text, json or yaml
	Color  bool   `toml:"color" mapstructure:"color"`
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// GetConfigPath returns the path of the loaded configuration file, or an
// empty string when only defaults and environment were used.
func (c *Config) GetConfigPath() string {
	return c.configPath
}
