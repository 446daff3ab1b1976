// Package config resolves editor settings from command-line flags and
// FEMTO_* environment variables. There is no configuration file.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FEMTO_DEBUG
const EnvPrefix = "FEMTO"

// Config represents the resolved editor settings
type Config struct {
	// Debug enables the debug log file
	Debug bool `mapstructure:"debug"`
	// LogFile is where debug logs are written
	LogFile string `mapstructure:"log_file"`
	// AltScreen runs the editor in the alternate screen buffer
	AltScreen bool `mapstructure:"alt_screen"`
	// IdleLabel is shown in the status bar when there is nothing else to say
	IdleLabel string `mapstructure:"idle_label"`
	// Filler marks screen rows below the end of the document. One character.
	Filler string `mapstructure:"filler"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Debug:     false,
		LogFile:   "femto.log",
		AltScreen: true,
		IdleLabel: "femto",
		Filler:    "~",
	}
}

// RegisterFlags adds the config flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := DefaultConfig()
	fs.Bool("debug", defaults.Debug, "write debug logs to --log-file")
	fs.String("log-file", defaults.LogFile, "debug log destination")
	fs.Bool("alt-screen", defaults.AltScreen, "use the terminal's alternate screen")
}

// Bind wires defaults, FEMTO_* environment variables and the flags in fs into v.
// Flags take precedence over the environment.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	defaults := DefaultConfig()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("alt_screen", defaults.AltScreen)
	v.SetDefault("idle_label", defaults.IdleLabel)
	v.SetDefault("filler", defaults.Filler)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs == nil {
		return nil
	}
	for key, flag := range map[string]string{
		"debug":      "debug",
		"log_file":   "log-file",
		"alt_screen": "alt-screen",
	} {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load unmarshals the settings held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return MergeWithDefaults(&cfg), nil
}

// MergeWithDefaults fills in missing or unusable values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.LogFile == "" {
		cfg.LogFile = defaults.LogFile
	}
	if cfg.IdleLabel == "" {
		cfg.IdleLabel = defaults.IdleLabel
	}
	// the filler must occupy exactly one cell
	if utf8.RuneCountInString(cfg.Filler) != 1 {
		cfg.Filler = defaults.Filler
	}

	return cfg
}
