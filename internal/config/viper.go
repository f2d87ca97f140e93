package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyTimerDuration    = "timer.duration"
	keyDisplayColor     = "display.color"
	keyDisplayDarkTheme = "display.dark_theme"
	keyDisplayProgress  = "display.progress"
	keyLogLevel         = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers defaults. Values already present on c (from the
// first-run prompt) take precedence over the defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTimerDuration, 0)
	v.SetDefault(keyDisplayColor, "#B0DB43")
	v.SetDefault(keyDisplayDarkTheme, true)
	v.SetDefault(keyDisplayProgress, true)
	v.SetDefault(keyLogLevel, "info")

	if c.Timer.Duration != 0 {
		v.Set(keyTimerDuration, c.Timer.Duration)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
