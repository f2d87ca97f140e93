// Package config loads countdown settings from the config file, command-line
// flags and the first-run prompt
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timer   TimerConfig   `mapstructure:"timer"`
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
		CLI     CLIConfig     `mapstructure:"-"`
	}

	// TimerConfig holds countdown settings.
	TimerConfig struct {
		// Duration in seconds committed when the program starts. Zero means
		// the user enters one interactively.
		Duration int `mapstructure:"duration"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Color     string `mapstructure:"color"`
		DarkTheme bool   `mapstructure:"dark_theme"`
		Progress  bool   `mapstructure:"progress"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds settings that only come from command-line flags.
	CLIConfig struct {
		Plain   bool
		NoColor bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.1.0"

const envName = "COUNTDOWN_ENV"

var (
	configDir      = "countdown"
	configFileName = "config.yml"
	logFileName    = "countdown.log"
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func ConfigFilePath() string {
	return configFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the config and log file locations. Setting
// COUNTDOWN_ENV keeps a separate set of files per environment.
func InitializePaths() error {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		logFileName = fmt.Sprintf("countdown_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(filepath.Join(configDir, configFileName))
	if err != nil {
		return errInitPaths.Wrap(err)
	}

	logFilePath, err = xdg.DataFile(filepath.Join(configDir, "log", logFileName))
	if err != nil {
		return errInitPaths.Wrap(err)
	}

	return nil
}

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
