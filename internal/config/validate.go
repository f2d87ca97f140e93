package config

import (
	"regexp"
	"slices"
	"strings"
)

const maxDuration = 24 * 60 * 60

var (
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Timer.Duration < 0 || c.Timer.Duration > maxDuration {
		return errInvalidDuration.Fmt(maxDuration, c.Timer.Duration)
	}

	if c.Display.Color != "" && !hexColorRegex.MatchString(c.Display.Color) {
		return errInvalidColor.Fmt(c.Display.Color)
	}

	if c.Log.Level != "" &&
		!slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.CLI.Plain && c.Timer.Duration == 0 {
		return errPlainNeedsDuration
	}

	return nil
}
