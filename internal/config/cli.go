package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Duration string
	Until    string
	Plain    bool
	NoColor  bool
	Debug    bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration: ctx.String("duration"),
			Until:    ctx.String("until"),
			Plain:    ctx.Bool("plain"),
			NoColor:  ctx.Bool("no-color"),
			Debug:    ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.Duration != "" && opts.Until != "" {
		return errDurationConflict
	}

	if opts.Duration != "" {
		secs, err := timeutil.ParseSeconds(opts.Duration)
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.Duration).Wrap(err)
		}

		c.Timer.Duration = secs
	}

	if opts.Until != "" {
		end, err := timeutil.FromStr(opts.Until, now)
		if err != nil {
			return errInvalidUntil.Fmt(opts.Until).Wrap(err)
		}

		secs := timeutil.SecondsUntil(now, end)
		if secs <= 0 {
			return errUntilInPast.Fmt(end.Format(time.DateTime))
		}

		c.Timer.Duration = secs
	}

	if opts.Debug {
		c.Log.Level = "debug"
	}

	c.CLI.Plain = opts.Plain
	c.CLI.NoColor = opts.NoColor

	return nil
}
