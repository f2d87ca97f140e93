package app

import "github.com/urfave/cli/v2"

var (
	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Countdown length in seconds (90) or as a duration string (1m30s). Starts counting immediately",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "Count down to a point in time (e.g. 'in 10 minutes', '5pm')",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Print one line per state change instead of the interactive view. Requires --duration or --until",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug logs to the log file",
	}
)
