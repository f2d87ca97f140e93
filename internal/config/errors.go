package config

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errInitPaths = &apperr.Error{
		Message: "unable to resolve config paths",
	}

	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "duration must be between 0 and %d seconds, got %d",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration %q: use seconds (90) or a duration string (1m30s)",
	}

	errInvalidUntil = &apperr.Error{
		Message: "invalid end time %q",
	}

	errUntilInPast = &apperr.Error{
		Message: "end time %s is not in the future",
	}

	errDurationConflict = &apperr.Error{
		Message: "--duration and --until cannot be used together",
	}

	errInvalidColor = &apperr.Error{
		Message: "display color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn or error, got %q",
	}

	errPlainNeedsDuration = &apperr.Error{
		Message: "plain mode needs a duration: pass --duration or --until",
	}
)
