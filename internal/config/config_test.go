package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Duration: 0,
		},
		Display: DisplayConfig{
			Color:     "#B0DB43",
			DarkTheme: true,
			Progress:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Contains(t, string(b), "dark_theme: true")
	assert.Contains(t, string(b), "level: info")
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(`timer:
  duration: 90
display:
  color: "#12EAEA"
  dark_theme: false
  progress: false
log:
  level: debug
`), 0o600)
	require.NoError(t, err)

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Timer: TimerConfig{
			Duration: 90,
		},
		Display: DisplayConfig{
			Color: "#12EAEA",
		},
		Log: LogConfig{
			Level: "debug",
		},
	}, cfg)
}

func TestViperReadPartialConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("timer:\n  duration: 30\n"), 0o600)
	require.NoError(t, err)

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	want := defaultConfig()
	want.Timer.Duration = 30

	assert.Equal(t, want, cfg)
}

func TestViperInvalidConfig(t *testing.T) {
	testCases := []struct {
		want error
		name string
		body string
	}{
		{errInvalidColor, "bad color", "display:\n  color: green\n"},
		{errInvalidLogLevel, "bad level", "log:\n  level: loud\n"},
		{errInvalidDuration, "negative duration", "timer:\n  duration: -5\n"},
		{errReadConfig, "malformed yaml", "timer: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			err := os.WriteFile(configPath, []byte(tc.body), 0o600)
			require.NoError(t, err)

			_, err = New(WithViperConfig(configPath))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPromptConfig(t *testing.T) {
	t.Cleanup(func() {
		runPrompt = promptUser
	})

	var prompted int

	runPrompt = func() (PromptOptions, error) {
		prompted++
		return PromptOptions{Duration: 300}, nil
	}

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(
		WithPromptConfig(configPath),
		WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, prompted)
	assert.Equal(t, 300, cfg.Timer.Duration)

	cfg, err = New(
		WithPromptConfig(configPath),
		WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, prompted, "prompt must only run without a config file")
	assert.Equal(t, 300, cfg.Timer.Duration)
}

func TestPromptConfigError(t *testing.T) {
	t.Cleanup(func() {
		runPrompt = promptUser
	})

	errAborted := errors.New("user aborted")

	runPrompt = func() (PromptOptions, error) {
		return PromptOptions{}, errAborted
	}

	_, err := New(WithPromptConfig(filepath.Join(t.TempDir(), "config.yml")))
	assert.ErrorIs(t, err, errAborted)
	assert.ErrorIs(t, err, errConfigOption)
}

func TestApplyCLIOptions(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		opts         CLIOptions
		wantDuration int
		wantLevel    string
		wantErr      error
	}{
		{
			name:         "seconds",
			opts:         CLIOptions{Duration: "90"},
			wantDuration: 90,
			wantLevel:    "info",
		},
		{
			name:         "duration string",
			opts:         CLIOptions{Duration: "2m5s", Debug: true},
			wantDuration: 125,
			wantLevel:    "debug",
		},
		{
			name:         "until",
			opts:         CLIOptions{Until: "in 5 minutes"},
			wantDuration: 300,
			wantLevel:    "info",
		},
		{
			name:    "bad duration",
			opts:    CLIOptions{Duration: "soon"},
			wantErr: errInvalidCLIDuration,
		},
		{
			name:    "both",
			opts:    CLIOptions{Duration: "5", Until: "in 5 minutes"},
			wantErr: errDurationConflict,
		},
		{
			name:    "until in the past",
			opts:    CLIOptions{Until: "5 minutes ago"},
			wantErr: errUntilInPast,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()

			err := applyCLIOptions(cfg, tc.opts, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantDuration, cfg.Timer.Duration)
			assert.Equal(t, tc.wantLevel, cfg.Log.Level)
		})
	}
}

func TestValidatePlainNeedsDuration(t *testing.T) {
	cfg := defaultConfig()
	cfg.CLI.Plain = true

	assert.ErrorIs(t, cfg.Validate(), errPlainNeedsDuration)

	cfg.Timer.Duration = 10

	assert.NoError(t, cfg.Validate())
}
