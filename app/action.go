package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/logger"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envCountdownNoColor = "COUNTDOWN_NO_COLOR"
)

// logCloser closes the log file once the app exits.
var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig merges the config file and command-line flags. The first-run
// prompt is skipped when a duration is given on the command line.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := config.ConfigFilePath()

	var opts []config.Option

	if !ctx.Bool("plain") && !ctx.IsSet("duration") && !ctx.IsSet("until") {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// defaultAction runs the countdown, either as an interactive view or in
// plain mode.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logCloser = logger.Init(config.LogFilePath(), cfg.Log.Level)

	slog.InfoContext(
		ctx.Context,
		"starting countdown",
		slog.Int("duration", cfg.Timer.Duration),
		slog.Bool("plain", cfg.CLI.Plain),
	)

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.CLI.Plain {
		return runPlain(ctx.Context, cfg, config.Stdout, clockwork.NewRealClock())
	}

	if cfg.CLI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m := timer.New(cfg)

	defer func() {
		_ = m.Close()
	}()

	_, err = tea.NewProgram(m).Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/countdown/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if COUNTDOWN_NO_COLOR is set
	if _, exists := os.LookupEnv(envCountdownNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return config.InitializePaths()
}

func afterAction(ctx *cli.Context) error {
	if logCloser == nil {
		return nil
	}

	slog.InfoContext(ctx.Context, "exiting countdown")

	return logCloser.Close()
}
