package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm/putils"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Duration int
}

// runPrompt is replaced in tests.
var runPrompt = promptUser

// WithPromptConfig returns an Option that asks for a default duration when
// no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := runPrompt()
		if err != nil {
			return err
		}

		c.Timer.Duration = opts.Duration

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	_ = putils.BulletListFromString(`Select a default countdown length, or press ENTER to enter one each time.
Edit the config file with 'countdown edit-config' to change it later.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default countdown length").
				Options(
					huh.NewOption("None", 0).Selected(true),
					huh.NewOption("1 minute", 60),
					huh.NewOption("5 minutes", 300),
					huh.NewOption("10 minutes", 600),
					huh.NewOption("25 minutes", 1500),
				).
				Value(&opts.Duration),
		),
	)

	return opts, form.Run()
}
