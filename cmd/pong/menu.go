package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-pong/internal/config"
	"github.com/vovakirdan/retro-pong/internal/platform/tui"
	"github.com/vovakirdan/retro-pong/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a variant, Left/Right to pick a difficulty,
and Enter to play. Leaving a match with Esc returns to the menu.

Controls:
  Up/Down/j/k     - Navigate variants
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  pong menu
  pong menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Fail early on a bad flag or config file
	if _, err := loadConfig(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig(terminalSize())
	preset := config.DifficultyPreset(flagDifficulty)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if _, err := loadConfig(string(preset)); err != nil {
			return err
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for each match unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, cfg, tui.Options{Logger: logger})
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
