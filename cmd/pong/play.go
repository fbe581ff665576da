package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-pong/internal/platform/tui"
	"github.com/vovakirdan/retro-pong/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal. The variant defaults to "pong".

Controls:
  W/S, Up/Down  - Move paddle
  Mouse drag    - Move paddle (start the drag left of your paddle)
  P             - Pause
  R/Click       - Restart (after game over)
  M             - Sound (terminals have no audio output)
  Esc/B         - Leave the match
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - AI starts at its base speed and speeds up as points are played
  normal - AI starts 30% of the way up the ramp
  hard   - AI starts 70% of the way up the ramp
  fixed  - No ramp, AI moves at the configured speed

Examples:
  pong play
  pong play pong_retro
  pong play --difficulty hard
  pong play --config ./my-pong.yaml --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := variantArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'pong list' to see available variants", gameID)
	}

	if _, err := loadConfig(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	_, err = tui.Run(game, runtimeConfig(terminalSize()), tui.Options{Logger: logger})
	return err
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
