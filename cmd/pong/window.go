package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-pong/internal/games/pong"
	"github.com/vovakirdan/retro-pong/internal/platform/desktop"
	"github.com/vovakirdan/retro-pong/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Start a match in a desktop window. The variant defaults to "pong".

Controls:
  W/S, Up/Down    - Move paddle
  Drag/touch      - Move paddle (start left of your paddle)
  P               - Pause
  R/Click         - Restart (after game over)
  M/Sound button  - Start music, then mute and unmute it
  Esc/Q           - Quit

Music is the built-in loop unless audio.music_path names an .mp3 or .wav
file in the config.

Examples:
  pong window
  pong window pong_retro --difficulty normal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := variantArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'pong list' to see available variants", gameID)
	}

	if _, err := loadConfig(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*pong.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", gameID)
	}

	w, h := game.FieldSize()
	app, err := desktop.New(game, runtimeConfig(int(w), int(h)), logger)
	if err != nil {
		return err
	}
	return desktop.Run(app, game.Title())
}
