package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-pong/internal/config"
	"github.com/vovakirdan/retro-pong/internal/core"
	"github.com/vovakirdan/retro-pong/internal/games/pong"
	"github.com/vovakirdan/retro-pong/internal/logging"
)

// loadConfig loads the configuration, applies the difficulty preset and
// makes the result the configuration of new games.
func loadConfig(preset string) (config.PongConfig, error) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		return config.PongConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}

	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}
	config.ApplyPongPreset(&cfg, p)

	if err := pong.SetConfig(cfg); err != nil {
		return config.PongConfig{}, err
	}
	return cfg, nil
}

// openLogger creates the logger for a front end. The terminal front end owns
// stdout and stderr, so it logs to a file unless --log-file says otherwise.
// The returned close function is never nil.
func openLogger(terminal bool) (*log.Logger, func(), error) {
	path := flagLogFile
	if path == "" && terminal {
		path = logging.DefaultFilePath()
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return nil, closeFn, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger, err := logging.New(w, "pong", flagLogLevel)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return logger, closeFn, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// variantArg returns the variant named in args, or the classic game.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return pong.IDClassic
}
