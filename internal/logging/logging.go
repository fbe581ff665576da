// Package logging builds the charmbracelet/log loggers used by the front ends
// and writes game events to them.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-pong/internal/core"
)

// New creates a logger writing to w. level is a charmbracelet/log level name
// ("debug", "info", "warn", "error").
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// DefaultFilePath returns ~/.arcade/pong.log, or pong.log in the working
// directory when the home directory is unknown.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pong.log"
	}
	return filepath.Join(home, ".arcade", "pong.log")
}

// OpenFile opens path for appending, creating its directory if needed.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	return f, nil
}

// Events logs the events of one tick. Points and match transitions are info,
// everything else is debug.
func Events(l *log.Logger, res core.StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventPointScored:
			l.Info("point", "scorer", ev.Side, "player", res.State.Score, "ai", res.State.Opponent)
		case core.EventGameOver:
			l.Info("game over", "winner", ev.Side, "player", res.State.Score, "ai", res.State.Opponent)
		case core.EventRestart:
			l.Info("match restarted")
		default:
			l.Debug(ev.Kind.String(), "side", ev.Side)
		}
	}
}
