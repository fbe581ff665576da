package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadPong(customPath string) (PongConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parsePong(data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePong(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if cfg, err := parsePong(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parsePong(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePong decodes YAML over the hard-coded defaults.
func parsePong(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c PongConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// Validate reports the first field that cannot produce a playable match.
func (c PongConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must have a positive size: %w", ErrInvalid)
	case c.Field.BoundsInset < 0 || c.Field.BoundsInset*2 >= c.Field.Width || c.Field.BoundsInset*2 >= c.Field.Height:
		return fmt.Errorf("config: bounds_inset %v does not fit the field: %w", c.Field.BoundsInset, ErrInvalid)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("config: paddles must have a positive size: %w", ErrInvalid)
	case c.Paddles.Height >= c.Field.Height-2*c.Field.BoundsInset:
		return fmt.Errorf("config: paddle height %v does not fit the field: %w", c.Paddles.Height, ErrInvalid)
	case c.Paddles.Offset <= c.Field.BoundsInset || c.Paddles.Offset*2 >= c.Field.Width:
		return fmt.Errorf("config: paddle offset %v must lie inside the left half: %w", c.Paddles.Offset, ErrInvalid)
	case c.Ball.Size <= 0:
		return fmt.Errorf("config: ball size must be positive: %w", ErrInvalid)
	case c.Ball.ServeSpeed <= 0:
		return fmt.Errorf("config: serve_speed must be positive: %w", ErrInvalid)
	case c.Ball.ServeSpread < 0 || c.Deflection.CenterSpread < 0:
		return fmt.Errorf("config: spreads must not be negative: %w", ErrInvalid)
	case c.AI.Speed < 0 || c.AI.DeadZone < 0:
		return fmt.Errorf("config: ai speed and dead_zone must not be negative: %w", ErrInvalid)
	case c.Deflection.MinSpeed < 0 || c.Deflection.MaxRatio <= 0:
		return fmt.Errorf("config: deflection bounds must be positive: %w", ErrInvalid)
	case c.Gameplay.WinScore < 1:
		return fmt.Errorf("config: win_score must be at least 1: %w", ErrInvalid)
	case c.Gameplay.ServeDelayMS < 0:
		return fmt.Errorf("config: serve_delay_ms must not be negative: %w", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio volume must be within [0, 1]: %w", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
