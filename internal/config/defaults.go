package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It mirrors defaults/pong.yaml and is the fallback if the embed fails to parse.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: PongField{
			Width:       800,
			Height:      600,
			BoundsInset: 10,
		},
		Paddles: PongPaddles{
			Width:         15,
			Height:        100,
			Offset:        100,
			PlayerSpeed:   400,
			PointerSeekMS: 75,
		},
		Ball: PongBall{
			Size:        15,
			ServeSpeed:  200,
			ServeSpread: 100,
		},
		AI: PongAI{
			Speed:    150,
			DeadZone: 0.1,
		},
		Deflection: PongDeflection{
			Factor:       10,
			MinSpeed:     50,
			MaxRatio:     1.5,
			CenterSpread: 50,
		},
		Gameplay: PongGameplay{
			WinScore:     11,
			ServeDelayMS: 1000,
		},
		Style: PongStyle{
			RetroGrid:   false,
			VersionText: "v0.1.2",
		},
		Audio: PongAudio{
			Enabled:         true,
			Volume:          0.5,
			ResumeTimeoutMS: 3000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPongYAML
}
