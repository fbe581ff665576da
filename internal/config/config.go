// Package config provides YAML-based game configuration loading and
// difficulty management for pong.
package config

// PongConfig contains all tunable parameters of a match. Distances are world
// units (the field is 800x600 by default), speeds are units per second and
// durations are milliseconds.
type PongConfig struct {
	Field      PongField        `yaml:"field"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Ball       PongBall         `yaml:"ball"`
	AI         PongAI           `yaml:"ai"`
	Deflection PongDeflection   `yaml:"deflection"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	Style      PongStyle        `yaml:"style"`
	Audio      PongAudio        `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongField defines the play field.
type PongField struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BoundsInset float64 `yaml:"bounds_inset"`
}

// PongPaddles defines paddle geometry and player control.
type PongPaddles struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Offset        float64 `yaml:"offset"` // paddle center distance from the side edge
	PlayerSpeed   float64 `yaml:"player_speed"`
	PointerSeekMS int     `yaml:"pointer_seek_ms"`
}

// PongBall defines ball size and serve velocities.
type PongBall struct {
	Size        float64 `yaml:"size"`
	ServeSpeed  float64 `yaml:"serve_speed"`
	ServeSpread int     `yaml:"serve_spread"` // serve vy is drawn from [-spread, spread]
}

// PongAI defines the CPU paddle tracking policy.
type PongAI struct {
	Speed    float64 `yaml:"speed"`
	DeadZone float64 `yaml:"dead_zone"` // fraction of paddle height
}

// PongDeflection defines the paddle deflection rule.
type PongDeflection struct {
	Factor       float64 `yaml:"factor"`        // vy per unit of offset from paddle center
	MinSpeed     float64 `yaml:"min_speed"`     // minimum |vy| after an off-center hit
	MaxRatio     float64 `yaml:"max_ratio"`     // max |vy| as a multiple of |vx|
	CenterSpread int     `yaml:"center_spread"` // center hits draw vy from [-spread, spread]
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore     int `yaml:"win_score"`
	ServeDelayMS int `yaml:"serve_delay_ms"`
}

// PongStyle defines cosmetic options.
type PongStyle struct {
	RetroGrid   bool   `yaml:"retro_grid"`
	VersionText string `yaml:"version_text"`
}

// PongAudio defines music playback.
type PongAudio struct {
	Enabled         bool    `yaml:"enabled"`
	MusicPath       string  `yaml:"music_path"` // .mp3 or .wav; empty uses the built-in loop
	Volume          float64 `yaml:"volume"`
	ResumeTimeoutMS int     `yaml:"resume_timeout_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a match.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Points played or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to AI speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "leave the
// loaded config alone".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
