// Package config provides YAML-based configuration loading and difficulty
// management for the bounce game. Every numeric constant the simulation
// depends on lives in BounceConfig so it can be tuned or overridden in tests.
package config

import (
	"fmt"
	"time"
)

// BounceConfig contains all configuration for the bounce game.
type BounceConfig struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Loop        LoopConfig        `yaml:"loop"`
	Player      PlayerConfig      `yaml:"player"`
	Paddles     PaddlesConfig     `yaml:"paddles"`
	Physics     PhysicsConfig     `yaml:"physics"`
	SpeedLimit  SpeedLimitConfig  `yaml:"speed_limit"`
	StartButton StartButtonConfig `yaml:"start_button"`
}

// ArenaConfig defines the playfield size and the thresholds the resolver
// checks against. All values are in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// The round ends when the player's x passes ExitRight or is at or
	// below ExitLeft.
	ExitLeft  float64 `yaml:"exit_left"`
	ExitRight float64 `yaml:"exit_right"`

	// Wall bounce fires when y <= Top or y > Bottom. The player is then
	// placed at TopSnap or BottomSnap.
	Top        float64 `yaml:"top"`
	Bottom     float64 `yaml:"bottom"`
	TopSnap    float64 `yaml:"top_snap"`
	BottomSnap float64 `yaml:"bottom_snap"`

	// Paddles reverse when y < PaddleTop or y > PaddleBottom.
	PaddleTop    float64 `yaml:"paddle_top"`
	PaddleBottom float64 `yaml:"paddle_bottom"`
}

// LoopConfig defines the fixed-timestep scheduler.
type LoopConfig struct {
	TickRate int           `yaml:"tick_rate"` // Simulation ticks per second
	MaxFrame time.Duration `yaml:"max_frame"` // Longest frame fed to the accumulator, 0 = unlimited
}

// TickDuration returns the wall-clock length of one tick.
func (l LoopConfig) TickDuration() time.Duration {
	if l.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(l.TickRate)
}

// Dt returns the simulation step in seconds.
func (l LoopConfig) Dt() float64 {
	if l.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(l.TickRate)
}

// PlayerConfig defines the ball spawn state.
type PlayerConfig struct {
	SpawnX  float64 `yaml:"spawn_x"`
	SpawnY  float64 `yaml:"spawn_y"`
	SpawnVX float64 `yaml:"spawn_vx"`
	SpawnVY float64 `yaml:"spawn_vy"`
	Radius  float64 `yaml:"radius"`
}

// PaddleConfig defines one paddle's geometry and spawn velocity.
type PaddleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VY     float64 `yaml:"vy"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddlesConfig holds both paddles.
type PaddlesConfig struct {
	Left  PaddleConfig `yaml:"left"`
	Right PaddleConfig `yaml:"right"`
}

// PhysicsConfig defines the velocity update rules.
type PhysicsConfig struct {
	NearReversal    float64 `yaml:"near_reversal"`    // |vy| above which opposing input damps instead of ramping
	ReversalDamping float64 `yaml:"reversal_damping"` // Fraction of vy removed from the displacement while reversing
	RampFactor      float64 `yaml:"ramp_factor"`      // Per-tick speed multiplier while input is held (> 1)
	DeadZone        float64 `yaml:"dead_zone"`        // |vy| at or below which decay stops
	DecayDivisor    float64 `yaml:"decay_divisor"`    // Per-tick vy divisor (> 1)
	Restitution     float64 `yaml:"restitution"`      // Wall bounce energy kept (< 1)
	BounceFactor    float64 `yaml:"bounce_factor"`    // Paddle hit vx multiplier (> 1)

	// SingleHitPerOverlap scores a paddle contact once until the ball
	// separates. When false a sustained overlap scores every tick.
	SingleHitPerOverlap bool `yaml:"single_hit_per_overlap"`
}

// SpeedLimitConfig defines the cap on |vy| and how it grows with time.
type SpeedLimitConfig struct {
	Base      float64       `yaml:"base"`
	Increment float64       `yaml:"increment"` // Added once per Interval of active play
	Interval  time.Duration `yaml:"interval"`
	Max       float64       `yaml:"max"` // 0 = no ceiling
}

// StartButtonConfig defines the start control on the idle screen, in arena units.
type StartButtonConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Label  string  `yaml:"label"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the speed-limit schedule based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *BounceConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.SpeedLimit.Base *= 0.8
		cfg.SpeedLimit.Increment /= 2
		cfg.SpeedLimit.Interval = cfg.SpeedLimit.Interval * 3 / 2
	case DifficultyHard:
		cfg.SpeedLimit.Base *= 1.2
		cfg.SpeedLimit.Increment *= 1.5
		cfg.SpeedLimit.Interval = cfg.SpeedLimit.Interval * 3 / 4
	case DifficultyFixed:
		cfg.SpeedLimit.Increment = 0
	}
}
