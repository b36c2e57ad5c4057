package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultBounceConfig returns the default configuration. It mirrors the
// embedded defaults/bounce.yaml and is used when the embed cannot be parsed.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Arena: ArenaConfig{
			Width:        1280,
			Height:       720,
			ExitLeft:     10,
			ExitRight:    1270,
			Top:          0,
			Bottom:       700,
			TopSnap:      10,
			BottomSnap:   690,
			PaddleTop:    20,
			PaddleBottom: 600, // 720 - paddle height - margin
		},
		Loop: LoopConfig{
			TickRate: 240,
			MaxFrame: 0,
		},
		Player: PlayerConfig{
			SpawnX:  45,
			SpawnY:  360,
			SpawnVX: 300,
			SpawnVY: 0.5,
			Radius:  10,
		},
		Paddles: PaddlesConfig{
			Left:  PaddleConfig{X: 30, Y: 360, VY: -50, Width: 10, Height: 100},
			Right: PaddleConfig{X: 1250, Y: 360, VY: 50, Width: 10, Height: 100},
		},
		Physics: PhysicsConfig{
			NearReversal:    2,
			ReversalDamping: 0.2,
			RampFactor:      1.05,
			DeadZone:        1,
			DecayDivisor:    1.004,
			Restitution:     0.8,
			BounceFactor:    1.1,
		},
		SpeedLimit: SpeedLimitConfig{
			Base:      500,
			Increment: 50,
			Interval:  10 * time.Second,
			Max:       1000,
		},
		StartButton: StartButtonConfig{
			X:      490,
			Y:      400,
			Width:  300,
			Height: 90,
			Label:  "START",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBounceYAML
}
