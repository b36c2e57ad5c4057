package bounce

import (
	"time"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Circle is the player as drawn: center and radius in arena units.
type Circle struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// Snapshot is a copy of everything a renderer needs for one frame.
// Uses plain values only, so holding one never aliases the World.
type Snapshot struct {
	Mode       string        `yaml:"mode"`
	Active     bool          `yaml:"-"`
	Score      int           `yaml:"score"`
	LastScore  int           `yaml:"last_score"`
	BestScore  int           `yaml:"best_score"`
	Rounds     int           `yaml:"rounds"`
	SpeedLimit float64       `yaml:"speed_limit"`
	Elapsed    time.Duration `yaml:"elapsed"`

	ArenaW float64 `yaml:"arena_w"`
	ArenaH float64 `yaml:"arena_h"`

	Player     Circle   `yaml:"player"`
	PlayerVX   float64  `yaml:"player_vx"`
	PlayerVY   float64  `yaml:"player_vy"`
	Left       core.Box `yaml:"left_paddle"`
	Right      core.Box `yaml:"right_paddle"`
	StartBox   core.Box `yaml:"start_button"`
	StartLabel string   `yaml:"start_label"`

	Alpha float64 `yaml:"-"` // Scheduler progress into the next tick
}

func newSnapshot(w *World, alpha float64) Snapshot {
	cx, cy := w.Player.Bounds().Center()
	return Snapshot{
		Mode:       w.Session.Mode.String(),
		Active:     w.Session.Mode == ModeActive,
		Score:      w.Session.Score,
		LastScore:  w.Session.LastScore,
		BestScore:  w.Session.BestScore,
		Rounds:     w.Session.Rounds,
		SpeedLimit: w.Session.SpeedLimit,
		Elapsed:    w.Elapsed(),
		ArenaW:     w.Config.Arena.Width,
		ArenaH:     w.Config.Arena.Height,
		Player:     Circle{X: cx, Y: cy, Radius: w.Player.Radius},
		PlayerVX:   w.Player.VX,
		PlayerVY:   w.Player.VY,
		Left:       w.Left.Bounds(),
		Right:      w.Right.Bounds(),
		StartBox:   w.startBox(),
		StartLabel: w.Config.StartButton.Label,
		Alpha:      alpha,
	}
}
