// Package bounce implements the bounce arcade game: a ball driven up and
// down by the player flies between two oscillating paddles, scoring a point
// on every paddle contact, until it leaves the arena at either side.
//
// The package is pure simulation. Frontends feed it input edges and
// wall-clock frame durations, and read back snapshots to draw.
package bounce

import (
	"time"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Mode is the session state machine's state.
type Mode int

const (
	ModeIdle   Mode = iota // Menu shown, simulation frozen
	ModeActive             // Round in progress
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeActive:
		return "active"
	default:
		return "unknown"
	}
}

// PlayerBody is the ball. X and Y are the top-left corner of its bounding box.
type PlayerBody struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Bounds returns the player's bounding box.
func (p PlayerBody) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, 2*p.Radius, 2*p.Radius)
}

// PaddleBody is a vertically moving paddle with a fixed x.
type PaddleBody struct {
	X, Y float64
	VY   float64
	W, H float64
}

// Bounds returns the paddle's bounding box.
func (p PaddleBody) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// InputState holds the two held directions. Both may be true at once.
type InputState struct {
	MovingUp   bool
	MovingDown bool
}

// Session holds the mode and the per-round counters.
type Session struct {
	Mode       Mode
	Score      int
	SpeedLimit float64
	Ticks      uint64 // Active ticks since the round started

	// Kept across rounds for the idle screen.
	LastScore int
	BestScore int
	Rounds    int
}

// World is the complete simulation state. It is owned by a single loop and
// passed by pointer into Resolve and Integrate.
type World struct {
	Config config.BounceConfig

	Player PlayerBody
	Left   PaddleBody
	Right  PaddleBody

	Input   InputState
	Session Session

	schedule    *config.SpeedSchedule
	overlapping bool // Ball currently overlaps a paddle (single-hit mode)
	startArmed  bool // Pointer went down on the start control
}

// NewWorld creates an idle world at spawn positions.
func NewWorld(cfg config.BounceConfig) *World {
	w := &World{
		Config:   cfg,
		schedule: config.NewSpeedSchedule(cfg.SpeedLimit),
	}
	w.resetRound()
	return w
}

// resetRound puts every body at its spawn state and clears the round counters.
func (w *World) resetRound() {
	pc := w.Config.Player
	w.Player = PlayerBody{
		X:      pc.SpawnX,
		Y:      pc.SpawnY,
		VX:     pc.SpawnVX,
		VY:     pc.SpawnVY,
		Radius: pc.Radius,
	}
	w.Left = paddleFromConfig(w.Config.Paddles.Left)
	w.Right = paddleFromConfig(w.Config.Paddles.Right)

	w.Session.Score = 0
	w.Session.Ticks = 0
	w.Session.SpeedLimit = w.schedule.Base()
	w.overlapping = false
}

func paddleFromConfig(pc config.PaddleConfig) PaddleBody {
	return PaddleBody{X: pc.X, Y: pc.Y, VY: pc.VY, W: pc.Width, H: pc.Height}
}

// Elapsed returns how long the current round has been active.
func (w *World) Elapsed() time.Duration {
	return time.Duration(w.Session.Ticks) * time.Second / time.Duration(w.Config.Loop.TickRate)
}
