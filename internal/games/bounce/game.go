package bounce

import (
	"time"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Game couples a World with its fixed-timestep scheduler. Frontends own one
// Game each and drive it from a single loop: HandleInput for every input
// edge, then Advance once per frame, then Snapshot to draw.
type Game struct {
	world *World
	clock *FixedStep
	dt    float64
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Outcome
	Mode  Mode
	Score int
}

// FrameResult summarises the ticks run by one Advance call.
type FrameResult struct {
	Ticks       int
	PaddleHits  int
	WallBounces int
	Rounds      []RoundResult // Rounds that ended during this frame
}

// New creates an idle game for the given configuration. The configuration
// is expected to be valid; see config.BounceConfig.Validate.
func New(cfg config.BounceConfig) *Game {
	return &Game{
		world: NewWorld(cfg),
		clock: NewFixedStep(cfg.Loop.TickDuration(), cfg.Loop.MaxFrame),
		dt:    cfg.Loop.Dt(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bounce"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bounce"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BounceConfig {
	return g.world.Config
}

// Mode returns the current session mode.
func (g *Game) Mode() Mode {
	return g.world.Session.Mode
}

// HandleInput applies one input edge. Direction keys update the held
// state, Confirm or a completed click on the start control begins a round
// from the menu. It reports whether a round was started.
func (g *Game) HandleInput(ev core.InputEvent) bool {
	w := g.world
	switch ev.Kind {
	case core.KeyDown, core.KeyUp:
		held := ev.Kind == core.KeyDown
		switch ev.Action {
		case core.ActionMoveUp:
			w.Input.MovingUp = held
		case core.ActionMoveDown:
			w.Input.MovingDown = held
		case core.ActionConfirm:
			if held && w.Session.Mode == ModeIdle {
				w.Start()
				return true
			}
		}
	case core.PointerDown:
		w.pointerDown(ev.X, ev.Y)
	case core.PointerUp:
		return w.pointerUp(ev.X, ev.Y)
	}
	return false
}

// Start begins a new round immediately.
func (g *Game) Start() {
	g.world.Start()
}

// Step runs one simulation tick: the resolver, then, if the round is still
// going, the round clock and the integrator. It does nothing while idle.
func (g *Game) Step() StepResult {
	w := g.world
	if w.Session.Mode != ModeActive {
		return StepResult{Mode: w.Session.Mode, Score: w.Session.Score}
	}

	out := Resolve(w)
	if out.RoundEnded == nil {
		w.advanceClock()
		Integrate(w, g.dt)
	}

	return StepResult{Outcome: out, Mode: w.Session.Mode, Score: w.Session.Score}
}

// Advance feeds a frame's wall-clock duration to the scheduler and runs
// as many ticks as it releases.
func (g *Game) Advance(elapsed time.Duration) FrameResult {
	var fr FrameResult
	fr.Ticks = g.clock.Advance(elapsed, func() {
		res := g.Step()
		if res.PaddleHit {
			fr.PaddleHits++
		}
		if res.WallBounce {
			fr.WallBounces++
		}
		if res.RoundEnded != nil {
			fr.Rounds = append(fr.Rounds, *res.RoundEnded)
		}
	})
	return fr
}

// Snapshot returns a read-only view of the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return newSnapshot(g.world, g.clock.Alpha())
}
