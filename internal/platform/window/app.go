package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/games/bounce"
)

// keyBindings lists the physical keys for each action.
var keyBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionMoveUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionMoveDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// app implements ebiten.Game.
type app struct {
	game    *bounce.Game
	keys    *core.KeyTracker
	logger  *log.Logger
	clock   func() time.Time
	pressed func(ebiten.Key) bool
	last    time.Time
}

// Update polls input and advances the simulation by the wall-clock time
// since the previous call. Ebiten calls it at the configured TPS.
func (a *app) Update() error {
	if a.pollKeys() {
		return ebiten.Termination
	}
	a.pollPointer()
	a.advance(a.clock())
	return nil
}

// pollKeys turns the held state of every binding into edges for the game.
// It reports whether quit was pressed.
func (a *app) pollKeys() bool {
	for _, b := range keyBindings {
		down := false
		for _, k := range b.keys {
			if a.pressed(k) {
				down = true
				break
			}
		}

		ev, changed := a.keys.Sample(b.action, down)
		if !changed {
			continue
		}
		if b.action == core.ActionQuit {
			if down {
				return true
			}
			continue
		}
		if a.game.HandleInput(ev) {
			a.logger.Debug("round started", "trigger", "key")
		}
	}
	return false
}

// pollPointer forwards left button edges at the cursor position.
func (a *app) pollPointer() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.game.HandleInput(core.PointerDownEvent(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if a.game.HandleInput(core.PointerUpEvent(float64(x), float64(y))) {
			a.logger.Debug("round started", "trigger", "click")
		}
	}
}

// advance runs the ticks owed for the time since the previous frame.
func (a *app) advance(now time.Time) {
	var elapsed time.Duration
	if !a.last.IsZero() {
		elapsed = now.Sub(a.last)
	}
	a.last = now

	fr := a.game.Advance(elapsed)
	if fr.PaddleHits > 0 {
		a.logger.Debug("paddle hit", "hits", fr.PaddleHits, "score", a.game.Snapshot().Score)
	}
	for _, r := range fr.Rounds {
		a.logger.Info("round over",
			"round", r.Round,
			"score", r.Score,
			"elapsed", r.Elapsed.Round(time.Millisecond),
			"speed_limit", r.SpeedLimit,
		)
	}
}

// Layout makes the logical screen exactly the arena.
func (a *app) Layout(_, _ int) (int, int) {
	cfg := a.game.Config()
	return int(cfg.Arena.Width), int(cfg.Arena.Height)
}
