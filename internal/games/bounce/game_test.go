package bounce

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

func TestGameIdleIsFrozen(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	before := g.Snapshot()

	fr := g.Advance(time.Second)

	if fr.Ticks != 240 {
		t.Errorf("ticks = %d, the scheduler should keep draining while idle", fr.Ticks)
	}
	after := g.Snapshot()
	if after.Player != before.Player || after.Left != before.Left || after.Right != before.Right {
		t.Error("bodies moved while idle")
	}
	if g.world.Session.Ticks != 0 {
		t.Errorf("round clock = %d, expected 0 while idle", g.world.Session.Ticks)
	}
}

func TestGameSpawnTick(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	g.Start()

	res := g.Step()

	if res.Mode != ModeActive || res.RoundEnded != nil {
		t.Fatalf("result = %+v, expected an ordinary active tick", res)
	}
	w := g.world
	if !approx(w.Player.X-45, 300.0/240.0) {
		t.Errorf("dx = %v, expected %v", w.Player.X-45, 300.0/240.0)
	}
	if dy := w.Player.Y - 360; dy < 0 || dy > 0.01 {
		t.Errorf("dy = %v, expected ~0", dy)
	}
	if w.Player.VY <= 0 {
		t.Errorf("VY = %v, should not change sign", w.Player.VY)
	}
	if w.Session.Ticks != 1 {
		t.Errorf("round clock = %d, expected 1", w.Session.Ticks)
	}
}

func TestGameHandleInputHeldState(t *testing.T) {
	g := New(config.DefaultBounceConfig())

	g.HandleInput(core.KeyDownEvent(core.ActionMoveUp))
	g.HandleInput(core.KeyDownEvent(core.ActionMoveDown))
	if !g.world.Input.MovingUp || !g.world.Input.MovingDown {
		t.Error("both directions should be held")
	}

	g.HandleInput(core.KeyUpEvent(core.ActionMoveUp))
	if g.world.Input.MovingUp || !g.world.Input.MovingDown {
		t.Errorf("input = %+v, expected only down held", g.world.Input)
	}

	// Held keys survive the start of a round
	g.HandleInput(core.KeyDownEvent(core.ActionConfirm))
	if !g.world.Input.MovingDown {
		t.Error("starting a round should not drop held keys")
	}
}

func TestGameRoundEndsWhenBallEscapes(t *testing.T) {
	// With no input the ball flies right at 300 units/s and passes the
	// right paddle, which has drifted down out of its way.
	g := New(config.DefaultBounceConfig())
	g.Start()

	var rounds []RoundResult
	for frame := 0; frame < 60*6; frame++ {
		fr := g.Advance(time.Second / 60)
		rounds = append(rounds, fr.Rounds...)
	}

	if len(rounds) != 1 {
		t.Fatalf("rounds ended = %d, expected 1", len(rounds))
	}
	r := rounds[0]
	if r.Score != 0 || r.Round != 1 {
		t.Errorf("result = %+v, expected round 1 with score 0", r)
	}
	if r.Elapsed < 4*time.Second || r.Elapsed > 4200*time.Millisecond {
		t.Errorf("elapsed = %v, expected ~4.09s", r.Elapsed)
	}
	if g.Mode() != ModeIdle {
		t.Errorf("mode = %v, expected idle", g.Mode())
	}

	snap := g.Snapshot()
	if snap.LastScore != 0 || snap.Rounds != 1 || snap.Active {
		t.Errorf("snapshot = %+v, expected idle after round 1", snap)
	}
}

func TestGamePaddleHitThroughStep(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	g.Start()
	g.world.Player.X = 1235
	g.world.Player.Y = 380

	res := g.Step()

	if !res.PaddleHit || res.Score != 1 {
		t.Errorf("result = %+v, expected a scoring paddle hit", res)
	}
	if g.world.Player.VX >= 0 {
		t.Error("ball should head back left")
	}
}

func TestGameDeterminism(t *testing.T) {
	script, err := ParseScript("confirm@0,up@10-200,down@150-400,up@600-900")
	if err != nil {
		t.Fatal(err)
	}

	run := func() Snapshot {
		g := New(config.DefaultBounceConfig())
		for tick := uint64(0); tick < 1200; tick++ {
			for _, ev := range script.EventsAt(tick) {
				g.HandleInput(ev)
			}
			g.Step()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same input produced different states:\n%+v\n%+v", a, b)
	}
}

func TestGameFrameRateIndependence(t *testing.T) {
	// The same wall-clock time split into different frame sizes must land
	// on the same simulation state.
	run := func(frame time.Duration, frames int) Snapshot {
		g := New(config.DefaultBounceConfig())
		g.Start()
		g.HandleInput(core.KeyDownEvent(core.ActionMoveDown))
		for i := 0; i < frames; i++ {
			g.Advance(frame)
		}
		return g.Snapshot()
	}

	a := run(tick240*4, 150) // 600 ticks in 4-tick frames
	b := run(tick240*10, 60) // 600 ticks in 10-tick frames

	a.Alpha, b.Alpha = 0, 0
	if !reflect.DeepEqual(a, b) {
		t.Errorf("frame size changed the outcome:\n%+v\n%+v", a, b)
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	if g.ID() != "bounce" || g.Title() != "Bounce" {
		t.Errorf("identity = %q/%q", g.ID(), g.Title())
	}
	if g.Config().Loop.TickRate != 240 {
		t.Errorf("tick rate = %d, expected 240", g.Config().Loop.TickRate)
	}
}
