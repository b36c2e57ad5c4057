package bounce

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

func TestStartResetsRound(t *testing.T) {
	w := newTestWorld()
	w.Player.X = 900
	w.Player.VY = -321
	w.Right.Y = 42
	w.Session.Score = 12
	w.Session.SpeedLimit = 750
	w.Session.Ticks = 99

	w.Start()

	if w.Session.Mode != ModeActive {
		t.Errorf("mode = %v, expected active", w.Session.Mode)
	}
	if w.Session.Score != 0 || w.Session.Ticks != 0 {
		t.Errorf("score = %d, ticks = %d, expected both 0", w.Session.Score, w.Session.Ticks)
	}
	if w.Session.SpeedLimit != 500 {
		t.Errorf("speed limit = %v, expected base 500", w.Session.SpeedLimit)
	}
	if w.Player.X != 45 || w.Player.VY != 0.5 || w.Right.Y != 360 {
		t.Error("bodies should be back at spawn")
	}
	if w.Session.Rounds != 1 {
		t.Errorf("rounds = %d, expected 1", w.Session.Rounds)
	}
}

func TestSpeedLimitGrowsWithActiveTime(t *testing.T) {
	w := newActiveWorld(config.DefaultBounceConfig())

	prev := w.Session.SpeedLimit
	for i := 0; i < 240*25; i++ {
		w.advanceClock()
		if w.Session.SpeedLimit < prev {
			t.Fatalf("tick %d: speed limit decreased %v -> %v", i, prev, w.Session.SpeedLimit)
		}
		prev = w.Session.SpeedLimit

		switch w.Session.Ticks {
		case 2399:
			if w.Session.SpeedLimit != 500 {
				t.Errorf("just under 10s: limit = %v, expected 500", w.Session.SpeedLimit)
			}
		case 2400:
			if w.Session.SpeedLimit != 550 {
				t.Errorf("at 10s: limit = %v, expected 550", w.Session.SpeedLimit)
			}
		case 4800:
			if w.Session.SpeedLimit != 600 {
				t.Errorf("at 20s: limit = %v, expected 600", w.Session.SpeedLimit)
			}
		}
	}

	if w.Elapsed() != 25*time.Second {
		t.Errorf("elapsed = %v, expected 25s", w.Elapsed())
	}

	w.Start()
	if w.Session.SpeedLimit != 500 {
		t.Errorf("restart: limit = %v, expected base 500", w.Session.SpeedLimit)
	}
}

func TestSpeedLimitNeverLowered(t *testing.T) {
	w := newActiveWorld(config.DefaultBounceConfig())
	w.Session.SpeedLimit = 900

	w.advanceClock()

	if w.Session.SpeedLimit != 900 {
		t.Errorf("limit = %v, the schedule must not lower it", w.Session.SpeedLimit)
	}
}

func TestStartControlClick(t *testing.T) {
	// Default start control spans x 490..790, y 400..490
	tests := []struct {
		name      string
		down, up  [2]float64
		wantStart bool
	}{
		{"press and release inside", [2]float64{600, 420}, [2]float64{610, 430}, true},
		{"release outside", [2]float64{600, 420}, [2]float64{100, 100}, false},
		{"press outside", [2]float64{100, 100}, [2]float64{600, 420}, false},
		{"right edge is outside", [2]float64{790, 420}, [2]float64{790, 420}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(config.DefaultBounceConfig())

			g.HandleInput(core.PointerDownEvent(tc.down[0], tc.down[1]))
			started := g.HandleInput(core.PointerUpEvent(tc.up[0], tc.up[1]))

			if started != tc.wantStart {
				t.Errorf("started = %v, expected %v", started, tc.wantStart)
			}
			wantMode := ModeIdle
			if tc.wantStart {
				wantMode = ModeActive
			}
			if g.Mode() != wantMode {
				t.Errorf("mode = %v, expected %v", g.Mode(), wantMode)
			}
		})
	}
}

func TestStartTriggersIgnoredWhileActive(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	g.HandleInput(core.KeyDownEvent(core.ActionConfirm))
	g.Step()

	g.HandleInput(core.KeyDownEvent(core.ActionConfirm))
	g.HandleInput(core.PointerDownEvent(600, 420))
	g.HandleInput(core.PointerUpEvent(600, 420))

	if g.world.Session.Rounds != 1 {
		t.Errorf("rounds = %d, an active round must not restart", g.world.Session.Rounds)
	}
	if g.world.Session.Ticks != 1 {
		t.Errorf("ticks = %d, expected the round clock to keep running", g.world.Session.Ticks)
	}
}

func TestClickStateDoesNotLeakIntoNextMenu(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	g.HandleInput(core.PointerDownEvent(600, 420))
	g.HandleInput(core.KeyDownEvent(core.ActionConfirm)) // started by keyboard instead

	// Round ends
	g.world.Player.X = 2000
	g.Step()
	if g.Mode() != ModeIdle {
		t.Fatal("round should have ended")
	}

	// A lone release must not count as a click
	if g.HandleInput(core.PointerUpEvent(600, 420)) {
		t.Error("release without a press on this menu should not start a round")
	}
}
