package bounce

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

var screenSizes = []struct{ w, h int }{
	{40, 12},
	{80, 24},
	{120, 40},
	{200, 60},
}

func TestLayoutStartButtonCellsMapInside(t *testing.T) {
	snap := New(config.DefaultBounceConfig()).Snapshot()

	for _, sz := range screenSizes {
		l := NewLayout(snap.ArenaW, snap.ArenaH, sz.w, sz.h)
		btn := l.BoxCells(snap.StartBox)
		if btn.Empty() {
			t.Errorf("%dx%d: start button covers no cells", sz.w, sz.h)
			continue
		}

		for cy := btn.Y; cy < btn.Bottom(); cy++ {
			for cx := btn.X; cx < btn.Right(); cx++ {
				x, y := l.ToArena(cx, cy)
				if !snap.StartBox.Contains(x, y) {
					t.Errorf("%dx%d: cell (%d, %d) maps to (%.2f, %.2f), outside the start button",
						sz.w, sz.h, cx, cy, x, y)
				}
			}
		}

		// Cells just outside the drawn button must not map inside it
		for _, c := range [][2]int{{btn.X - 1, btn.Y}, {btn.Right(), btn.Y}, {btn.X, btn.Y - 1}, {btn.X, btn.Bottom()}} {
			x, y := l.ToArena(c[0], c[1])
			if snap.StartBox.Contains(x, y) {
				t.Errorf("%dx%d: cell %v outside the drawn button maps inside it", sz.w, sz.h, c)
			}
		}
	}
}

func TestClickOnDrawnButtonStarts(t *testing.T) {
	for _, sz := range screenSizes {
		g := New(config.DefaultBounceConfig())
		snap := g.Snapshot()
		l := NewLayout(snap.ArenaW, snap.ArenaH, sz.w, sz.h)
		btn := l.BoxCells(snap.StartBox)

		x, y := l.ToArena(btn.X, btn.Bottom()-1) // bottom-left corner cell
		g.HandleInput(core.PointerDownEvent(x, y))
		if !g.HandleInput(core.PointerUpEvent(x, y)) {
			t.Errorf("%dx%d: click on cell (%d, %d) did not start", sz.w, sz.h, btn.X, btn.Bottom()-1)
		}
	}
}

func TestLayoutThinBoxStillVisible(t *testing.T) {
	l := NewLayout(1280, 720, 80, 24)

	// Paddles are 10 units wide, less than one 16-unit column
	r := l.BoxCells(core.NewBox(30, 360, 10, 100))
	if r.W != 1 || r.X != 2 {
		t.Errorf("left paddle cells = %+v, expected one column at x=2", r)
	}
	if r.Y != 12 || r.H != 3 {
		t.Errorf("left paddle rows = %d..%d, expected 12..15", r.Y, r.Bottom())
	}
}

func TestLayoutToCell(t *testing.T) {
	l := NewLayout(1280, 720, 80, 24)

	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 0, 0},
		{15.9, 29.9, 0, 0},
		{16, 31, 1, 1},
		{1279, 719, 79, 23},
		{-1, -1, -1, -1},
	}
	for _, tc := range tests {
		cx, cy := l.ToCell(tc.x, tc.y)
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
		}
	}
}

func TestRenderIdleMenu(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	scr := core.NewScreen(80, 24)

	Render(g.Snapshot(), scr)
	out := scr.String()

	for _, want := range []string{"B O U N C E", "START", "Click START or press Enter"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Last score") {
		t.Error("no previous result should be shown before the first round")
	}
	if strings.Contains(out, "Score: 0") {
		t.Error("HUD should not be drawn on the menu")
	}
}

func TestRenderIdleShowsLastResult(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	g.Start()
	g.world.Player.X = 1235
	g.world.Player.Y = 380
	g.Step() // score 1
	g.world.Player.X = 2000
	g.Step() // round over

	scr := core.NewScreen(80, 24)
	Render(g.Snapshot(), scr)

	if !strings.Contains(scr.String(), "Last score: 1   Best: 1") {
		t.Errorf("idle screen should show the last result:\n%s", scr.String())
	}
}

func TestRenderActive(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	g.Start()
	scr := core.NewScreen(80, 24)

	Render(g.Snapshot(), scr)

	out := scr.String()
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD missing score:\n%s", out)
	}
	if !strings.Contains(out, "Limit 500") {
		t.Errorf("HUD missing speed limit:\n%s", out)
	}
	if strings.Contains(out, "START") {
		t.Error("start button should be hidden during a round")
	}

	// Ball center (55, 370) lands in cell (3, 12)
	if cell := scr.GetCell(3, 12); cell.Rune != BallChar || cell.Color != core.ColorBrightGreen {
		t.Errorf("cell (3, 12) = %+v, expected the ball", cell)
	}
	if scr.Get(2, 12) != PaddleChar || scr.Get(78, 12) != PaddleChar {
		t.Error("both paddles should be drawn on row 12")
	}
	if scr.Get(0, 0) != ExitChar || scr.Get(79, 0) != ExitChar {
		t.Error("side exits should be marked")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	g := New(config.DefaultBounceConfig())
	scr := core.NewScreen(0, 0)

	Render(g.Snapshot(), scr) // must not panic
}
