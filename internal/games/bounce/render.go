package bounce

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	ExitChar   = '┊'
	ButtonFill = '░'
)

// Layout maps arena units to screen cells for a given screen size.
type Layout struct {
	W, H   int
	sx, sy float64
}

// NewLayout creates a mapping that stretches the arena over w x h cells.
func NewLayout(arenaW, arenaH float64, w, h int) Layout {
	l := Layout{W: w, H: h}
	if arenaW > 0 {
		l.sx = float64(w) / arenaW
	}
	if arenaH > 0 {
		l.sy = float64(h) / arenaH
	}
	return l
}

// ToCell returns the cell containing the arena point.
func (l Layout) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x * l.sx)), int(math.Floor(y * l.sy))
}

// ToArena returns the arena point at the center of a cell.
func (l Layout) ToArena(cx, cy int) (float64, float64) {
	if l.sx == 0 || l.sy == 0 {
		return 0, 0
	}
	return (float64(cx) + 0.5) / l.sx, (float64(cy) + 0.5) / l.sy
}

// BoxCells returns the cells whose centers lie inside b. A box too small
// to cover any cell center still gets the one cell under its center, so
// thin paddles stay visible.
func (l Layout) BoxCells(b core.Box) core.Rect {
	x0, x1 := span(b.X, b.Right(), l.sx)
	y0, y1 := span(b.Y, b.Bottom(), l.sy)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// span returns the half-open cell range [c0, c1) whose centers fall in [lo, hi).
func span(lo, hi, scale float64) (int, int) {
	c0 := int(math.Ceil(lo*scale - 0.5))
	c1 := int(math.Ceil(hi*scale - 0.5))
	if c1 <= c0 {
		c0 = int(math.Floor((lo + hi) / 2 * scale))
		c1 = c0 + 1
	}
	return c0, c1
}

// Render draws a snapshot into the screen buffer. It is the only place
// that knows how the arena looks in a terminal.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	l := NewLayout(snap.ArenaW, snap.ArenaH, dst.Width(), dst.Height())

	// Side exits
	for y := 0; y < dst.Height(); y += 2 {
		dst.SetColored(0, y, ExitChar, core.ColorGray)
		dst.SetColored(dst.Width()-1, y, ExitChar, core.ColorGray)
	}

	dst.DrawRect(l.BoxCells(snap.Left), PaddleChar, core.ColorBlue)
	dst.DrawRect(l.BoxCells(snap.Right), PaddleChar, core.ColorBlue)

	bx, by := l.ToCell(snap.Player.X, snap.Player.Y)
	dst.SetColored(bx, by, BallChar, core.ColorBrightGreen)

	if snap.Active {
		drawHUD(snap, dst)
		return
	}
	drawMenu(snap, l, dst)
}

// drawHUD draws the score line shown during a round.
func drawHUD(snap Snapshot, dst *core.Screen) {
	dst.DrawTextCentered(1, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	limit := fmt.Sprintf("Limit %.0f", snap.SpeedLimit)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(limit)-2, 0, limit, core.ColorGray)

	clock := fmt.Sprintf("%.0fs", snap.Elapsed.Seconds())
	dst.DrawText(2, 0, clock, core.ColorGray)
}

// drawMenu draws the title, the start control and the previous result.
func drawMenu(snap Snapshot, l Layout, dst *core.Screen) {
	h := dst.Height()

	dst.DrawTextCentered(h/5, "B O U N C E", core.ColorBrightGreen)
	dst.DrawTextCentered(h/5+2, "Keep the ball between the paddles", core.ColorWhite)

	if snap.Rounds > 0 {
		result := fmt.Sprintf("Last score: %d   Best: %d", snap.LastScore, snap.BestScore)
		dst.DrawTextCentered(h/5+4, result, core.ColorYellow)
	}

	btn := l.BoxCells(snap.StartBox)
	label := snap.StartLabel
	if btn.H >= 3 && btn.W >= utf8.RuneCountInString(label)+2 {
		dst.DrawRect(btn, ' ', core.ColorDefault)
		dst.DrawBox(btn, core.ColorCyan)
	} else {
		dst.DrawRect(btn, ButtonFill, core.ColorCyan)
	}
	lx := btn.X + (btn.W-utf8.RuneCountInString(label))/2
	dst.DrawText(lx, btn.Y+btn.H/2, label, core.ColorBrightWhite)

	dst.DrawTextCentered(h-2, "Click START or press Enter", core.ColorGray)
}
