package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/games/bounce"
)

// debugGlyphW is the advance of ebitenutil's debug font in pixels.
const debugGlyphW = 6

var (
	colorBackground = color.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff}
	colorExit       = color.RGBA{R: 0x50, G: 0x50, B: 0x58, A: 0xff}
	colorPaddle     = color.RGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0xff}
	colorBall       = color.RGBA{R: 0x7c, G: 0xfc, B: 0x00, A: 0xff}
	colorButton     = color.RGBA{R: 0x00, G: 0xbc, B: 0xd4, A: 0xff}
)

// Draw renders the current snapshot.
func (a *app) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	screen.Fill(colorBackground)

	h := float32(snap.ArenaH)
	vector.StrokeLine(screen, 1, 0, 1, h, 2, colorExit, false)
	vector.StrokeLine(screen, float32(snap.ArenaW)-1, 0, float32(snap.ArenaW)-1, h, 2, colorExit, false)

	fillBox(screen, snap.Left, colorPaddle)
	fillBox(screen, snap.Right, colorPaddle)

	// Extrapolate the ball by the time already owed to the next tick
	bx, by := snap.Player.X, snap.Player.Y
	if snap.Active {
		dt := a.game.Config().Loop.Dt() * snap.Alpha
		bx += snap.PlayerVX * dt
		by += snap.PlayerVY * dt
	}
	vector.DrawFilledCircle(screen, float32(bx), float32(by), float32(snap.Player.Radius), colorBall, true)

	if snap.Active {
		a.drawHUD(screen, snap)
		return
	}
	a.drawMenu(screen, snap)
}

func (a *app) drawHUD(screen *ebiten.Image, snap bounce.Snapshot) {
	w := int(snap.ArenaW)
	printCentered(screen, fmt.Sprintf("Score: %d", snap.Score), w/2, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0fs", snap.Elapsed.Seconds()), 20, 4)

	limit := fmt.Sprintf("Limit %.0f", snap.SpeedLimit)
	ebitenutil.DebugPrintAt(screen, limit, w-20-len(limit)*debugGlyphW, 4)
}

func (a *app) drawMenu(screen *ebiten.Image, snap bounce.Snapshot) {
	cx := int(snap.ArenaW) / 2
	top := int(snap.ArenaH) / 5

	printCentered(screen, "B O U N C E", cx, top)
	printCentered(screen, "Keep the ball between the paddles", cx, top+30)
	if snap.Rounds > 0 {
		printCentered(screen, fmt.Sprintf("Last score: %d   Best: %d", snap.LastScore, snap.BestScore), cx, top+60)
	}

	b := snap.StartBox
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 3, colorButton, false)
	bx, by := b.Center()
	printCentered(screen, snap.StartLabel, int(bx), int(by)-8)

	printCentered(screen, "Click START or press Enter", cx, int(snap.ArenaH)-40)
}

func fillBox(screen *ebiten.Image, b core.Box, clr color.Color) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
}

// printCentered draws debug text horizontally centered on x.
func printCentered(screen *ebiten.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(screen, text, x-len(text)*debugGlyphW/2, y)
}
