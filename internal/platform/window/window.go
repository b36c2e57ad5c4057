// Package window runs the game in a desktop window through ebiten.
// The logical screen is the arena itself, so cursor positions arrive in
// arena units and the window scales the picture to whatever size it has.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/games/bounce"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Frontend plays the game in an ebiten window.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "window" }

// Title returns the display name.
func (Frontend) Title() string { return "Window (ebiten)" }

// Run opens the window and blocks until it is closed or the player quits.
func (Frontend) Run(game *bounce.Game, opts registry.Options) error {
	cfg := game.Config()

	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	frameRate := opts.Runtime.FrameRate
	if frameRate <= 0 {
		frameRate = core.DefaultConfig().FrameRate
	}
	ebiten.SetTPS(frameRate)

	err := ebiten.RunGame(newApp(game, opts.Logger))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// newApp wires a game to ebiten's callbacks.
func newApp(game *bounce.Game, logger *log.Logger) *app {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &app{
		game:    game,
		keys:    core.NewKeyTracker(),
		logger:  logger,
		clock:   time.Now,
		pressed: ebiten.IsKeyPressed,
	}
}
