package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/games/bounce"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend plays the game in the current terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits.
func (Frontend) Run(game *bounce.Game, opts registry.Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Model is the Bubble Tea model for a running game.
//
// Terminals report key presses but never releases, so a direction counts
// as held until KeyHold passes without another press. Auto-repeat keeps
// refreshing the deadline while the key is down.
type Model struct {
	game   *bounce.Game
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	cfg    core.RuntimeConfig
	logger *log.Logger
	clock  func() time.Time

	held     map[core.Action]time.Time // Release deadline per held direction
	last     time.Time                 // Time of the previous frame
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the given game.
func NewModel(game *bounce.Game, opts registry.Options) Model {
	cfg := opts.Runtime
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}
	if cfg.KeyHold <= 0 {
		cfg.KeyHold = core.DefaultConfig().KeyHold
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		cfg:    cfg,
		logger: logger,
		clock:  time.Now,
		held:   make(map[core.Action]time.Time),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.arenaSize())
	m.help.Width = m.width
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.arenaSize())
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionMoveUp, core.ActionMoveDown:
		m.press(a)

	case core.ActionConfirm:
		if m.game.HandleInput(core.KeyDownEvent(a)) {
			m.logger.Debug("round started", "trigger", "key")
		}
		m.game.HandleInput(core.KeyUpEvent(a))
	}

	return m, nil
}

// press marks a direction as held. A terminal only auto-repeats the most
// recent key, so pressing one direction lets go of the other.
func (m Model) press(a core.Action) {
	opposite := core.ActionMoveDown
	if a == core.ActionMoveDown {
		opposite = core.ActionMoveUp
	}
	if _, ok := m.held[opposite]; ok {
		delete(m.held, opposite)
		m.game.HandleInput(core.KeyUpEvent(opposite))
	}

	if _, ok := m.held[a]; !ok {
		m.game.HandleInput(core.KeyDownEvent(a))
	}
	m.held[a] = m.clock().Add(m.cfg.KeyHold)
}

// releaseExpired sends key-up edges for directions whose deadline passed.
func (m Model) releaseExpired(now time.Time) {
	for _, a := range []core.Action{core.ActionMoveUp, core.ActionMoveDown} {
		deadline, ok := m.held[a]
		if ok && !now.Before(deadline) {
			delete(m.held, a)
			m.game.HandleInput(core.KeyUpEvent(a))
		}
	}
}

// handleMouse maps clicks from cells to arena coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	snap := m.game.Snapshot()
	l := bounce.NewLayout(snap.ArenaW, snap.ArenaH, m.screen.Width(), m.screen.Height())
	x, y := l.ToArena(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.game.HandleInput(core.PointerDownEvent(x, y))
		}
	case tea.MouseActionRelease:
		if m.game.HandleInput(core.PointerUpEvent(x, y)) {
			m.logger.Debug("round started", "trigger", "click")
		}
	}

	return m, nil
}

// handleResize keeps the game running and only changes the drawing area.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.arenaSize())
	return m, nil
}

// handleFrame advances the simulation by the wall-clock time since the
// previous frame.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	m.releaseExpired(now)
	fr := m.game.Advance(elapsed)

	if fr.PaddleHits > 0 {
		m.logger.Debug("paddle hit", "hits", fr.PaddleHits, "score", m.game.Snapshot().Score)
	}
	for _, r := range fr.Rounds {
		m.logger.Info("round over",
			"round", r.Round,
			"score", r.Score,
			"elapsed", r.Elapsed.Round(time.Millisecond),
			"speed_limit", r.SpeedLimit,
		)
	}

	return m, frameCmd(m.cfg.FrameRate)
}

// arenaSize returns the screen area left for the arena under the help view.
func (m Model) arenaSize() (int, int) {
	rows := 1
	if m.help.ShowAll {
		rows = 3
	}
	return m.width, max(m.height-rows, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bounce.Render(m.game.Snapshot(), m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
