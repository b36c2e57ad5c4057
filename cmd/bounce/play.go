package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/games/bounce"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

var (
	flagFrontend string
	flagFPS      int
	flagKeyHold  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the menu screen. Click START or press Enter to
begin a round.

Controls:
  Up/W       - Push the ball up
  Down/S     - Push the ball down
  Enter      - Start a round
  Q/Esc      - Quit

Terminals do not report key releases, so in the terminal frontend a
direction stays held until no key repeat arrives for --key-hold.

Difficulty options:
  easy   - Lower, slower-growing speed limit
  normal - Config values as loaded
  hard   - Higher, faster-growing speed limit
  fixed  - Speed limit never grows

Examples:
  bounce play
  bounce play --frontend window
  bounce play --difficulty hard --log-file bounce.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	defaults := core.DefaultConfig()
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to play in (see 'bounce list')")
	playCmd.Flags().IntVar(&flagFPS, "fps", defaults.FrameRate, "Frames drawn per second")
	playCmd.Flags().DurationVar(&flagKeyHold, "key-hold", defaults.KeyHold, "How long a terminal key press counts as held")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'bounce list' to see available frontends.")
		os.Exit(1)
	}

	// The terminal frontend owns stdout and stderr while it runs
	var fallback io.Writer = os.Stderr
	if flagFrontend == "tui" {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		KeyHold:   flagKeyHold,
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "frontend", frontend.ID(), "fps", rt.FrameRate, "tick_rate", cfg.Loop.TickRate)
	runErr := frontend.Run(bounce.New(cfg), registry.Options{Runtime: rt, Logger: logger})
	if runErr == nil {
		logger.Info("stopped", "frontend", frontend.ID())
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
