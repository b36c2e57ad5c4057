// bounce is a small arcade game: keep a ball bouncing between two moving
// paddles for as long as you can.
//
// Usage:
//
//	bounce list              - List available frontends
//	bounce play              - Play the game
//	bounce config            - Print the default configuration
//	bounce sim               - Run the simulation headless
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-bounce/internal/platform/tui"
	_ "github.com/vovakirdan/tui-bounce/internal/platform/window"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - keep the ball between the paddles",
	Long: `Bounce is a small arcade game. A ball flies between two paddles that
drift up and down on their own. You push the ball up or down and score a
point every time it touches a paddle. The round ends when it slips past
either side.

Available commands:
  list     - Show available frontends
  play     - Play in the terminal or in a window
  config   - Print the default configuration
  sim      - Run the simulation without a screen

Examples:
  bounce play
  bounce play --frontend window --difficulty hard
  bounce config > my-bounce.yaml
  bounce sim --start --ticks 2400 --input up@0-240`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}
