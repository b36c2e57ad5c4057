package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/games/bounce"
)

var (
	flagTicks  uint64
	flagInput  string
	flagStart  bool
	flagFormat string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a screen",
	Long: `Steps the simulation at its fixed tick rate with no frontend and
prints every round that ended plus the final state. Useful for checking
a config or reproducing a round exactly.

Input is a comma-separated script of key edges by tick:
  up@0-240      hold up from tick 0, release at tick 240
  down@300      hold down from tick 300 to the end
  confirm@10    press Enter at tick 10

Examples:
  bounce sim --start --ticks 2400
  bounce sim --input confirm@0,up@100-400 --ticks 4800 --format yaml
  bounce sim --start --config my-bounce.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 2400, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagInput, "input", "", "Input script")
	simCmd.Flags().BoolVar(&flagStart, "start", false, "Start a round before the first tick")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
}

// simReport is the result of a headless run.
type simReport struct {
	Ticks       uint64               `yaml:"ticks"`
	Simulated   time.Duration        `yaml:"simulated"`
	PaddleHits  int                  `yaml:"paddle_hits"`
	WallBounces int                  `yaml:"wall_bounces"`
	Rounds      []bounce.RoundResult `yaml:"rounds"`
	Final       bounce.Snapshot      `yaml:"final"`
}

func runSim(cmd *cobra.Command, args []string) {
	if err := execSim(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execSim() error {
	if flagFormat != "text" && flagFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", flagFormat)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	script, err := bounce.ParseScript(flagInput)
	if err != nil {
		return err
	}
	logger.Debug("simulating", "config", source, "ticks", flagTicks, "script_entries", script.Len())

	rep := simulate(cfg, script, flagTicks, flagStart)
	for _, r := range rep.Rounds {
		logger.Debug("round over", "round", r.Round, "score", r.Score, "elapsed", r.Elapsed)
	}

	return writeReport(os.Stdout, rep, flagFormat)
}

// simulate runs the game for the given number of ticks, applying the
// script's input edges before each tick.
func simulate(cfg config.BounceConfig, script bounce.Script, ticks uint64, start bool) simReport {
	g := bounce.New(cfg)
	if start {
		g.Start()
	}

	rep := simReport{Ticks: ticks}
	for tick := uint64(0); tick < ticks; tick++ {
		for _, ev := range script.EventsAt(tick) {
			g.HandleInput(ev)
		}

		res := g.Step()
		if res.PaddleHit {
			rep.PaddleHits++
		}
		if res.WallBounce {
			rep.WallBounces++
		}
		if res.RoundEnded != nil {
			rep.Rounds = append(rep.Rounds, *res.RoundEnded)
		}
	}

	rep.Simulated = time.Duration(ticks) * cfg.Loop.TickDuration()
	rep.Final = g.Snapshot()
	return rep
}

// writeReport prints a report as text or YAML.
func writeReport(w io.Writer, rep simReport, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()

	case "text":
		fmt.Fprintf(w, "Simulated %d ticks (%v)\n", rep.Ticks, rep.Simulated.Round(time.Millisecond))
		fmt.Fprintf(w, "Paddle hits: %d, wall bounces: %d\n", rep.PaddleHits, rep.WallBounces)
		fmt.Fprintln(w)

		if len(rep.Rounds) == 0 {
			fmt.Fprintln(w, "No round ended.")
		}
		for _, r := range rep.Rounds {
			fmt.Fprintf(w, "  round %d: score %d after %v (speed limit %.0f)\n",
				r.Round, r.Score, r.Elapsed.Round(time.Millisecond), r.SpeedLimit)
		}
		fmt.Fprintln(w)

		f := rep.Final
		fmt.Fprintf(w, "Final: %s, score %d, best %d\n", f.Mode, f.Score, f.BestScore)
		fmt.Fprintf(w, "  ball     (%.2f, %.2f) v=(%.2f, %.2f)\n", f.Player.X, f.Player.Y, f.PlayerVX, f.PlayerVY)
		fmt.Fprintf(w, "  paddles  left y=%.2f  right y=%.2f\n", f.Left.Y, f.Right.Y)
		fmt.Fprintf(w, "  limit    %.0f\n", f.SpeedLimit)
		return nil

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
