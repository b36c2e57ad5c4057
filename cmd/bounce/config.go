package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration as YAML. Save it, change
what you like and pass it back with --config. Any key left out keeps
its default.

With --resolved, prints the configuration the game would actually use
after the config search path and --difficulty are applied.

Examples:
  bounce config > my-bounce.yaml
  bounce config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}

// loadConfig loads the game configuration from the search path and
// applies the difficulty preset.
func loadConfig() (config.BounceConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BounceConfig{}, "", err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.BounceConfig{}, "", err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.BounceConfig{}, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, source, nil
}
