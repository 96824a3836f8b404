package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [difficulty]",
	Short: "Print the effective game config",
	Long: `Load the game config the same way 'play' does and print it as YAML.
With a difficulty, the preset's parts_per_frame is applied first.

The output is a valid config file:
  worm config > ~/.worm/configs/worm.yaml

Examples:
  worm config
  worm config hard
  worm config --config ./my-worm.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	cfg, err := config.LoadWorm(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 0 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyWormPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck
}
