// worm steers a growing worm through a shrinking arena in the terminal.
//
// Usage:
//
//	worm list                  - List difficulty variants
//	worm play [difficulty]     - Play a variant (default: medium)
//	worm menu                  - Pick variants interactively
//	worm serve                 - Start SSH server for remote play
//	worm stream                - Stream games over WebSocket
//	worm scores <difficulty>   - Show high scores for a variant
//	worm config                - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.worm/scores.db)
//	--config <path>     - Load game config from a YAML file
//	--log-level <lvl>   - Server log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/games/worm"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worm",
	Short: "Worm - steer a growing worm through a shrinking arena",
	Long: `Worm is a terminal game. Eat apples to grow, then thread the exit in
the top wall once the worm is long enough. Every level narrows the arena.

Available commands:
  list     - Show difficulty variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  stream   - Stream games to WebSocket clients
  scores   - View high scores
  config   - Print the effective game config

Examples:
  worm play
  worm play hard --fps 60
  worm menu
  worm serve --ssh :2222
  worm stream --addr :8080
  worm scores easy`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		worm.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.worm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Server log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
