package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/platform/stream"
)

var (
	flagStreamAddr string
	flagMaxConns   int
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Stream games to WebSocket clients",
	Long: `Start a WebSocket server. Every connection plays its own game and
receives a JSON snapshot each frame, so any client can render it.

Connect to ws://<addr>/ws?game=worm_hard (default: worm_medium).

Client messages:
  {"t":"k","k":"left","p":1}   Key pressed (p=0 for released)
  {"t":"c"}                    Pause, or restart after a crash

Examples:
  worm stream
  worm stream --addr :9000 --fps 60
  worm stream --max-conns 8 --log-level debug`,
	Run: runStream,
}

func init() {
	streamCmd.Flags().StringVar(&flagStreamAddr, "addr", ":8080", "HTTP listen address (host:port)")
	streamCmd.Flags().IntVar(&flagMaxConns, "max-conns", 64, "Maximum concurrent games (0 = unlimited)")
}

func runStream(_ *cobra.Command, _ []string) {
	logger, err := newLogger("worm-stream")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	cfg := stream.DefaultServerConfig()
	cfg.Address = flagStreamAddr
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.MaxConns = flagMaxConns
	cfg.Store = store
	cfg.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := stream.NewServer(cfg).ListenAndServe(ctx)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("stream server failed", "error", runErr)
		os.Exit(1)
	}
}
