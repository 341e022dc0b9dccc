// Command rectmaze solves black-and-white maze bitmaps.
//
// Usage:
//
//	rectmaze [flags] maze.png [more.png ...]
//
// For each input it writes <name>.solved.png (all rectangles green, the
// route red) into --output-dir, plus <name>.report.yaml and optionally
// <name>.geojson. With --watch it keeps running and re-solves an input
// whenever the file is rewritten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/rectmaze/config"
	"github.com/katalvlaran/rectmaze/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(cfg, log)
	if err != nil {
		log.Fatal("setup failed", zap.Error(err))
	}

	if err := app.runBatch(ctx, cfg.Inputs); err != nil {
		log.Error("batch failed", zap.Error(err))
		os.Exit(1)
	}
	if !cfg.Watch {
		return
	}
	if err := app.watch(ctx, cfg.Inputs); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("watch failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("rectmaze stopped")
}
