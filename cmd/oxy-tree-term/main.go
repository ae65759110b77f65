package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/Carmen-Shannon/oxy-tree/engine/audio"
	"github.com/Carmen-Shannon/oxy-tree/engine/config"
	"github.com/Carmen-Shannon/oxy-tree/engine/overlay"
	"github.com/Carmen-Shannon/oxy-tree/engine/profiler"
	"github.com/Carmen-Shannon/oxy-tree/engine/terminal"
	"github.com/Carmen-Shannon/oxy-tree/engine/tree"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "", "path to a YAML scene config")
	fps        = flag.Int("fps", 30, "frames per second")
	logPath    = flag.String("log", "", "write logs to this file instead of discarding them")
	profile    = flag.Bool("profile", false, "log frame and memory stats once per second")
	foliage    = flag.Int("foliage", 3000, "foliage particle count, the terminal cannot show the full cloud")
)

func main() {
	flag.Parse()

	// the screen owns stdout, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "oxy-tree-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cfg.Counts.Foliage = min(cfg.Counts.Foliage, max(*foliage, 0))

	t, err := tree.NewTree(cfg, tree.WithCPUPositions(true))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	player := audio.NewPlayer(audio.WithEnabled(cfg.Audio.Enabled), audio.WithVolume(cfg.Audio.Volume))
	if err := player.Init(); err != nil {
		log.Printf("[Audio] %v, continuing without sound", err)
	}
	defer player.Close()

	opts := []terminal.AppBuilderOption{
		terminal.WithFrameRate(*fps),
		terminal.WithPlayer(player),
		terminal.WithOverlay(overlay.NewOverlay(t.State(), overlay.WithTitle(cfg.Window.Title))),
	}
	if *profile {
		opts = append(opts, terminal.WithProfiler(profiler.NewProfiler()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return terminal.NewApp(screen, t, opts...).Run(ctx)
}
