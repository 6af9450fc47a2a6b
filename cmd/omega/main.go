// Package main runs the Project Omega text adventure in the terminal.
// It wires together configuration, logging, world content, and the shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/omega/internal/config"
	"github.com/cory-johannsen/omega/internal/game/command"
	"github.com/cory-johannsen/omega/internal/game/outcome"
	"github.com/cory-johannsen/omega/internal/game/session"
	"github.com/cory-johannsen/omega/internal/game/world"
	"github.com/cory-johannsen/omega/internal/observability"
	"github.com/cory-johannsen/omega/internal/shell"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults and OMEGA_* environment when empty)")
	worldPath := flag.String("world", "", "path to a world YAML file (overrides game.content)")
	tui := flag.Bool("tui", false, "use the full-screen interface (overrides display.mode)")
	check := flag.Bool("check", false, "validate the world content and exit")
	flag.Parse()

	if err := run(*configPath, *worldPath, *tui, *check); err != nil {
		fmt.Fprintln(os.Stderr, "--- FATAL ERROR ---")
		fmt.Fprintf(os.Stderr, "The game cannot continue: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, worldPath string, tui, check bool) error {
	start := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if worldPath != "" {
		cfg.Game.Content = worldPath
	}
	if tui {
		cfg.Display.Mode = "tui"
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	w, err := loadWorld(cfg.Game.Content)
	if err != nil {
		logger.Error("loading world", zap.String("content", cfg.Game.Content), zap.Error(err))
		return fmt.Errorf("loading world: %w", err)
	}
	logger.Info("world loaded",
		zap.String("content", contentLabel(cfg.Game.Content)),
		zap.Int("rooms", len(w.Rooms)),
		zap.Int("items", w.Catalog.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	unreachable := w.Unreachable()
	if len(unreachable) > 0 {
		logger.Warn("rooms unreachable from start", zap.Strings("rooms", unreachable))
	}
	if check {
		fmt.Printf("world %s is valid: %d rooms, %d items\n", contentLabel(cfg.Game.Content), len(w.Rooms), w.Catalog.Len())
		for _, name := range unreachable {
			fmt.Printf("warning: room %q is unreachable from %q\n", name, w.StartRoom)
		}
		return nil
	}

	sess, err := session.New(w, cfg.Scoring.Scoring())
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	logger.Info("session started",
		zap.String("session", sess.ID),
		zap.String("mode", cfg.Display.Mode),
		zap.String("room", sess.Player.Location),
	)

	game := &shell.Game{
		Session:     sess,
		Interpreter: command.NewInterpreter(command.DefaultRegistry(), logger),
		Evaluator:   outcome.NewEvaluator(logger),
	}

	switch cfg.Display.Mode {
	case "tui":
		err = shell.RunTUI(game, cfg.Display.WrapWidth, cfg.Display.Color)
	default:
		renderer := shell.NewRenderer(cfg.Display.WrapWidth, cfg.Display.Color)
		err = shell.NewREPL(game, os.Stdin, os.Stdout, renderer, logger).Run()
	}
	if err != nil {
		logger.Error("session aborted", zap.String("session", sess.ID), zap.Error(err))
		return err
	}

	logger.Info("session ended",
		zap.String("session", sess.ID),
		zap.Int("score", sess.Player.Score),
		zap.Int("turns", sess.Turns),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func loadWorld(path string) (*world.World, error) {
	if path == "" {
		return world.LoadDefault()
	}
	return world.LoadFromFile(path)
}

func contentLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
