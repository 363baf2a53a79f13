package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferohs/clashdata/internal/config"
	"github.com/ferohs/clashdata/internal/gamedata"
)

const ConfigPath = "config/clashdata.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(_ context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	slog.Info("clashdata balance check starting")

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("CLASHDATA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadClient(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "data_dir", cfg.DataDir)

	// Load static balance dump
	store, err := gamedata.LoadFiles(cfg.FilePaths(), cfg.LabToTownhall)
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	// Per-registry breakdown
	for _, r := range []*gamedata.Registry{store.Troops, store.Spells, store.Heroes, store.Pets} {
		for _, t := range r.Templates() {
			slog.Debug("template",
				"kind", r.Kind(), "id", t.ID, "name", t.Name,
				"levels", t.LabLevel.Len(), "village", t.Village)
		}
		slog.Info("registry loaded", "kind", r.Kind(), "templates", r.Len())
	}

	// Cross-series length check
	if err := store.Verify(); err != nil {
		return fmt.Errorf("verifying game data: %w", err)
	}
	slog.Info("balance check passed")

	return nil
}
