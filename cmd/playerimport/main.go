package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/ferohs/clashdata/internal/config"
	"github.com/ferohs/clashdata/internal/db"
	"github.com/ferohs/clashdata/internal/gamedata"
	"github.com/ferohs/clashdata/internal/model"
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

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, files []string) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if len(files) == 0 {
		return fmt.Errorf("usage: playerimport <player.json> [player.json ...]")
	}

	slog.Info("clashdata player import starting", "files", len(files))

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("CLASHDATA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadClient(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Static templates are shared, read-only after load
	store, err := gamedata.LoadFiles(cfg.FilePaths(), cfg.LabToTownhall)
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// Import profiles in parallel, one goroutine per file
	g, gctx := errgroup.WithContext(ctx)

	for _, path := range files {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			player, err := model.ParsePlayer(data, store)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			if err := database.SaveSnapshot(gctx, db.SnapshotOf(player)); err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}
			slog.Info("player imported", "file", path, "tag", player.Tag, "name", player.Name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("import error: %w", err)
	}

	slog.Info("player import finished", "files", len(files))
	return nil
}
