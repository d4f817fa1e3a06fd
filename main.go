package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"dangian/config"
	"dangian/generation"
	"dangian/logging"
	"dangian/server"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		slog.Error("load settings", "error", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		slog.Error("load settings", "error", err)
		os.Exit(1)
	}
	logger, closer, err := logging.New(logging.Options{
		Level:   level,
		File:    settings.LogFile,
		Both:    settings.LogBoth,
		NoColor: settings.NoColor,
	})
	if err != nil {
		slog.Error("open log", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	// Check for command-line flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--dump-tiles":
			if err := dumpTiles(settings, logger); err != nil {
				logger.Error("dump tiles", "error", err)
				closer.Close()
				os.Exit(1)
			}
			return
		case "--serve":
			if err := serve(settings, logger); err != nil {
				logger.Error("server error", "error", err)
				closer.Close()
				os.Exit(1)
			}
			return
		}
	}

	// Run the viewer
	game, err := NewGame(settings, logger)
	if err != nil {
		logger.Error("start viewer", "error", err)
		closer.Close()
		os.Exit(1)
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run viewer", "error", err)
		closer.Close()
		os.Exit(1)
	}
}

// dumpTiles generates one dungeon and logs its tile matrix row by row
func dumpTiles(settings *config.Settings, logger *slog.Logger) error {
	rng := settings.NewRandom()
	dungeon, err := generation.NewDungeon(settings.DungeonOptions(), rng)
	if err != nil {
		return err
	}

	if err := generation.ValidateCoverage(dungeon.Canvas(), dungeon.Leaves()); err != nil {
		logger.Warn("partition coverage", "error", err)
	}

	matrix := dungeon.GenerateTileMatrix()
	logger.Info("dungeon generated",
		"seed", rng.Seed(),
		"rooms", len(dungeon.Rooms()),
		"paths", len(dungeon.Paths()),
		"tiles", matrix.Width*matrix.Height,
		"regions", matrix.Regions())

	for _, row := range strings.Split(strings.TrimSuffix(matrix.String(), "\n"), "\n") {
		logger.Info(row)
	}
	return nil
}

// serve runs the layout service until SIGINT or SIGTERM
func serve(settings *config.Settings, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var origins []string
	for _, o := range strings.Split(settings.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	srv := server.New(settings.DungeonOptions(), logger, origins)
	return srv.ListenAndServe(ctx, settings.Addr)
}
