package main

import (
	"context"
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/sunnah-tracker/internal/config"
	"github.com/iburimskiy/sunnah-tracker/internal/database"
	"github.com/iburimskiy/sunnah-tracker/internal/game"
	"github.com/iburimskiy/sunnah-tracker/internal/logging"
	"github.com/iburimskiy/sunnah-tracker/internal/record"
	"github.com/iburimskiy/sunnah-tracker/internal/store"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "err", err)
		_ = zenity.Error("Could not open "+cfg.DBPath+": "+err.Error(), zenity.Title("Sunnah Tracker"))
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := game.New(ctx, game.Options{
		Config:  cfg,
		Backend: record.NewClient(cfg.APIURL, logger),
		Store:   store.NewKVStore(db),
		Dialogs: game.ZenityDialogs{},
		Logger:  logger,
	})

	logger.Info("starting", "api", cfg.APIURL, "db", cfg.DBPath, "dark", cfg.Dark)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Sunnah Tracker - T: theme, J: journal, S: stats, Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "err", err)
		cancel()
		db.Close()
		os.Exit(1)
	}
}
