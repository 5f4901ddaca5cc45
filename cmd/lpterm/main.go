package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/infrastructure/clipboard"
	"github.com/vitos/lp_wave/internal/infrastructure/config"
	"github.com/vitos/lp_wave/internal/infrastructure/logger"
	"github.com/vitos/lp_wave/internal/infrastructure/sound"
	"github.com/vitos/lp_wave/internal/infrastructure/storage"
	"github.com/vitos/lp_wave/internal/tui"
	"github.com/vitos/lp_wave/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the screen
	log, err := logger.NewFileLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var runs domain.RunRepository
	if cfg.Journal.Path != "" {
		store, err := storage.NewSQLiteStore(cfg.Journal.Path)
		if err != nil {
			log.Error("Failed to init sqlite, journal disabled", zap.Error(err))
		} else {
			defer store.Close()
			runs = store
		}
	}

	sessions := usecase.NewSessionService(runs, usecase.SimulatorConfig{
		TickInterval: cfg.TickInterval(),
		Params:       cfg.Params(),
	}, log)
	defer sessions.CloseAll()
	sim := sessions.Create()

	player := sound.Nop()
	if cfg.Terminal.Sound {
		p, err := sound.NewBeepPlayer(880, 30*time.Millisecond)
		if err != nil {
			// Non-fatal, runs without sound
			log.Warn("Audio initialization failed", zap.Error(err))
		} else {
			player = p
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	app := tui.NewApp(screen, sim, tui.Options{
		FPS:             cfg.Terminal.FPS,
		BannerText:      cfg.Banner.Text,
		BannerSpeed:     cfg.Banner.Speed,
		BannerDirection: cfg.Banner.Direction,
		DonationAddress: cfg.Donation.Address,
		Trail:           cfg.Terminal.Trail,
	}, player, clipboard.NewCommandClipboard(), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && err != context.Canceled {
		log.Error("Terminal app stopped", zap.Error(err))
	}
}
