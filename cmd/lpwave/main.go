package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/infrastructure/config"
	"github.com/vitos/lp_wave/internal/infrastructure/logger"
	"github.com/vitos/lp_wave/internal/infrastructure/storage"
	"github.com/vitos/lp_wave/internal/usecase"
	"github.com/vitos/lp_wave/internal/web"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config")
	flag.Parse()

	// 1. Load Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Init Logger
	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Init Storage (optional)
	var (
		runs  domain.RunRepository
		store *storage.SQLiteStore
	)
	if cfg.Journal.Path != "" {
		store, err = storage.NewSQLiteStore(cfg.Journal.Path)
		if err != nil {
			log.Fatal("Failed to init sqlite", zap.Error(err))
		}
		runs = store
	}

	// 4. Init Sessions
	sessions := usecase.NewSessionService(runs, usecase.SimulatorConfig{
		TickInterval: cfg.TickInterval(),
		Params:       cfg.Params(),
	}, log)

	// 5. Init Web Server
	if err := web.InitTemplates(); err != nil {
		log.Fatal("Failed to initialize templates", zap.Error(err))
	}
	server := web.NewServer(web.Options{
		Port:            cfg.Server.Port,
		BannerText:      cfg.Banner.Text,
		DonationAddress: cfg.Donation.Address,
	}, sessions, log)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go sessions.RunJanitor(janitorCtx, time.Minute, cfg.SessionIdle())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 6. Start Server
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// 7. Wait for Shutdown
	<-stop

	log.Info("Shutting down...", zap.Int("sessions", sessions.Count()))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	stopJanitor()
	sessions.CloseAll()
	if store != nil {
		err = multierr.Append(err, store.Close())
	}
	if err != nil {
		log.Error("Shutdown failed", zap.Error(err))
	}
}
