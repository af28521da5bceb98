package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/wordull/internal/api"
	"github.com/vytor/wordull/internal/clock"
	"github.com/vytor/wordull/internal/config"
	"github.com/vytor/wordull/internal/db"
	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/notify"
	"github.com/vytor/wordull/internal/reminder"
	"github.com/vytor/wordull/internal/repository/sqlite"
	"github.com/vytor/wordull/internal/services"
	"github.com/vytor/wordull/internal/wordapi"
	"github.com/vytor/wordull/internal/words"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Wordull Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("timezone=%s", cfg.Timezone)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("word_api_base=%s", cfg.WordAPIBase)
	log.Debug("fetch_timeout=%s", cfg.FetchTimeout)
	log.Debug("apprise_api_url=%s", cfg.AppriseAPIURL)
	log.Debug("words_path=%s", cfg.WordsPath)
	log.Debug("static_dir=%s", cfg.StaticDir)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	store := sqlite.NewRecordStore(database.DB)
	clk := clock.New(cfg.Timezone)
	wordClient := wordapi.New(cfg.WordAPIBase, cfg.FetchTimeout)
	notifier := notify.NewAppriseClient(cfg.AppriseAPIURL)
	wordList := words.Load(cfg.WordsPath)

	// Initialize services
	gameService := services.NewGameService(store, wordClient, clk)
	statsService := services.NewStatsService(store)
	reminderService := services.NewReminderService(store, notifier, clk)

	// The reminder scheduler drives reminder ticks; config updates reinstall
	// the job through the config service.
	sched, err := reminder.NewScheduler(clk.Location(), func() {
		ctx := logger.NewContext(context.Background(), log)
		reminderService.CheckAndSend(ctx)
	})
	if err != nil {
		log.Error("failed to create reminder scheduler: %v", err)
		os.Exit(1)
	}
	configService := services.NewConfigService(store, sched)

	// Install the reminder job from the persisted config before starting.
	startCtx := logger.NewContext(context.Background(), log)
	userCfg, err := configService.GetConfig(startCtx)
	if err != nil {
		log.Error("failed to load user config: %v", err)
		os.Exit(1)
	}
	if err := sched.Reschedule(userCfg); err != nil {
		log.Warn("failed to schedule reminder job: %v", err)
	}
	sched.Start()

	srv := &api.Server{
		GameService:     gameService,
		StatsService:    statsService,
		ConfigService:   configService,
		ReminderService: reminderService,
		WordClient:      wordClient,
		Words:           wordList,
		Clock:           clk,
		StaticDir:       cfg.StaticDir,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Stop the reminder scheduler
	log.Debug("stopping reminder scheduler")
	if err := sched.Stop(); err != nil {
		log.Error("reminder scheduler shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Wordull Server Stopped")
	log.Info("===========================================")
}
