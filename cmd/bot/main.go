package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/elyorka22/-telegram-bot/internal/config"
	"github.com/elyorka22/-telegram-bot/internal/export"
	"github.com/elyorka22/-telegram-bot/internal/handler"
	"github.com/elyorka22/-telegram-bot/internal/health"
	"github.com/elyorka22/-telegram-bot/internal/middleware"
	"github.com/elyorka22/-telegram-bot/internal/remote"
	"github.com/elyorka22/-telegram-bot/internal/repository/jsonfile"
	"github.com/elyorka22/-telegram-bot/internal/service"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Language Notes Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Initialize storage and website client
	userRepo := jsonfile.NewUserRepo(cfg.UsersFile, logger)
	apiClient := remote.NewClient(cfg.APIBaseURL, logger)
	exporter := export.NewPDFExporter()

	// Initialize services
	accountService := service.NewAccountService(userRepo, apiClient, logger)
	vocabService := service.NewVocabService(userRepo, apiClient, exporter, logger)
	statsService := service.NewStatsService(userRepo, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(
		middleware.Recover(logger),
		middleware.Logging(logger),
	)

	// Initialize handler
	h := handler.NewHandler(bot, accountService, vocabService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Health endpoint for the hosting panel
	healthServer := health.NewServer(cfg.HealthAddr, statsService, apiClient, logger)
	go func() {
		if err := healthServer.ListenAndServe(); err != nil {
			logger.Error("Health server failed", zap.Error(err))
		}
	}()

	// Daily usage snapshot in background
	go runStatsJob(ctx, statsService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Health server shutdown failed", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

// runStatsJob logs a usage snapshot at startup and then once a day.
func runStatsJob(ctx context.Context, statsService *service.StatsService, logger *zap.Logger) {
	statsService.LogSnapshot()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stats job stopped")
			return
		case <-ticker.C:
			statsService.LogSnapshot()
		}
	}
}
