package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/ai"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/bot"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/insights"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/user"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/infrastructure/persistence/sheets"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/infrastructure/scheduler"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLoggerWithLevel(cfg.Logging.Level)
	defer log.Sync()

	// Initialize logrus logger for the bot
	botLogger := logrus.New()
	botLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		botLogger.SetLevel(logrus.InfoLevel)
	} else {
		botLogger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the spreadsheet
	store, err := sheets.NewClient(ctx, cfg.Sheets, log.Logger)
	if err != nil {
		log.Fatal("Failed to connect to Google Sheets", zap.Error(err))
	}

	// Connect to Gemini
	aiClient, err := ai.NewClient(ctx, cfg.Gemini, log.Logger)
	if err != nil {
		log.Fatal("Failed to create Gemini client", zap.Error(err))
	}
	defer aiClient.Close()

	// Initialize repositories
	userRepo := user.NewRepository(store)
	habitsRepo := habits.NewRepository(store)
	entriesRepo := entries.NewRepository(store)

	// Initialize services
	userService := user.NewService(userRepo, log.Logger)
	habitsService := habits.NewService(habitsRepo, log.Logger)
	entriesService := entries.NewService(entriesRepo, log.Logger)
	statsService := stats.NewService(habitsRepo, entriesRepo, cfg.Stats, log.Logger)
	insightsService := insights.NewService(habitsRepo, entriesRepo, statsService, aiClient, cfg.Stats, log.Logger)

	// Initialize the bot
	habitBot, err := bot.New(cfg.Telegram, userService, habitsService, entriesService, statsService, insightsService, botLogger)
	if err != nil {
		log.Fatal("Failed to initialize Telegram bot", zap.Error(err))
	}

	// Initialize and start the reminder scheduler
	reminderScheduler := scheduler.NewScheduler(userRepo, entriesRepo, habitBot, bot.ReminderText, cfg.Stats, log)
	reminderScheduler.Start(ctx)
	log.Info("Reminder scheduler started successfully")

	// Stop polling on interrupt
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down bot...")
		cancel()
	}()

	if err := habitBot.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal("Bot stopped with error", zap.Error(err))
	}

	log.Info("Bot exited properly")
}
