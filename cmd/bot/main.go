package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cycle_tracker_bot/internal/app"
	"cycle_tracker_bot/internal/infra/config"
	idb "cycle_tracker_bot/internal/infra/database"
	"cycle_tracker_bot/internal/infra/logger"
	"cycle_tracker_bot/internal/infra/scheduler"
	"cycle_tracker_bot/internal/infra/storage"
	"cycle_tracker_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Cycle Tracker Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.WithField("environment", cfg.Environment).Info("Configuration loaded")

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	// Initialize persistence
	cycleRepo := idb.NewPostgresCycleRepository(db)
	kv := idb.NewPostgresKV(db)
	notifStore := storage.NewKVNotificationStore(kv)
	prefsStore := storage.NewPreferencesStore(kv)
	activityLog := storage.NewKVActivityLog(kv, log)
	log.Info("Repositories initialized.")

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := log.WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithField("sender_id", c.Sender().ID).WithField("chat_id", c.Chat().ID)
			}
			entry.Error("telebot error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.WithError(err).Fatal("Could not create Telegram bot")
	}

	// Initialize services
	deliveryClient := telegram.NewTelebotAdapter(bot, cfg.UserChatID)
	reminderService := app.NewReminderService(notifStore, deliveryClient, activityLog, log)
	cycleService := app.NewCycleService(cycleRepo, prefsStore, reminderService, activityLog, log)
	log.Info("Services initialized.")

	// Fire anything that came due while the process was down.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 1*time.Minute)
	if err := reminderService.Sweep(startupCtx, time.Now()); err != nil {
		log.WithError(err).Error("Startup dispatch sweep failed")
	}
	cancelStartup()

	// Periodic sweeps
	sweepScheduler := scheduler.NewSweepScheduler(reminderService, log, cfg.CronSpecSweep)
	sweepScheduler.Start()

	// Register Handlers
	telegram.RegisterUserHandlers(context.Background(), bot, cycleService, activityLog, cfg.UserChatID, log.WithField("component", "bot"))
	log.Info("Bot command handlers registered.")

	log.Info("Application setup complete. Bot and scheduler are starting...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down application...")
	sweepScheduler.Stop()
	bot.Stop()
	log.Info("Application shut down gracefully.")
}
