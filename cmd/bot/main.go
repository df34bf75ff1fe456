package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	itg "homework_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet; use it with defaults for the fatal path.
		logger.Get().Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Endpoint: %s", cfg.LogLevel, cfg.Environment, cfg.Endpoint)

	// The bot only sends messages, so no poller is configured and Start is
	// never called. NewBot still verifies the token against the Telegram API.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	log.Info("Telegram bot initialized.")

	notifier := app.NewNotifier(
		itg.NewTelebotAdapter(bot),
		cfg.TelegramChatID,
		log.WithField("component", "notifier"),
	)

	apiClient := practicum.NewClient(
		cfg.Endpoint,
		cfg.PracticumToken,
		cfg.HTTPTimeout,
		log.WithField("component", "practicum_client"),
	)

	pollService := app.NewPollService(apiClient, notifier, log, cfg.PollInterval, cfg.AntiSpamInterval)
	log.Info("Application setup complete. Starting poll loop...")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pollService.Run(ctx)
		close(done)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	cancel()
	<-done // Wait for the poll loop to exit
	log.Info("Application shut down gracefully.")
}
