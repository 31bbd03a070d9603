package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vgasparyan/youtube-audio-bot/internal/app"
	"github.com/vgasparyan/youtube-audio-bot/internal/bot"
	"github.com/vgasparyan/youtube-audio-bot/internal/config"
	"github.com/vgasparyan/youtube-audio-bot/internal/fetcher"
	"github.com/vgasparyan/youtube-audio-bot/internal/handlers"
	"github.com/vgasparyan/youtube-audio-bot/internal/history"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// A local .env is a convenience for development; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize configuration")
	}

	initLogger(cfg.LogLevel)
	logrus.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
	}).Info("Starting YouTube audio bot")

	if mkErr := os.MkdirAll(cfg.DownloadDir, 0o755); mkErr != nil {
		logrus.WithError(mkErr).Fatal("Failed to create download directory")
	}

	historyStore, err := history.NewSQLiteStore(cfg.HistoryDBPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize history database")
	}

	botInstance, err := bot.NewBot(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Bot initialization failed")
	}

	application := app.New(cfg, botInstance, fetcher.NewYTDLPFetcher(cfg), historyStore)

	updates, err := botInstance.UpdatesChan(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to start receiving updates")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go processUpdates(ctx, application, updates)

	logrus.Info("YouTube audio bot started successfully")

	<-sigChan
	logrus.Info("Received shutdown signal, shutting down")
	cancel()
}

func processUpdates(ctx context.Context, application *app.App, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case update := <-updates:
			handlers.Router(application, update)
		case <-ctx.Done():
			logrus.Info("Stopping update processing")
			return
		}
	}
}

func initLogger(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("log_level", level).Warn("Unknown log level, falling back to info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
