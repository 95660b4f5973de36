package main

import (
	"os"

	"github.com/rs/zerolog"

	"go-pracuj-scraper/internal/api"
	"go-pracuj-scraper/internal/config"
	"go-pracuj-scraper/internal/reporter"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to load config")
	}

	if err := api.EnsureResultsDir(cfg.ResultsDir); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.ResultsDir).Msg("❌ Failed to create results directory")
	}

	var notify api.Notifier
	if cfg.TelegramEnabled() {
		tg, err := reporter.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, logger.With().Str("component", "reporter").Logger())
		if err != nil {
			logger.Fatal().Err(err).Msg("❌ Failed to init Telegram reporter")
		}
		notify = tg
		logger.Info().Msg("🤖 Telegram reporter initialized")
	}

	runner := api.NewPlaywrightRunner(cfg, logger)
	server := api.NewServer(cfg, runner, notify, logger.With().Str("component", "api").Logger())

	logger.Info().Str("port", cfg.Port).Msg("🚀 Server listening")
	if err := server.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}
