// Load envs from .env
// Provide default values
// Validate config

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	BaseURL    string
	ResultsDir string
	//Navigation timeouts
	NavTimeout  time.Duration
	LinkWait    time.Duration
	ConsentWait time.Duration
	//Optional Telegram summary
	TelegramToken  string
	TelegramChatID int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        "8080",
		BaseURL:     "https://www.pracuj.pl",
		ResultsDir:  "results",
		NavTimeout:  60 * time.Second,
		LinkWait:    15 * time.Second,
		ConsentWait: 5 * time.Second,
	}

	//Override with env vars
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if base := os.Getenv("BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	if dir := os.Getenv("RESULTS_DIR"); dir != "" {
		cfg.ResultsDir = dir
	}

	var err error
	if cfg.NavTimeout, err = durationEnv("NAV_TIMEOUT_MS", cfg.NavTimeout); err != nil {
		return nil, err
	}
	if cfg.LinkWait, err = durationEnv("LINK_WAIT_MS", cfg.LinkWait); err != nil {
		return nil, err
	}
	if cfg.ConsentWait, err = durationEnv("CONSENT_WAIT_MS", cfg.ConsentWait); err != nil {
		return nil, err
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	//Telegram is opt-in, but a token without a chat ID is a misconfiguration
	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	return cfg, nil
}

// TelegramEnabled reports whether the scrape summary reporter should run.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
