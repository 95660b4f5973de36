package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Telegram sends a short summary message after each scrape run. It is
// optional: the server runs without it when no token is configured.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    zerolog.Logger
}

func NewTelegram(token string, chatID int64, log zerolog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("initializing telegram bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID, log: log}, nil
}

// SendSummary reports one finished scrape. Failures are logged, not
// returned: a broken notifier must never degrade a scrape response.
func (t *Telegram) SendSummary(term string, scraped, failed int) {
	text := fmt.Sprintf("✅ Scraped %d offers for %q (%d failed)", scraped, term, failed)
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		t.log.Warn().Err(err).Msg("⚠️ Failed to send summary to Telegram")
	}
}
