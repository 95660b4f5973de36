package api

import (
	"github.com/rs/zerolog"

	"go-pracuj-scraper/internal/browser"
	"go-pracuj-scraper/internal/config"
	"go-pracuj-scraper/internal/scraper"
	"go-pracuj-scraper/internal/scraper/pracuj"
)

// PlaywrightRunner runs each scrape on a fresh browser session, torn down
// unconditionally when the run ends.
type PlaywrightRunner struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewPlaywrightRunner(cfg *config.Config, log zerolog.Logger) *PlaywrightRunner {
	return &PlaywrightRunner{cfg: cfg, log: log}
}

func (r *PlaywrightRunner) Run(term string, headless bool, limit *int) ([]scraper.Record, []string, error) {
	mgr, err := browser.NewManager(headless, r.cfg.NavTimeout, r.log.With().Str("component", "browser").Logger())
	if err != nil {
		return nil, nil, err
	}
	defer mgr.Close()

	s, err := pracuj.New(mgr.Page(), pracuj.Options{
		BaseURL:     r.cfg.BaseURL,
		LinkWait:    r.cfg.LinkWait,
		ConsentWait: r.cfg.ConsentWait,
	}, r.log)
	if err != nil {
		return nil, nil, err
	}

	records, urls := s.Run(term, limit)
	return records, urls, nil
}
