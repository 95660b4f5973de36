// One-shot CLI runner: scrape once for a term and write the result file.

package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"go-pracuj-scraper/internal/api"
	"go-pracuj-scraper/internal/config"
	"go-pracuj-scraper/internal/export"
	"go-pracuj-scraper/internal/scraper"
)

func main() {
	term := flag.String("term", "Mechanik", "search term")
	limit := flag.Int("limit", 0, "max number of job URLs to scrape (0 = no limit)")
	headless := flag.Bool("headless", true, "run browser headless")
	excel := flag.Bool("excel", false, "write an xlsx workbook instead of JSON")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to load config")
	}

	if err := api.EnsureResultsDir(cfg.ResultsDir); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.ResultsDir).Msg("❌ Failed to create results directory")
	}

	var limitArg *int
	if *limit > 0 {
		limitArg = limit
	}

	runner := api.NewPlaywrightRunner(cfg, logger)
	records, urls, err := runner.Run(*term, *headless, limitArg)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Scrape run failed")
	}
	logger.Info().Int("jobs", len(records)).Int("urls", len(urls)).Msg("📦 Scrape complete")

	now := time.Now()
	if *excel {
		path := filepath.Join(cfg.ResultsDir, export.Filename(*term, now))
		if err := export.WriteWorkbook(records, path); err != nil {
			logger.Fatal().Err(err).Msg("❌ Failed to write workbook")
		}
		logger.Info().Str("path", path).Msg("📁 Results saved")
		return
	}

	path := filepath.Join(cfg.ResultsDir, export.JSONFilename(*term, now))
	if err := saveJSON(records, path); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to write results file")
	}
	logger.Info().Str("path", path).Msg("📁 Results saved")
}

func saveJSON(records []scraper.Record, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
