// Pracuj.pl scraper: discover offer links for a term, then extract each
// offer on the same page, serially.

package pracuj

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"go-pracuj-scraper/internal/scraper"
)

type Options struct {
	BaseURL     string
	LinkWait    time.Duration
	ConsentWait time.Duration
}

type Scraper struct {
	disc *Discoverer
	ext  *Extractor
	log  zerolog.Logger
}

func New(page scraper.Page, opts Options, log zerolog.Logger) (*Scraper, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	return &Scraper{
		disc: NewDiscoverer(page, base, opts.LinkWait, opts.ConsentWait, log.With().Str("component", "discoverer").Logger()),
		ext:  NewExtractor(page, log.With().Str("component", "extractor").Logger()),
		log:  log,
	}, nil
}

func (s *Scraper) Name() string {
	return "Pracuj.pl"
}

// Run discovers offer links for term and extracts each one. Degraded
// records (timeouts, partial extractions) stay in the result; the overall
// run never fails once the browser is up.
func (s *Scraper) Run(term string, limit *int) ([]scraper.Record, []string) {
	urls := s.disc.Discover(term, limit)

	records := make([]scraper.Record, 0, len(urls))
	for i, u := range urls {
		//safety net: Discover already enforces the limit
		if limit != nil && i >= *limit {
			break
		}
		records = append(records, s.ext.Extract(u))
	}

	s.log.Info().Str("term", term).Int("jobs", len(records)).Msg("🏁 Scrape finished")
	return records, urls
}
