package pracuj

import (
	"fmt"
	"net/url"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"go-pracuj-scraper/internal/scraper"
)

const (
	offerLinkSelector = "a[data-test='link-offer']"
	consentSelector   = "#onetrust-accept-btn-handler"
)

// Discoverer walks paginated search results and collects unique offer URLs
// in the order they are first seen.
type Discoverer struct {
	page        scraper.Page
	base        *url.URL
	linkWait    time.Duration
	consentWait time.Duration
	log         zerolog.Logger
}

func NewDiscoverer(page scraper.Page, base *url.URL, linkWait, consentWait time.Duration, log zerolog.Logger) *Discoverer {
	return &Discoverer{
		page:        page,
		base:        base,
		linkWait:    linkWait,
		consentWait: consentWait,
		log:         log,
	}
}

// Discover returns offer URLs for term posted within the last 24 hours,
// up to limit when one is given. Navigation failures end pagination and
// yield the links gathered so far, never an error.
func (d *Discoverer) Discover(term string, limit *int) []string {
	links := []string{}
	if limit != nil && *limit <= 0 {
		d.log.Info().Msg("🔍 limit <= 0, returning no job links")
		return links
	}

	seen := mapset.NewSet[string]()
	for pageNum := 1; ; pageNum++ {
		pageURL := d.searchPageURL(term, pageNum)
		d.log.Info().Str("url", pageURL).Msg("🔍 Loading search page")

		if err := d.page.Navigate(pageURL); err != nil {
			d.log.Error().Err(err).Str("url", pageURL).Msg("❌ Timeout loading search page")
			break
		}

		d.acceptCookies()

		if err := d.page.WaitForSelector(offerLinkSelector, d.linkWait); err != nil {
			d.log.Info().Int("page", pageNum).Msg("⚠️ No more jobs found")
			break
		}
		els, err := d.page.QuerySelectorAll(offerLinkSelector)
		if err != nil || len(els) == 0 {
			break
		}

		newLinks := 0
		for _, el := range els {
			href, err := el.GetAttribute("href")
			if err != nil || href == "" {
				continue
			}
			full := d.resolve(href)
			if !seen.Add(full) {
				continue
			}
			links = append(links, full)
			newLinks++
			if limit != nil && len(links) >= *limit {
				d.log.Info().Int("limit", *limit).Msg("✅ Reached job link limit")
				return links
			}
		}

		if newLinks == 0 {
			break
		}
	}

	d.log.Info().Int("count", len(links)).Msg("✅ Collected job links for last 24 hours")
	return links
}

// searchPageURL builds the 1-based paginated search URL with the fixed
// "last 24 hours" filter.
func (d *Discoverer) searchPageURL(term string, pageNum int) string {
	return fmt.Sprintf("%s/praca/%s;kw/ostatnich%%2024h;p,%d", d.base.String(), url.PathEscape(term), pageNum)
}

// resolve turns a relative href into an absolute URL against the site base.
func (d *Discoverer) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return d.base.ResolveReference(ref).String()
}

// acceptCookies dismisses the consent overlay when present. Absence is not
// an error.
func (d *Discoverer) acceptCookies() {
	if err := d.page.WaitForSelector(consentSelector, d.consentWait); err != nil {
		d.log.Debug().Msg("ℹ️ No cookie popup found")
		return
	}
	if err := d.page.Click(consentSelector, d.consentWait); err != nil {
		d.log.Debug().Err(err).Msg("ℹ️ Could not click cookie popup")
		return
	}
	d.log.Info().Msg("✅ Accepted cookies")
}
