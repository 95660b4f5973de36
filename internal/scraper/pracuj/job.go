package pracuj

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"go-pracuj-scraper/internal/scraper"
)

const scrapedAtFormat = "2006-01-02 15:04:05"

// fieldSpec is one column of the offer page: the record key, the selector
// to read it from and whether it is a single text node or a bulleted
// section.
type fieldSpec struct {
	key      string
	selector string
	bullets  bool
}

// offerFields is the fixed, ordered field table. Downstream consumers
// (spreadsheet columns, JSON keys) depend on these exact names.
var offerFields = []fieldSpec{
	{key: "Job Title", selector: "[data-test='text-positionName']"},
	{key: "Employer", selector: "[data-test='text-employerName']"},
	{key: "Location", selector: "[data-test='text-region']"},
	{key: "Salary", selector: "[data-test='text-pay']"},
	{key: "Posted Date", selector: "[data-test='text-publicationDate']"},
	{key: "Description", selector: "[data-test='section-offerDescription']", bullets: true},
	{key: "Responsibilities", selector: "[data-test='section-responsibilities']", bullets: true},
	{key: "Requirements", selector: "[data-test='section-requirements']", bullets: true},
	{key: "Benefits", selector: "[data-test='section-benefits']", bullets: true},
	{key: "About Company", selector: "[data-test='section-about-us']", bullets: true},
	{key: "Contract Type", selector: "[data-test='sections-benefit-contracts']"},
	{key: "Employment Type", selector: "[data-test='sections-benefit-employment-type-name']"},
	{key: "Work Schedule", selector: "[data-test='sections-benefit-work-schedule']"},
	{key: "Work Mode (Office)", selector: "[data-test='sections-benefit-work-modes-full-office']"},
	{key: "Work Mode (Hybrid)", selector: "[data-test='sections-benefit-work-modes-hybrid']"},
	{key: "Remote Recruitment", selector: "[data-test='sections-benefit-remote-recruitment']"},
	{key: "Immediate Employment", selector: "[data-test='sections-benefit-immediate-employment']"},
	{key: "Languages", selector: "[data-test='required-languages']"},
	{key: "Eligibility", selector: "[data-test='eligibilities']"},
	{key: "Address", selector: "[data-test='text-address']"},
	{key: "Phone", selector: "[data-test='text-phoneNumber']"},
	{key: "Recruitment Stages", selector: "[data-test='section-recruitment-stages']", bullets: true},
	{key: "Salary by Contract Type", selector: "[data-test='section-salaryPerContractType']", bullets: true},
}

// Extractor reads a single offer page into a Record.
type Extractor struct {
	page scraper.Page
	log  zerolog.Logger
}

func NewExtractor(page scraper.Page, log zerolog.Logger) *Extractor {
	return &Extractor{page: page, log: log}
}

// Extract always returns a record with at least "URL" and "Scraped At". A
// page that fails to load yields {"Error": "Timeout"} and nothing else; any
// panic mid-extraction is recorded as "Error" on the fields populated so
// far.
func (e *Extractor) Extract(url string) (rec scraper.Record) {
	rec = scraper.Record{
		"URL":        url,
		"Scraped At": time.Now().Format(scrapedAtFormat),
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Str("url", url).Interface("panic", r).Msg("❌ Error scraping job")
			rec["Error"] = fmt.Sprint(r)
		}
	}()

	if err := e.page.Navigate(url); err != nil {
		e.log.Error().Err(err).Str("url", url).Msg("❌ Timeout loading job page")
		rec["Error"] = "Timeout"
		return rec
	}

	for _, f := range offerFields {
		if f.bullets {
			rec[f.key] = scraper.Bullets(e.page, f.selector).OrNA()
		} else {
			rec[f.key] = scraper.Text(e.page, f.selector).OrNA()
		}
	}

	return rec
}
