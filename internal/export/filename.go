package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxTermRunes = 50

// Filename builds the workbook name for a search term:
// jobs_<sanitized-term>_<yyyyMMdd_HHmmss>.xlsx
func Filename(term string, now time.Time) string {
	return fmt.Sprintf("jobs_%s_%s.xlsx", SanitizeTerm(term), now.Format("20060102_150405"))
}

// JSONFilename is the CLI counterpart of Filename.
func JSONFilename(term string, now time.Time) string {
	return fmt.Sprintf("jobs_%s_%s.json", SanitizeTerm(term), now.Format("20060102_150405"))
}

// SanitizeTerm makes a search term safe for filenames: diacritics folded,
// anything that is not a letter or digit replaced with underscores, capped
// at 50 runes.
func SanitizeTerm(term string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, term)
	if err != nil {
		folded = term
	}

	var b strings.Builder
	count := 0
	for _, r := range folded {
		if count >= maxTermRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
		count++
	}
	return b.String()
}
