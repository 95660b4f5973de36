package scraper

import "strings"

// Field is the result of a selector lookup: either the element's text or
// nothing. It replaces blanket "swallow and default" handling with one
// explicit conversion point (OrNA), so every field read still always
// produces a string.
type Field struct {
	text  string
	found bool
}

func Found(text string) Field {
	return Field{text: strings.TrimSpace(text), found: true}
}

func Absent() Field {
	return Field{}
}

// OrNA converts the lookup result to its display string: the trimmed text
// when the element was found, the "N/A" sentinel otherwise.
func (f Field) OrNA() string {
	if !f.found {
		return NA
	}
	return f.text
}

// Text looks up the first element matching selector on p. Lookup errors are
// indistinguishable from an absent element on purpose: both map to "N/A".
func Text(p Page, selector string) Field {
	els, err := p.QuerySelectorAll(selector)
	if err != nil || len(els) == 0 {
		return Absent()
	}
	text, err := els[0].TextContent()
	if err != nil {
		return Absent()
	}
	return Found(text)
}

// Bullets collects the li and p descendants under the section matching
// selector, trims each line, drops empties and joins the rest with
// newlines. A section with no surviving lines reads as absent, not as an
// empty string.
func Bullets(p Page, selector string) Field {
	combined := selector + " li, " + selector + " p"
	els, err := p.QuerySelectorAll(combined)
	if err != nil || len(els) == 0 {
		return Absent()
	}
	var lines []string
	for _, el := range els {
		text, err := el.TextContent()
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return Absent()
	}
	return Found(strings.Join(lines, "\n"))
}
