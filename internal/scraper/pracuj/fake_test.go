package pracuj

import (
	"errors"
	"time"

	"go-pracuj-scraper/internal/scraper"
)

var errNavTimeout = errors.New("net::ERR_TIMED_OUT")

// fakeElement is an in-memory DOM node.
type fakeElement struct {
	text    string
	textErr error
	attrs   map[string]string
}

func (e *fakeElement) TextContent() (string, error) {
	return e.text, e.textErr
}

func (e *fakeElement) GetAttribute(name string) (string, error) {
	return e.attrs[name], nil
}

func linkEl(href string) scraper.Element {
	return &fakeElement{attrs: map[string]string{"href": href}}
}

func textEl(text string) scraper.Element {
	return &fakeElement{text: text}
}

// pageState is what one Navigate call lands on: either a load failure or a
// selector-keyed DOM. Bulleted sections are keyed by the combined
// "sel li, sel p" selector the extractor queries with.
type pageState struct {
	navErr error
	dom    map[string][]scraper.Element
}

// fakePage serves queued page states in navigation order and records every
// navigated URL and click. An exhausted queue fails the navigation, which
// matches a timeout for the callers.
type fakePage struct {
	queue     []pageState
	current   pageState
	navigated []string
	clicked   []string
}

func (p *fakePage) Navigate(url string) error {
	p.navigated = append(p.navigated, url)
	if len(p.queue) == 0 {
		return errNavTimeout
	}
	p.current = p.queue[0]
	p.queue = p.queue[1:]
	return p.current.navErr
}

func (p *fakePage) WaitForSelector(selector string, timeout time.Duration) error {
	if len(p.current.dom[selector]) == 0 {
		return errors.New("timeout waiting for selector " + selector)
	}
	return nil
}

func (p *fakePage) QuerySelectorAll(selector string) ([]scraper.Element, error) {
	return p.current.dom[selector], nil
}

func (p *fakePage) Click(selector string, timeout time.Duration) error {
	p.clicked = append(p.clicked, selector)
	return nil
}
