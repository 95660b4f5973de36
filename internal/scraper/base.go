// Define the browser collaborator contract
// Ensure consistency across site scrapers

package scraper

import "time"

// Record is one scraped job offer: fixed field names mapped to display
// strings. Fields that could not be read carry the "N/A" sentinel.
type Record map[string]string

// NA is the sentinel for fields whose selector matched nothing.
const NA = "N/A"

// Element is a single DOM node returned by a Page query.
type Element interface {
	TextContent() (string, error)
	GetAttribute(name string) (string, error)
}

// Page is the slice of a browser page the scrapers need: navigate, wait,
// query, click. One Page instance is reused serially for every navigation.
type Page interface {
	//Navigate loads url and waits for network idle or the page timeout
	Navigate(url string) error

	//WaitForSelector blocks until selector appears or timeout elapses
	WaitForSelector(selector string, timeout time.Duration) error

	//QuerySelectorAll returns every element matching selector
	QuerySelectorAll(selector string) ([]Element, error)

	//Click clicks the first element matching selector
	Click(selector string, timeout time.Duration) error
}
