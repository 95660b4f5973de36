package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"go-pracuj-scraper/internal/scraper"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36"

// hide the webdriver flag before any site script runs
const initScript = "Object.defineProperty(navigator, 'webdriver', {get: () => undefined})"

// Manager owns one Playwright driver, browser, context and page for the
// lifetime of a single scrape. Close tears all of them down.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	ctx     playwright.BrowserContext
	page    playwright.Page

	navTimeout time.Duration
	log        zerolog.Logger
}

func NewManager(headless bool, navTimeout time.Duration, log zerolog.Logger) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args: []string{
			"--no-sandbox",
			"--disable-setuid-sandbox",
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launching chromium: %w", err)
	}

	ctx, err := b.NewContext(playwright.BrowserNewContextOptions{
		Viewport:  &playwright.Size{Width: 1920, Height: 1080},
		UserAgent: playwright.String(userAgent),
	})
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("creating browser context: %w", err)
	}

	if err := ctx.AddInitScript(playwright.Script{Content: playwright.String(initScript)}); err != nil {
		log.Warn().Err(err).Msg("could not install init script")
	}

	page, err := ctx.NewPage()
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("creating page: %w", err)
	}

	log.Info().Bool("headless", headless).Msg("browser initialized")

	return &Manager{
		pw:         pw,
		browser:    b,
		ctx:        ctx,
		page:       page,
		navTimeout: navTimeout,
		log:        log,
	}, nil
}

// Page returns the shared page behind the scraper contract.
func (m *Manager) Page() scraper.Page {
	return &pwPage{page: m.page, navTimeout: m.navTimeout}
}

// WrapPage adapts an externally managed playwright page to the scraper
// contract.
func WrapPage(page playwright.Page, navTimeout time.Duration) scraper.Page {
	return &pwPage{page: page, navTimeout: navTimeout}
}

func (m *Manager) Close() {
	if err := m.browser.Close(); err != nil {
		m.log.Warn().Err(err).Msg("closing browser")
	}
	if err := m.pw.Stop(); err != nil {
		m.log.Warn().Err(err).Msg("stopping playwright")
	}
}

// pwPage adapts playwright.Page to the scraper.Page contract.
type pwPage struct {
	page       playwright.Page
	navTimeout time.Duration
}

func (p *pwPage) Navigate(url string) error {
	timeout := playwright.Float(float64(p.navTimeout.Milliseconds()))
	if _, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   timeout,
	}); err != nil {
		return err
	}
	_, err := p.page.WaitForSelector("body", playwright.PageWaitForSelectorOptions{
		Timeout: timeout,
	})
	return err
}

func (p *pwPage) WaitForSelector(selector string, timeout time.Duration) error {
	_, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err
}

func (p *pwPage) QuerySelectorAll(selector string) ([]scraper.Element, error) {
	handles, err := p.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	els := make([]scraper.Element, len(handles))
	for i, h := range handles {
		els[i] = pwElement{handle: h}
	}
	return els, nil
}

func (p *pwPage) Click(selector string, timeout time.Duration) error {
	return p.page.Click(selector, playwright.PageClickOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

type pwElement struct {
	handle playwright.ElementHandle
}

func (e pwElement) TextContent() (string, error) {
	return e.handle.TextContent()
}

func (e pwElement) GetAttribute(name string) (string, error) {
	return e.handle.GetAttribute(name)
}
