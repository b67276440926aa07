// Package rod provides a browser-based implementation of
// assessrec.Fetcher for catalog pages that render their product tiles
// with JavaScript.
package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/assessrec"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements assessrec.Fetcher at compile time.
var _ assessrec.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using headless Chrome. One browser
// serves the whole session; each fetch gets its own page.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher launches a headless browser. Close must be called when
// the Fetcher is no longer needed. Returns an error if Chrome or
// Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL, waits for the load event, and returns
// the rendered HTML. The context bounds the whole navigation.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
