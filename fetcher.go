package assessrec

import "context"

// Fetcher retrieves HTML from URLs. Implementations may use plain HTTP
// requests or browser automation for JavaScript-rendered pages.
type Fetcher interface {
	// Fetch returns the HTML of the page at url. The context controls
	// timeout and cancellation; a fetch that misses its deadline fails
	// closed rather than hanging.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
