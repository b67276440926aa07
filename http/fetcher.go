// Package http provides the HTTP fetcher and the form-based
// recommendation UI server.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/assessrec"
)

// DefaultFetchTimeout is the default timeout for HTTP requests,
// matching the catalog scrape budget.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies outbound requests. Some catalog hosts
// reject the Go default agent outright.
const DefaultUserAgent = "Mozilla/5.0 (compatible; assessrec/1.0)"

// Limiter gates outbound requests per domain.
type Limiter interface {
	Wait(ctx context.Context, domain string) error
}

// Ensure Fetcher implements assessrec.Fetcher at compile time.
var _ assessrec.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs with plain HTTP requests. It does
// not execute JavaScript; use rod.Fetcher for pages that require
// rendering.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests. Defaults to
// DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header for outbound requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter makes the fetcher wait for the domain's rate limit
// before each request.
func WithLimiter(l Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	if f.limiter != nil {
		u, err := url.Parse(target)
		if err != nil {
			return "", assessrec.Errorf(assessrec.EINVALID, "invalid URL %q: %v", target, err)
		}
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
