// Package http provides a net/http implementation of atbs.Fetcher that
// downloads pages and assets of the mirrored sites.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

// DefaultFetchTimeout bounds a single request, body included.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the bundle builder to the mirrored sites.
const DefaultUserAgent = "Mozilla/5.0 (offline-bundle-builder)"

// maxRedirects matches the net/http default.
const maxRedirects = 10

// Ensure Fetcher implements atbs.Fetcher at compile time.
var _ atbs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves response bodies using plain HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	scope     *atbs.Scope
	limiter   atbs.DomainLimiter
	delays    []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each request.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithScope makes redirects to hosts outside scope fail the fetch.
func WithScope(scope atbs.Scope) Option {
	return func(f *Fetcher) {
		f.scope = &scope
	}
}

// WithLimiter paces requests per host.
func WithLimiter(l atbs.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithRetryDelays retries a failed fetch once per delay, sleeping the delay
// before each retry. No retries by default.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
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
		Timeout:       f.timeout,
		CheckRedirect: f.checkRedirect,
	}

	return f
}

func (f *Fetcher) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if f.scope != nil && !f.scope.InScope(req.URL.String()) {
		return fmt.Errorf("redirect to out-of-scope %s", req.URL.Redacted())
	}
	return nil
}

// Fetch retrieves the full body at rawURL. Any failure, including a non-2xx
// status, is returned as *atbs.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &atbs.FetchError{URL: rawURL, Err: ctx.Err()}
			case <-time.After(f.delays[attempt-1]):
			}
		}

		body, err := f.fetch(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}
	return nil, &atbs.FetchError{URL: rawURL, Err: lastErr}
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if f.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, err
		}
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, uerr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
