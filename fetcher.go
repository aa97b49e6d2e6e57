package atbs

import "context"

// Fetcher retrieves raw bytes from URLs.
type Fetcher interface {
	// Fetch returns the full response body for the URL.
	// Failures are reported as *FetchError; partial bodies are never returned.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TitleExtractor reads the document title from HTML.
type TitleExtractor interface {
	// Title returns the trimmed <title> text, or "" when there is none.
	Title(html string) string
}

// DomainLimiter paces requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}

// PageRewriter points the references of a fetched page at bundle-local
// copies. References it cannot localize are left as they are.
type PageRewriter interface {
	RewriteHTML(ctx context.Context, html, pageURL, localPath string) string
}
