package mock

import (
	"context"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

var _ atbs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of atbs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

var _ atbs.PageRewriter = (*PageRewriter)(nil)

// PageRewriter is a mock implementation of atbs.PageRewriter.
type PageRewriter struct {
	RewriteHTMLFn func(ctx context.Context, html, pageURL, localPath string) string
}

func (r *PageRewriter) RewriteHTML(ctx context.Context, html, pageURL, localPath string) string {
	return r.RewriteHTMLFn(ctx, html, pageURL, localPath)
}

var _ atbs.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of atbs.TitleExtractor.
type TitleExtractor struct {
	TitleFn func(html string) string
}

func (e *TitleExtractor) Title(html string) string {
	return e.TitleFn(html)
}
