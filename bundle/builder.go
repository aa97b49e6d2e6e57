// Package bundle assembles the offline bundle: mirrored pages with
// pagination, the contents page, and the exercise scaffold.
package bundle

import (
	"context"
	"fmt"
	"path"
	"time"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"github.com/Fawaz-I/automate-the-boring-stuff/mirror"
)

// IndexPath is the bundle-relative path of the contents page.
const IndexPath = "index.html"

// Builder drives one bundle run. Pages are processed strictly in order and
// the first page that cannot be fetched or written aborts the run before
// the index and scaffold are written.
type Builder struct {
	Fetcher   atbs.Fetcher
	Rewriter  atbs.PageRewriter
	Titles    atbs.TitleExtractor
	Files     atbs.FileSystem // bundle root
	Exercises atbs.FileSystem // scaffold root
	Pages     []atbs.Page
	Nav       *atbs.NavOrder
	Chapters  []atbs.Chapter
}

// Result holds the outcome of a bundle run.
type Result struct {
	Pages    int
	Bytes    int
	Duration time.Duration
}

// ProgressEvent reports progress during a bundle run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Page      atbs.Page
	Title     string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressPage ProgressType = iota
	ProgressSaved
	ProgressFinished
)

// ProgressFunc is a callback for reporting bundle progress.
type ProgressFunc func(event ProgressEvent)

// Build mirrors every page, then writes the index and the exercise scaffold.
// The progress callback, if provided, receives events as the run proceeds.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) (*Result, error) {
	begin := time.Now()
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	result := &Result{}
	total := len(b.Pages)
	for i, page := range b.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		notify(ProgressEvent{Type: ProgressPage, Completed: i, Total: total, Page: page})

		title, n, err := b.buildPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", page.Path, err)
		}
		result.Pages++
		result.Bytes += n

		notify(ProgressEvent{Type: ProgressSaved, Completed: i + 1, Total: total, Page: page, Title: title})
	}

	index, err := RenderIndex(b.Chapters)
	if err != nil {
		return nil, err
	}
	if err := b.Files.WriteFile(IndexPath, index); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}

	if err := WriteScaffold(ctx, b.Exercises, b.Chapters); err != nil {
		return nil, err
	}

	result.Duration = time.Since(begin)
	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return result, nil
}

// buildPage fetches, rewrites and persists one page. It returns the page
// title and the number of bytes written.
func (b *Builder) buildPage(ctx context.Context, page atbs.Page) (string, int, error) {
	if err := b.Files.MkdirAll(path.Dir(page.Path)); err != nil {
		return "", 0, err
	}

	data, err := b.Fetcher.Fetch(ctx, page.URL)
	if err != nil {
		return "", 0, err
	}

	doc := mirror.DecodeText(data)
	doc = b.Rewriter.RewriteHTML(ctx, doc, page.URL, page.Path)
	doc = StripPromo(doc)
	doc = InjectNavigation(doc, page.Path, b.Nav)

	if err := b.Files.WriteFile(page.Path, []byte(doc)); err != nil {
		return "", 0, err
	}

	var title string
	if b.Titles != nil {
		title = b.Titles.Title(doc)
	}
	return title, len(doc), nil
}
