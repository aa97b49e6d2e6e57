// Package mirror downloads remote assets into the bundle and rewrites HTML
// and CSS so that in-scope references point at the local copies.
// A Mirror lives for one bundle run and owns the asset cache of that run.
package mirror

import (
	"context"
	"net/url"
	"path"
	"regexp"
	"strings"
	"sync"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"github.com/Fawaz-I/automate-the-boring-stuff/bloom"
)

// Ensure Mirror implements atbs.PageRewriter at compile time.
var _ atbs.PageRewriter = (*Mirror)(nil)

// Stats summarizes what a Mirror did to the documents it rewrote.
type Stats struct {
	Assets    int  // assets written to disk
	Rewritten int  // references pointed at a local file
	Failed    int  // in-scope references left unchanged because download failed
	External  uint // distinct out-of-scope http(s) references left unchanged
}

// Mirror materializes assets and rewrites documents for one bundle run.
type Mirror struct {
	fetcher  atbs.Fetcher
	files    atbs.FileSystem
	scope    atbs.Scope
	pages    map[string]string
	assetDir string
	cache    *Cache

	mu       sync.Mutex
	stats    Stats
	external *bloom.Filter
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithAssetDir sets the bundle directory for downloaded assets.
// Defaults to DefaultAssetDir.
func WithAssetDir(dir string) Option {
	return func(m *Mirror) {
		m.assetDir = dir
	}
}

// WithCache makes the Mirror use an existing cache.
func WithCache(c *Cache) Option {
	return func(m *Mirror) {
		m.cache = c
	}
}

// New creates a Mirror. pages maps normalized remote page URLs to their
// bundle-relative local paths; links to those pages are rewritten to the
// local page instead of being downloaded as assets.
func New(fetcher atbs.Fetcher, files atbs.FileSystem, scope atbs.Scope, pages map[string]string, opts ...Option) *Mirror {
	m := &Mirror{
		fetcher:  fetcher,
		files:    files,
		scope:    scope,
		pages:    pages,
		assetDir: DefaultAssetDir,
		external: bloom.NewFilter(10000, 0.001),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cache == nil {
		m.cache = NewCache()
	}
	return m
}

// Stats returns a snapshot of the counters.
func (m *Mirror) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.stats
	s.External = m.external.Count()
	return s
}

// Materialize downloads the asset at rawURL into the bundle once per run
// and returns its bundle-relative path. Stylesheets are rewritten before
// they are written so their own references point at local copies.
// A failed download is not cached; the next reference retries it.
func (m *Mirror) Materialize(ctx context.Context, rawURL string) (string, error) {
	key := atbs.Normalize(rawURL)
	if p, ok := m.cache.Lookup(key); ok {
		return p, nil
	}
	if !m.scope.InScope(key) {
		return "", atbs.Errorf(atbs.EINVALID, "%s is not in scope", key)
	}

	local, err := AssetPath(m.assetDir, key)
	if err != nil {
		return "", atbs.Errorf(atbs.EINVALID, "invalid asset URL %q: %v", key, err)
	}

	local, claimed := m.cache.Begin(key, local)
	if !claimed {
		return local, nil
	}

	if err := m.download(ctx, key, local); err != nil {
		m.cache.Abort(key)
		return "", err
	}
	m.cache.Commit(key)

	m.mu.Lock()
	m.stats.Assets++
	m.mu.Unlock()

	return local, nil
}

func (m *Mirror) download(ctx context.Context, key, local string) error {
	if err := m.files.MkdirAll(path.Dir(local)); err != nil {
		return err
	}

	data, err := m.fetcher.Fetch(ctx, key)
	if err != nil {
		return err
	}

	if strings.EqualFold(path.Ext(local), ".css") {
		data = []byte(m.RewriteCSS(ctx, DecodeText(data), key, local))
	}
	return m.files.WriteFile(local, data)
}

// localize materializes abs and returns the link to it from the document at
// from. The bool result is false when the reference must be left as it is.
func (m *Mirror) localize(ctx context.Context, abs, from string) (string, bool) {
	if !m.scope.InScope(abs) {
		if atbs.IsHTTP(abs) {
			m.mu.Lock()
			m.external.Add(abs)
			m.mu.Unlock()
		}
		return "", false
	}

	local, err := m.Materialize(ctx, abs)
	if err != nil {
		m.mu.Lock()
		m.stats.Failed++
		m.mu.Unlock()
		return "", false
	}

	m.mu.Lock()
	m.stats.Rewritten++
	m.mu.Unlock()
	return atbs.RelativeLink(from, local), true
}

// resolve returns ref resolved against base, normalized.
func resolve(base, ref string) (string, bool) {
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", false
	}
	return atbs.Normalize(b.ResolveReference(r).String()), true
}

// unquote strips surrounding whitespace and quotes from a url() argument.
func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"'`))
}

// isInline reports whether ref embeds its content instead of pointing at it.
func isInline(ref string) bool {
	return strings.HasPrefix(strings.ToLower(ref), "data:")
}

// replaceAllSubmatchFunc is regexp.ReplaceAllStringFunc with access to the
// submatches. Unmatched groups are "".
func replaceAllSubmatchFunc(re *regexp.Regexp, src string, repl func(groups []string) string) string {
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringSubmatchIndex(src, -1) {
		b.WriteString(src[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = src[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(repl(groups))
		last = loc[1]
	}
	b.WriteString(src[last:])
	return b.String()
}
