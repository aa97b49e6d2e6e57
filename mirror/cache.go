package mirror

import (
	"sync"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

// Cache maps normalized asset URLs to bundle-relative local paths.
// A URL is in flight between Begin and Commit/Abort; asking for it again in
// that window (a stylesheet importing itself, directly or not) yields its
// path without a second download.
// It is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.Mutex
	paths    map[string]string
	inflight map[string]string
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{
		paths:    make(map[string]string),
		inflight: make(map[string]string),
	}
}

// Lookup returns the stored path for url.
func (c *Cache) Lookup(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.paths[atbs.Normalize(url)]
	return p, ok
}

// Begin claims url for materialization at path.
// If url is already stored or in flight, Begin returns the existing path
// and false, and the caller must not fetch it.
func (c *Cache) Begin(url, path string) (string, bool) {
	key := atbs.Normalize(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.paths[key]; ok {
		return p, false
	}
	if p, ok := c.inflight[key]; ok {
		return p, false
	}
	c.inflight[key] = path
	return path, true
}

// Commit stores an in-flight url permanently.
func (c *Cache) Commit(url string) {
	key := atbs.Normalize(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.inflight[key]; ok {
		c.paths[key] = p
		delete(c.inflight, key)
	}
}

// Abort releases an in-flight url without storing it, so a later
// reference retries the download.
func (c *Cache) Abort(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, atbs.Normalize(url))
}
