package mirror_test

import (
	"context"
	"errors"
	"sync"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"github.com/Fawaz-I/automate-the-boring-stuff/mock"
)

// site serves fixed bodies by URL and counts requests.
type site struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  map[string]int
}

func newSite(bodies map[string]string) *site {
	return &site{bodies: bodies, calls: make(map[string]int)}
}

func (s *site) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) ([]byte, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.calls[url]++
			body, ok := s.bodies[url]
			if !ok {
				return nil, &atbs.FetchError{URL: url, Err: errors.New("HTTP 404")}
			}
			return []byte(body), nil
		},
	}
}

func (s *site) count(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[url]
}

func (s *site) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// memFS keeps written files in memory.
type memFS struct {
	mu    sync.Mutex
	files map[string]string
	dirs  map[string]bool
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string]string), dirs: make(map[string]bool)}
}

func (fs *memFS) mock() *mock.FileSystem {
	return &mock.FileSystem{
		MkdirAllFn: func(path string) error {
			fs.mu.Lock()
			defer fs.mu.Unlock()
			fs.dirs[path] = true
			return nil
		},
		WriteFileFn: func(path string, data []byte) error {
			fs.mu.Lock()
			defer fs.mu.Unlock()
			fs.files[path] = string(data)
			return nil
		},
	}
}

func (fs *memFS) file(path string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	s, ok := fs.files[path]
	return s, ok
}

var testScope = atbs.NewScope("automatetheboringstuff.com", "inventwithpython.com")

var testPages = atbs.PageMap(atbs.DefaultConfig().Pages())
