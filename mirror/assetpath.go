package mirror

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultAssetDir is the bundle directory holding downloaded assets.
const DefaultAssetDir = "assets"

// defaultExt is appended to asset paths that carry no extension.
const defaultExt = ".bin"

// AssetPath maps an asset URL to its bundle-relative local path:
// <dir>/<host>/<path>. A trailing slash maps to "index", a missing extension
// gets ".bin", and a query string adds "__q_<hash>" before the extension so
// query variants of one path do not collide.
func AssetPath(dir, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		host = "unknown"
	}

	p := u.Path
	if p == "" {
		p = "/"
	}
	if strings.HasSuffix(p, "/") {
		p += "index"
	}
	// Cleaning a rooted path drops any ".." that would climb out of the host dir.
	p = path.Clean("/" + p)
	if path.Ext(p) == "" {
		p += defaultExt
	}

	local := path.Join(dir, host, strings.TrimPrefix(p, "/"))
	if u.RawQuery != "" {
		ext := path.Ext(local)
		local = strings.TrimSuffix(local, ext) + "__q_" + queryHash(u.RawQuery) + ext
	}
	return local, nil
}

// queryHash returns a short stable hash of a raw query string.
func queryHash(query string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(query))[:10]
}
