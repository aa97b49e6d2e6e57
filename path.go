package atbs

import (
	"net/url"
	"path/filepath"
	"strings"
)

// RelativeLink returns the link from the document at from to the file at to.
// Both are bundle-relative file paths; the result is relative to from's
// directory, uses forward slashes, and is escaped for use in markup or CSS,
// so a file named "a#b.png" is linked as "a%23b.png".
func RelativeLink(from, to string) string {
	dir := filepath.Dir(filepath.FromSlash(from))
	rel, err := filepath.Rel(dir, filepath.FromSlash(to))
	if err != nil {
		rel = filepath.FromSlash(to)
	}
	return escapeLink(filepath.ToSlash(rel))
}

func escapeLink(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	link := strings.Join(segments, "/")
	// A colon in the first segment would be read as a URL scheme.
	if strings.Contains(segments[0], ":") {
		link = "./" + link
	}
	return link
}
