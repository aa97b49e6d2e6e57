package atbs

import (
	"net/url"
	"slices"
	"strings"
)

// assetExtensions are path suffixes that always indicate a downloadable resource.
var assetExtensions = []string{
	".css", ".js",
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".ico",
	".woff", ".woff2", ".ttf", ".otf", ".eot",
	".mp4", ".webm", ".mp3",
	".pdf", ".zip",
}

// Normalize strips the fragment from a URL so that URLs differing only by
// fragment share one identity.
func Normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		if i := strings.IndexByte(rawURL, '#'); i >= 0 {
			return rawURL[:i]
		}
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

// IsHTTP reports whether rawURL is an absolute http or https URL.
// Relative and protocol-relative URLs are not.
func IsHTTP(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Scope is the allow-list of hosts whose resources are mirrored.
// The zero value allows nothing.
type Scope struct {
	hosts map[string]struct{}
}

// NewScope returns a Scope allowing the given hostnames (case-insensitive).
func NewScope(hosts ...string) Scope {
	s := Scope{hosts: make(map[string]struct{}, len(hosts))}
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			s.hosts[h] = struct{}{}
		}
	}
	return s
}

// InScope reports whether rawURL is an http(s) URL on an allowed host.
// Anything out of scope must never be fetched.
func (s Scope) InScope(rawURL string) bool {
	if !IsHTTP(rawURL) {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	_, ok := s.hosts[strings.ToLower(u.Hostname())]
	return ok
}

// Hosts returns the allowed hostnames in sorted order.
func (s Scope) Hosts() []string {
	hosts := make([]string, 0, len(s.hosts))
	for h := range s.hosts {
		hosts = append(hosts, h)
	}
	slices.Sort(hosts)
	return hosts
}

// LooksLikeAsset reports whether a reference found in attribute attr should
// be downloaded rather than treated as a navigational link.
// Attributes that load resources (src*, poster) always qualify; otherwise
// the URL path must end with a known resource extension.
func LooksLikeAsset(rawURL, attr string) bool {
	attr = strings.TrimSuffix(strings.ToLower(attr), "=")
	if strings.HasPrefix(attr, "src") || strings.Contains(attr, "poster") {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	p := strings.ToLower(u.Path)
	for _, ext := range assetExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}
