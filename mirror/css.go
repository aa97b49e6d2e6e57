package mirror

import (
	"context"
	"regexp"
)

// cssRefRe matches stylesheet references. The @import forms come first so
// that an imported url(...) is resolved once, as an import.
var cssRefRe = regexp.MustCompile(`(?i)@import\s+url\(([^)]+)\)|@import\s+"([^"]+)"|@import\s+'([^']+)'|url\(([^)]+)\)`)

// RewriteCSS rewrites url(...) and @import references in a stylesheet
// fetched from baseURL. In-scope references are materialized and replaced
// by links relative to localPath; everything else is left unchanged.
func (m *Mirror) RewriteCSS(ctx context.Context, css, baseURL, localPath string) string {
	return replaceAllSubmatchFunc(cssRefRe, css, func(g []string) string {
		switch {
		case g[1] != "":
			if rel, ok := m.cssRef(ctx, g[1], baseURL, localPath); ok {
				return "@import url('" + rel + "')"
			}
		case g[2] != "" || g[3] != "":
			if rel, ok := m.cssRef(ctx, g[2]+g[3], baseURL, localPath); ok {
				return "@import url('" + rel + "')"
			}
		case g[4] != "":
			if rel, ok := m.cssRef(ctx, g[4], baseURL, localPath); ok {
				return "url('" + rel + "')"
			}
		}
		return g[0]
	})
}

// cssRef resolves the argument of a url() or @import.
func (m *Mirror) cssRef(ctx context.Context, inner, baseURL, localPath string) (string, bool) {
	ref := unquote(inner)
	if ref == "" || isInline(ref) {
		return "", false
	}
	abs, ok := resolve(baseURL, ref)
	if !ok {
		return "", false
	}
	return m.localize(ctx, abs, localPath)
}
