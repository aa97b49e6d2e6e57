package mirror

import (
	"context"
	"regexp"
	"strings"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

var (
	attrRe     = regexp.MustCompile(`(?i)\b(href|src|poster)=(?:(")([^"\n]*)"|(')([^'\n]*)')`)
	srcsetRe   = regexp.MustCompile(`(?is)\b(srcset)=(?:(")(.*?)"|(')(.*?)')`)
	styleURLRe = regexp.MustCompile(`(?i)url\(([^)]+)\)`)
)

// skipPrefixes mark attribute values that never point at a mirrorable resource.
var skipPrefixes = []string{"mailto:", "javascript:", "tel:", "#", "data:"}

// RewriteHTML rewrites the references in a page fetched from pageURL that
// will be stored at localPath. It runs three independent passes:
// href/src/poster attributes, srcset lists, then url() occurrences.
// Links to known pages point at the local page; in-scope assets are
// materialized; anything else is left byte-for-byte unchanged.
func (m *Mirror) RewriteHTML(ctx context.Context, html, pageURL, localPath string) string {
	html = m.rewriteAttributes(ctx, html, pageURL, localPath)
	html = m.rewriteSrcsets(ctx, html, pageURL, localPath)
	html = m.rewriteStyleURLs(ctx, html, pageURL, localPath)
	return html
}

// splitQuoted picks the quote and value of whichever quoting alternative matched.
func splitQuoted(g []string) (quote, value string) {
	if g[2] != "" {
		return g[2], g[3]
	}
	return g[4], g[5]
}

func hasSkipPrefix(value string) bool {
	lower := strings.ToLower(value)
	for _, p := range skipPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func (m *Mirror) rewriteAttributes(ctx context.Context, html, pageURL, localPath string) string {
	return replaceAllSubmatchFunc(attrRe, html, func(g []string) string {
		attr := g[1]
		quote, raw := splitQuoted(g)
		if hasSkipPrefix(raw) {
			return g[0]
		}

		ref, fragment := raw, ""
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			ref, fragment = raw[:i], raw[i:]
		}

		abs, ok := resolve(pageURL, ref)
		if !ok {
			return g[0]
		}

		var link string
		if page, ok := m.pages[abs]; ok {
			link = atbs.RelativeLink(localPath, page)
		} else {
			if m.scope.InScope(abs) && !atbs.LooksLikeAsset(abs, attr) {
				return g[0]
			}
			if link, ok = m.localize(ctx, abs, localPath); !ok {
				return g[0]
			}
		}
		return attr + "=" + quote + link + fragment + quote
	})
}

func (m *Mirror) rewriteSrcsets(ctx context.Context, html, pageURL, localPath string) string {
	return replaceAllSubmatchFunc(srcsetRe, html, func(g []string) string {
		attr := g[1]
		quote, value := splitQuoted(g)

		var parts []string
		for _, chunk := range strings.Split(value, ",") {
			item := strings.TrimSpace(chunk)
			if item == "" {
				continue
			}
			fields := strings.Fields(item)
			if abs, ok := resolve(pageURL, fields[0]); ok {
				if link, ok := m.localize(ctx, abs, localPath); ok {
					item = strings.TrimSpace(link + " " + strings.Join(fields[1:], " "))
				}
			}
			parts = append(parts, item)
		}
		return attr + "=" + quote + strings.Join(parts, ", ") + quote
	})
}

func (m *Mirror) rewriteStyleURLs(ctx context.Context, html, pageURL, localPath string) string {
	return replaceAllSubmatchFunc(styleURLRe, html, func(g []string) string {
		if link, ok := m.cssRef(ctx, g[1], pageURL, localPath); ok {
			return "url('" + link + "')"
		}
		return g[0]
	})
}
