package bundle

import (
	"regexp"
	"strings"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"golang.org/x/net/html"
)

var (
	bodyOpenRe  = regexp.MustCompile(`(?i)<body[^>]*>`)
	bodyCloseRe = regexp.MustCompile(`(?i)</body>`)
)

const navStyle = "<style>" +
	".atbs-nav{display:flex;flex-wrap:wrap;gap:.5rem;align-items:center;justify-content:space-between;" +
	"margin:1rem 0;padding:.7rem .8rem;border:1px solid #cfd8dc;border-radius:10px;background:#f6fbfd;font:14px/1.35 system-ui,-apple-system,sans-serif;}" +
	".atbs-nav-center{color:#455a64;font-weight:600;}" +
	".atbs-nav-link{text-decoration:none;color:#0b5b6b;background:#e6f3f7;border:1px solid #c7dfe7;border-radius:7px;padding:.42rem .55rem;display:inline-block;}" +
	".atbs-nav-link:hover{background:#d9edf3;}" +
	".atbs-nav-disabled{opacity:.55;cursor:not-allowed;}" +
	"</style>"

// InjectNavigation adds the pagination bar for the page stored at
// localPath, right after the opening body tag and right before the closing
// one. Pages outside order are returned unchanged. The bar is not detected
// on input, so calling this twice duplicates it.
func InjectNavigation(doc, localPath string, order *atbs.NavOrder) string {
	bar, ok := navigationBar(localPath, order)
	if !ok {
		return doc
	}

	if loc := bodyOpenRe.FindStringIndex(doc); loc != nil {
		doc = doc[:loc[1]] + bar + doc[loc[1]:]
	}
	if loc := bodyCloseRe.FindStringIndex(doc); loc != nil {
		doc = doc[:loc[0]] + bar + doc[loc[0]:]
	}
	return doc
}

func navigationBar(localPath string, order *atbs.NavOrder) (string, bool) {
	current, ok := order.Label(localPath)
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString(navStyle)
	b.WriteString("<nav class='atbs-nav' aria-label='Chapter pagination'>")

	if prev, ok := order.Prev(localPath); ok {
		b.WriteString("<a class='atbs-nav-link' href='" + href(localPath, prev.Path) +
			"' aria-label='Previous chapter'>&larr; " + html.EscapeString(prev.Label) + "</a>")
	} else {
		b.WriteString("<span class='atbs-nav-link atbs-nav-disabled'>&larr; Start</span>")
	}

	b.WriteString("<span class='atbs-nav-center'><a class='atbs-nav-link' href='" + href(localPath, "index.html") +
		"'>Contents</a> " + html.EscapeString(current) + "</span>")

	if next, ok := order.Next(localPath); ok {
		b.WriteString("<a class='atbs-nav-link' href='" + href(localPath, next.Path) +
			"' aria-label='Next chapter'>" + html.EscapeString(next.Label) + " &rarr;</a>")
	} else {
		b.WriteString("<span class='atbs-nav-link atbs-nav-disabled'>End &rarr;</span>")
	}

	b.WriteString("</nav>")
	return b.String(), true
}

func href(from, to string) string {
	return html.EscapeString(atbs.RelativeLink(from, to))
}
