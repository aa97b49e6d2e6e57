// Package goquery implements HTML inspection with github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

// Ensure TitleExtractor implements atbs.TitleExtractor at compile time.
var _ atbs.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor reads page titles from HTML.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// Title returns the text of <title>, falling back to the first <h1>.
// Internal whitespace is collapsed. Returns "" when neither is present.
func (e *TitleExtractor) Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, selector := range []string{"head title", "title", "h1"} {
		if text := collapse(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
