package bundle

import "regexp"

// promoRe matches the closeable promotion bar repeated on every chapter,
// up to the first closing div.
var promoRe = regexp.MustCompile(`(?is)<div[^>]*id=["']closeable_ad_bar\d*["'][^>]*>.*?</div>`)

// StripPromo removes every closeable promotion bar from a page.
func StripPromo(doc string) string {
	return promoRe.ReplaceAllString(doc, "")
}
