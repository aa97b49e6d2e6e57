package atbs_test

import (
	"net/url"
	"path"
	"testing"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from string
		to   string
		want string
	}{
		{"book/chapter3.html", "workbook/chapter3.html", "../workbook/chapter3.html"},
		{"book/chapter3.html", "book/chapter4.html", "chapter4.html"},
		{"book/chapter3.html", "index.html", "../index.html"},
		{"index.html", "book/chapter1.html", "book/chapter1.html"},
		{"book/chapter1.html", "assets/host/a/b/c/img.png", "../assets/host/a/b/c/img.png"},
		{"assets/host/a/b/c/site.css", "assets/host/img/bg.png", "../../../img/bg.png"},
		{"assets/host/a/b/c/site.css", "assets/other/x.woff", "../../../../other/x.woff"},
		{"book/chapter1.html", "assets/host/img/a#b.png", "../assets/host/img/a%23b.png"},
		{"book/chapter1.html", "assets/host/img/it's 100%.png", "../assets/host/img/it%27s%20100%25.png"},
		{"book/chapter1.html", "assets/host/img/q?.png", "../assets/host/img/q%3F.png"},
		{"index.html", "c:d.png", "./c:d.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			t.Parallel()

			got := atbs.RelativeLink(tt.from, tt.to)

			assert.Equal(t, tt.want, got)
			// Joining with the referencing document's directory must land on the target.
			target, err := url.Parse(got)
			require.NoError(t, err)
			assert.Empty(t, target.Scheme)
			assert.Empty(t, target.Fragment)
			assert.Empty(t, target.RawQuery)
			assert.Equal(t, tt.to, path.Join(path.Dir(tt.from), target.Path))
		})
	}
}
