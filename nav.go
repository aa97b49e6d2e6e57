package atbs

import "fmt"

// NavEntry is one stop in the reading order.
type NavEntry struct {
	Label string
	Path  string
}

// NavOrder is the linear reading order through the bundle: book and
// workbook chapters interleaved so each book chapter is followed by its
// workbook chapter.
type NavOrder struct {
	entries []NavEntry
	index   map[string]int
}

// NewNavOrder builds the reading order for the given chapters.
func NewNavOrder(chapters []Chapter) *NavOrder {
	entries := []NavEntry{
		{Label: "Book Introduction", Path: "book/chapter0.html"},
		{Label: "Workbook Introduction", Path: "workbook/introduction.html"},
	}
	for _, ch := range chapters {
		entries = append(entries,
			NavEntry{Label: fmt.Sprintf("Book Chapter %d", ch.Number), Path: fmt.Sprintf("book/chapter%d.html", ch.Number)},
			NavEntry{Label: fmt.Sprintf("Workbook Chapter %d", ch.Number), Path: fmt.Sprintf("workbook/chapter%d.html", ch.Number)},
		)
	}
	entries = append(entries,
		NavEntry{Label: "Book Appendix A", Path: "book/appendixa.html"},
		NavEntry{Label: "Book Appendix B", Path: "book/appendixb.html"},
		NavEntry{Label: "Workbook Answers", Path: "workbook/answers.html"},
	)

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Path] = i
	}
	return &NavOrder{entries: entries, index: index}
}

// Index returns the position of path, or false if path is not in the order.
func (o *NavOrder) Index(path string) (int, bool) {
	i, ok := o.index[path]
	return i, ok
}

// Label returns the display label for path.
func (o *NavOrder) Label(path string) (string, bool) {
	i, ok := o.Index(path)
	if !ok {
		return "", false
	}
	return o.entries[i].Label, true
}

// Prev returns the entry before path. The bool result is false at the start
// of the order or when path is unknown.
func (o *NavOrder) Prev(path string) (NavEntry, bool) {
	i, ok := o.Index(path)
	if !ok || i == 0 {
		return NavEntry{}, false
	}
	return o.entries[i-1], true
}

// Next returns the entry after path. The bool result is false at the end of
// the order or when path is unknown.
func (o *NavOrder) Next(path string) (NavEntry, bool) {
	i, ok := o.Index(path)
	if !ok || i == len(o.entries)-1 {
		return NavEntry{}, false
	}
	return o.entries[i+1], true
}
