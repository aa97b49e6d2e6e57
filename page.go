package atbs

import (
	"fmt"
	"strings"
)

// Page describes one remote page mirrored into the bundle.
// Identity is the remote URL.
type Page struct {
	Label string
	URL   string
	Path  string // bundle-relative local path, e.g. "book/chapter3.html"
}

// Chapter is one numbered chapter shared by the book and the workbook.
type Chapter struct {
	Number int    `yaml:"number"`
	Slug   string `yaml:"slug"`
}

// Dir returns the exercise folder name, e.g. "03_loops".
func (c Chapter) Dir() string {
	return fmt.Sprintf("%02d_%s", c.Number, c.Slug)
}

// PagePlaceholder is replaced by the page stem in URL templates.
const PagePlaceholder = "{page}"

// Config holds the externally variable inputs of a bundle build.
type Config struct {
	Chapters    []Chapter `yaml:"chapters"`
	Hosts       []string  `yaml:"hosts"`
	BookURL     string    `yaml:"book_url"`
	WorkbookURL string    `yaml:"workbook_url"`
}

// DefaultConfig returns the configuration for the third edition of the book
// and its workbook.
func DefaultConfig() *Config {
	return &Config{
		Chapters: []Chapter{
			{1, "python_basics"},
			{2, "if_else_and_flow_control"},
			{3, "loops"},
			{4, "functions"},
			{5, "debugging"},
			{6, "lists"},
			{7, "dictionaries_and_structuring_data"},
			{8, "strings_and_text_editing"},
			{9, "text_pattern_matching_with_regular_expressions"},
			{10, "reading_and_writing_files"},
			{11, "organizing_files"},
			{12, "designing_and_deploying_command_line_programs"},
			{13, "web_scraping"},
			{14, "excel_spreadsheets"},
			{15, "google_sheets"},
			{16, "sqlite_databases"},
			{17, "pdf_and_word_documents"},
			{18, "csv_json_and_xml_files"},
			{19, "keeping_time_scheduling_tasks_and_launching_programs"},
			{20, "sending_email_texts_and_push_notifications"},
			{21, "making_graphs_and_manipulating_images"},
			{22, "recognizing_text_in_images"},
			{23, "controlling_the_keyboard_and_mouse"},
			{24, "text_to_speech_and_speech_recognition_engines"},
		},
		Hosts:       []string{"automatetheboringstuff.com", "inventwithpython.com"},
		BookURL:     "https://automatetheboringstuff.com/3e/{page}.html",
		WorkbookURL: "https://inventwithpython.com/automate3workbook/{page}.html",
	}
}

// Validate returns an error if the configuration cannot describe a bundle.
func (c *Config) Validate() error {
	if len(c.Chapters) == 0 {
		return Errorf(EINVALID, "at least one chapter required")
	}
	seen := make(map[int]bool, len(c.Chapters))
	for _, ch := range c.Chapters {
		if ch.Number <= 0 {
			return Errorf(EINVALID, "chapter number must be positive, got %d", ch.Number)
		}
		if ch.Slug == "" {
			return Errorf(EINVALID, "chapter %d slug required", ch.Number)
		}
		if seen[ch.Number] {
			return Errorf(EINVALID, "duplicate chapter %d", ch.Number)
		}
		seen[ch.Number] = true
	}
	if len(NewScope(c.Hosts...).hosts) == 0 {
		return Errorf(EINVALID, "at least one allowed host required")
	}
	for name, tpl := range map[string]string{"book_url": c.BookURL, "workbook_url": c.WorkbookURL} {
		if !strings.Contains(tpl, PagePlaceholder) {
			return Errorf(EINVALID, "%s must contain %s", name, PagePlaceholder)
		}
		if !IsHTTP(strings.ReplaceAll(tpl, PagePlaceholder, "page")) {
			return Errorf(EINVALID, "%s must be an absolute http(s) URL", name)
		}
	}
	return nil
}

// Scope returns the allow-list built from the configured hosts.
func (c *Config) Scope() Scope {
	return NewScope(c.Hosts...)
}

func (c *Config) bookURL(stem string) string {
	return strings.ReplaceAll(c.BookURL, PagePlaceholder, stem)
}

func (c *Config) workbookURL(stem string) string {
	return strings.ReplaceAll(c.WorkbookURL, PagePlaceholder, stem)
}

// BookPages returns the book pages: introduction, chapters, appendices.
func (c *Config) BookPages() []Page {
	pages := []Page{{Label: "Introduction", URL: c.bookURL("chapter0"), Path: "book/chapter0.html"}}
	for _, ch := range c.Chapters {
		stem := fmt.Sprintf("chapter%d", ch.Number)
		pages = append(pages, Page{
			Label: fmt.Sprintf("Chapter %d", ch.Number),
			URL:   c.bookURL(stem),
			Path:  "book/" + stem + ".html",
		})
	}
	return append(pages,
		Page{Label: "Appendix A", URL: c.bookURL("appendixa"), Path: "book/appendixa.html"},
		Page{Label: "Appendix B", URL: c.bookURL("appendixb"), Path: "book/appendixb.html"},
	)
}

// WorkbookPages returns the workbook pages: introduction, chapters, answers.
func (c *Config) WorkbookPages() []Page {
	pages := []Page{{Label: "Introduction", URL: c.workbookURL("introduction"), Path: "workbook/introduction.html"}}
	for _, ch := range c.Chapters {
		stem := fmt.Sprintf("chapter%d", ch.Number)
		pages = append(pages, Page{
			Label: fmt.Sprintf("Chapter %d", ch.Number),
			URL:   c.workbookURL(stem),
			Path:  "workbook/" + stem + ".html",
		})
	}
	return append(pages, Page{Label: "Answers", URL: c.workbookURL("answers"), Path: "workbook/answers.html"})
}

// Pages returns every page in fetch order: the book, then the workbook.
func (c *Config) Pages() []Page {
	return append(c.BookPages(), c.WorkbookPages()...)
}

// PageMap indexes pages by normalized remote URL, mapping to local path.
func PageMap(pages []Page) map[string]string {
	m := make(map[string]string, len(pages))
	for _, p := range pages {
		m[Normalize(p.URL)] = p.Path
	}
	return m
}
