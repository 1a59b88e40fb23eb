package content

import "strings"

// Metadata holds the raw key/value pairs of a post's frontmatter block.
// Values are never coerced; callers read title, date and description by convention.
type Metadata map[string]string

// Get returns the trimmed value for key, or "" when absent.
func (m Metadata) Get(key string) string {
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[key])
}

// GetOr is Get with a fallback used when the value is empty.
func (m Metadata) GetOr(key, fallback string) string {
	if v := m.Get(key); v != "" {
		return v
	}
	return fallback
}

// Document is one raw markdown source read during a build.
type Document struct {
	Name string // file name, e.g. "hello.md"
	Path string
	Raw  string
}

type Post struct {
	Slug        string
	Meta        Metadata
	Title       string
	Date        string
	Description string
	URL         string

	// Body is the markdown body after the frontmatter block.
	Body string
	// HTML is the full rendered page.
	HTML string
}
