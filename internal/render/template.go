package render

import (
	"fmt"
	"html"
	"os"
	"strings"
)

const (
	PlaceholderTitle       = "{{title}}"
	PlaceholderDate        = "{{date}}"
	PlaceholderDescription = "{{description}}"
	PlaceholderURL         = "{{url}}"
	PlaceholderContent     = "{{content}}"
)

// Values fills the placeholders of a page template.
type Values struct {
	Title       string
	Date        string
	Description string
	URL         string
	Content     string
}

// Template is a page layout with {{name}} placeholders. It is immutable once loaded.
type Template struct {
	src    string
	escape bool
}

func NewTemplate(src string) *Template {
	return &Template{src: src}
}

// LoadTemplate reads the template file at path.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return NewTemplate(string(data)), nil
}

// WithEscaping returns a copy that HTML-escapes every value except Content.
func (t *Template) WithEscaping(on bool) *Template {
	return &Template{src: t.src, escape: on}
}

func (t *Template) Source() string {
	return t.src
}

// Escape applies the template's escaping mode to a single value.
func (t *Template) Escape(s string) string {
	if t.escape {
		return html.EscapeString(s)
	}
	return s
}

// Render substitutes every placeholder occurrence in one pass; substituted
// values are not scanned again and unknown placeholders are left as is.
func (t *Template) Render(v Values) string {
	esc := t.Escape
	r := strings.NewReplacer(
		PlaceholderTitle, esc(v.Title),
		PlaceholderDate, esc(v.Date),
		PlaceholderDescription, esc(v.Description),
		PlaceholderURL, esc(v.URL),
		PlaceholderContent, v.Content,
	)
	return r.Replace(t.src)
}
