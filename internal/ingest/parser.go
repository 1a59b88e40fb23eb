package ingest

import (
	"path/filepath"
	"sitegen/internal/domain/content"
	"strings"
)

const marker = "---"

// SplitFrontmatter separates the `---` delimited block from the body.
//
// The block must open on the very first line and close on a later line that is
// exactly the marker. Otherwise had is false and body is doc unchanged.
func SplitFrontmatter(doc string) (block []string, body string, had bool) {
	lines := strings.Split(doc, "\n")
	if lines[0] != marker {
		return nil, doc, false
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == marker {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, doc, false
	}

	body = strings.TrimSpace(strings.Join(lines[end+1:], "\n"))
	return lines[1:end], body, true
}

// ParseFrontmatter returns the metadata pairs of doc and its body.
// Lines without a colon are skipped and a repeated key keeps its last value.
func ParseFrontmatter(doc string) (content.Metadata, string) {
	block, body, had := SplitFrontmatter(doc)
	meta := content.Metadata{}
	if !had {
		return meta, body
	}
	for _, line := range block {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return meta, body
}

// ResolveSlug derives the slug from a file name: directory and ".md" dropped.
func ResolveSlug(path string) string {
	return strings.TrimSuffix(filepath.Base(path), markdownExt)
}
