package build

import (
	"fmt"
	"sitegen/internal/domain/content"
	"sitegen/internal/render"
	"sort"
	"strings"
)

// IndexPage describes the listing page itself.
type IndexPage struct {
	Title       string
	Description string
	URL         string
}

// SortPosts returns a copy of posts ordered by date, newest first.
// Dates compare as plain strings, so only YYYY-MM-DD style values order correctly.
// Posts with equal dates keep their input order.
func SortPosts(posts []content.Post) []content.Post {
	out := make([]content.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func indexList(posts []content.Post, tpl *render.Template) string {
	items := make([]string, 0, len(posts))
	for _, p := range posts {
		items = append(items, fmt.Sprintf(`<li><a href="%s">%s</a> <time>%s</time></li>`,
			tpl.Escape(p.URL), tpl.Escape(p.Title), tpl.Escape(p.Date)))
	}
	return "<ul class=\"post-list\">\n" + strings.Join(items, "\n") + "\n</ul>"
}

// BuildIndex renders the listing page; posts must already be sorted.
func BuildIndex(posts []content.Post, tpl *render.Template, page IndexPage) string {
	return tpl.Render(render.Values{
		Title:       page.Title,
		Date:        "",
		Description: page.Description,
		URL:         page.URL,
		Content:     indexList(posts, tpl),
	})
}
