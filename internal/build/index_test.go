package build

import (
	"testing"

	"sitegen/internal/domain/content"
	"sitegen/internal/render"

	"github.com/stretchr/testify/assert"
)

func slugs(posts []content.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func TestSortPosts_DescendingByDateString(t *testing.T) {
	in := []content.Post{
		{Slug: "old", Date: "2023-01-01"},
		{Slug: "new", Date: "2024-05-05"},
		{Slug: "mid", Date: "2023-06-01"},
	}

	out := SortPosts(in)

	assert.Equal(t, []string{"new", "mid", "old"}, slugs(out))
	assert.Equal(t, []string{"old", "new", "mid"}, slugs(in), "input must not be reordered")
}

func TestSortPosts_TiesKeepInputOrderAndEmptyDatesLast(t *testing.T) {
	in := []content.Post{
		{Slug: "undated"},
		{Slug: "b", Date: "2024-01-01"},
		{Slug: "a", Date: "2024-01-01"},
		{Slug: "text", Date: "March 2024"},
	}

	out := SortPosts(in)

	// plain string comparison: "M" sorts above "2"
	assert.Equal(t, []string{"text", "b", "a", "undated"}, slugs(out))
}

func TestBuildIndex(t *testing.T) {
	posts := []content.Post{
		{Slug: "b", Title: "Bee", Date: "2024-02-02", URL: "/posts/b/"},
		{Slug: "a", Title: "Ay", Date: "", URL: "/posts/a/"},
	}
	tpl := render.NewTemplate("{{title}}|{{date}}|{{description}}|{{url}}|{{content}}")

	out := BuildIndex(posts, tpl, IndexPage{Title: "Blog", Description: "All posts", URL: "/"})

	assert.Equal(t, "Blog||All posts|/|<ul class=\"post-list\">\n"+
		"<li><a href=\"/posts/b/\">Bee</a> <time>2024-02-02</time></li>\n"+
		"<li><a href=\"/posts/a/\">Ay</a> <time></time></li>\n"+
		"</ul>", out)
}

func TestBuildIndex_Empty(t *testing.T) {
	out := BuildIndex(nil, render.NewTemplate("{{content}}"), IndexPage{Title: "Blog", URL: "/"})
	assert.Equal(t, "<ul class=\"post-list\">\n\n</ul>", out)
}

func TestBuildIndex_EscapesEntriesWhenEnabled(t *testing.T) {
	posts := []content.Post{{Slug: "x", Title: "A & B", URL: "/posts/x/"}}
	tpl := render.NewTemplate("{{content}}").WithEscaping(true)

	out := BuildIndex(posts, tpl, IndexPage{})
	assert.Contains(t, out, `<a href="/posts/x/">A &amp; B</a>`)
}
