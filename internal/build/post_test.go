package build

import (
	"errors"
	"testing"

	"sitegen/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `<title>{{title}}</title><time>{{date}}</time>` +
	`<meta name="description" content="{{description}}"><link rel="canonical" href="{{url}}">{{content}}`

var wrapConverter = render.ConverterFunc(func(src string) (string, error) {
	return "<p>" + src + "</p>", nil
})

func TestBuildPost_UsesFrontmatter(t *testing.T) {
	raw := "---\ntitle: Hi\ndate: 2024-01-01\n---\nHello *world*"

	p, err := BuildPost("a.md", raw, render.NewTemplate(testTemplate), wrapConverter)
	require.NoError(t, err)

	assert.Equal(t, "a", p.Slug)
	assert.Equal(t, "/posts/a/", p.URL)
	assert.Equal(t, "Hi", p.Title)
	assert.Equal(t, "2024-01-01", p.Date)
	assert.Equal(t, "Hello world", p.Description)
	assert.Equal(t, "Hello *world*", p.Body)
	assert.Equal(t, "Hi", p.Meta["title"])
	assert.Equal(t, `<title>Hi</title><time>2024-01-01</time>`+
		`<meta name="description" content="Hello world"><link rel="canonical" href="/posts/a/"><p>Hello *world*</p>`, p.HTML)
}

func TestBuildPost_Fallbacks(t *testing.T) {
	p, err := BuildPost("posts/no-meta.md", "Just a body.\n\nMore.", render.NewTemplate(testTemplate), wrapConverter)
	require.NoError(t, err)

	assert.Equal(t, "no-meta", p.Slug)
	assert.Equal(t, "no-meta", p.Title)
	assert.Equal(t, "", p.Date)
	assert.Equal(t, "Just a body.", p.Description)
	assert.Contains(t, p.HTML, "<time></time>")
}

func TestBuildPost_EmptyTitleFallsBackToSlug(t *testing.T) {
	p, err := BuildPost("x.md", "---\ntitle:\n---\nbody", render.NewTemplate("{{title}}"), wrapConverter)
	require.NoError(t, err)
	assert.Equal(t, "x", p.HTML)
}

func TestBuildPost_ExplicitDescriptionWins(t *testing.T) {
	raw := "---\ndescription: Written by hand\n---\n**Generated** text"

	p, err := BuildPost("d.md", raw, render.NewTemplate("{{description}}"), wrapConverter)
	require.NoError(t, err)
	assert.Equal(t, "Written by hand", p.HTML)
}

func TestBuildPost_ConverterError(t *testing.T) {
	boom := errors.New("boom")
	failing := render.ConverterFunc(func(string) (string, error) { return "", boom })

	_, err := BuildPost("a.md", "body", render.NewTemplate("{{content}}"), failing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestBuildPost_WithGoldmark(t *testing.T) {
	p, err := BuildPost("g.md", "---\ntitle: G\n---\n# Heading\n\ntext", render.NewTemplate("{{content}}"), render.NewMarkdownConverter())
	require.NoError(t, err)
	assert.Contains(t, p.HTML, `<h1 id="heading">Heading</h1>`)
	assert.Contains(t, p.HTML, "<p>text</p>")
}
