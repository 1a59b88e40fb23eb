package render

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageTemplate = `<title>{{title}}</title><time>{{date}}</time>` +
	`<meta content="{{description}}"><a href="{{url}}">{{title}}</a><main>{{content}}</main>`

func TestTemplateRender_ReplacesEveryPlaceholder(t *testing.T) {
	tpl := NewTemplate(pageTemplate)

	out := tpl.Render(Values{
		Title:       "Hi",
		Date:        "2024-01-01",
		Description: "desc",
		URL:         "/posts/a/",
		Content:     "<p>body</p>",
	})

	assert.NotContains(t, out, "{{")
	assert.Equal(t, `<title>Hi</title><time>2024-01-01</time>`+
		`<meta content="desc"><a href="/posts/a/">Hi</a><main><p>body</p></main>`, out)
}

func TestTemplateRender_LeavesUnknownPlaceholders(t *testing.T) {
	tpl := NewTemplate("{{author}} {{ title }} {{title}}")

	assert.Equal(t, "{{author}} {{ title }} T", tpl.Render(Values{Title: "T"}))
}

func TestTemplateRender_DoesNotRescanValues(t *testing.T) {
	tpl := NewTemplate("{{title}}|{{date}}")

	out := tpl.Render(Values{Title: "{{date}}", Date: "d"})
	assert.Equal(t, "{{date}}|d", out)
}

func TestTemplateRender_NoEscapingByDefault(t *testing.T) {
	tpl := NewTemplate("{{title}}")

	assert.Equal(t, "<b>&</b>", tpl.Render(Values{Title: "<b>&</b>"}))
}

func TestTemplateRender_EscapingSkipsContent(t *testing.T) {
	tpl := NewTemplate("{{title}}|{{content}}").WithEscaping(true)

	out := tpl.Render(Values{Title: `<b>"x"</b>`, Content: "<p>ok</p>"})
	assert.Equal(t, "&lt;b&gt;&#34;x&#34;&lt;/b&gt;|<p>ok</p>", out)
	assert.Equal(t, "{{title}}|{{content}}", tpl.Source())
}

func TestLoadTemplate_MissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "template.html"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, strings.Contains(err.Error(), "read template"))
}
