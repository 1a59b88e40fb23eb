package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter_NoMarker_ReturnsInputAsBody(t *testing.T) {
	inputs := []string{
		"# Title\n\nHello\n",
		"",
		" ---\ntitle: x\n---\nbody",
		"---\r\ntitle: x\r\n---\r\nbody",
	}
	for _, in := range inputs {
		meta, body := ParseFrontmatter(in)
		assert.Empty(t, meta)
		assert.Equal(t, in, body)
	}
}

func TestParseFrontmatter_WellFormed_SplitsMetadataAndBody(t *testing.T) {
	meta, body := ParseFrontmatter("---\nkey: value\n---\nBody text")

	require.Equal(t, map[string]string{"key": "value"}, map[string]string(meta))
	require.Equal(t, "Body text", body)
}

func TestParseFrontmatter_MissingClosingMarker_RecoversWholeDocument(t *testing.T) {
	in := "---\ntitle: Hi\n\nNo closing marker here\n"

	meta, body := ParseFrontmatter(in)
	assert.Empty(t, meta)
	assert.Equal(t, in, body)
}

func TestParseFrontmatter_LineRules(t *testing.T) {
	in := "---\n" +
		"title:  Spaced Out  \n" +
		"no colon on this line\n" +
		"url: https://example.com/a:b\n" +
		"title: Second\n" +
		"  empty:\n" +
		"---\n" +
		"\n\n  Body first line\nsecond line  \n\n"

	meta, body := ParseFrontmatter(in)

	assert.Equal(t, "Second", meta["title"])
	assert.Equal(t, "https://example.com/a:b", meta["url"])
	v, ok := meta["empty"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Len(t, meta, 3)
	assert.Equal(t, "Body first line\nsecond line", body)
}

func TestParseFrontmatter_EmptyBlock(t *testing.T) {
	meta, body := ParseFrontmatter("---\n---\n# Title\n")

	assert.NotNil(t, meta)
	assert.Empty(t, meta)
	assert.Equal(t, "# Title", body)
}

func TestParseFrontmatter_ClosingMarkerMustMatchExactly(t *testing.T) {
	in := "---\ntitle: x\n--- \n----\nbody"

	meta, body := ParseFrontmatter(in)
	assert.Empty(t, meta)
	assert.Equal(t, in, body)
}

func TestSplitFrontmatter_ReturnsBlockLines(t *testing.T) {
	block, body, had := SplitFrontmatter("---\na: 1\nb: 2\n---\nbody\n")

	require.True(t, had)
	assert.Equal(t, []string{"a: 1", "b: 2"}, block)
	assert.Equal(t, "body", body)
}

func TestResolveSlug(t *testing.T) {
	cases := map[string]string{
		"hello.md":             "hello",
		"posts/hello-world.md": "hello-world",
		"a.b.md":               "a.b",
		"/abs/dir/x.md":        "x",
		"noext":                "noext",
	}
	for in, want := range cases {
		assert.Equal(t, want, ResolveSlug(in), in)
	}
}
