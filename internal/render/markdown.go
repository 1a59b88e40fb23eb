package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

type MarkdownConverter struct {
	md goldmark.Markdown
}

func NewMarkdownConverter() *MarkdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// posts are author-controlled, raw HTML passes through
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &MarkdownConverter{md: md}
}

func (c *MarkdownConverter) Convert(src string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
