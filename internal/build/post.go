package build

import (
	"fmt"
	"sitegen/internal/domain/content"
	"sitegen/internal/domain/site"
	"sitegen/internal/ingest"
	"sitegen/internal/render"
)

// BuildPost turns one markdown document into a rendered post. It performs no I/O.
func BuildPost(name, raw string, tpl *render.Template, md render.Converter) (content.Post, error) {
	meta, body := ingest.ParseFrontmatter(raw)
	slug := ingest.ResolveSlug(name)

	htmlBody, err := md.Convert(body)
	if err != nil {
		return content.Post{}, fmt.Errorf("markdown render(%s): %w", slug, err)
	}

	desc := meta.Get("description")
	if desc == "" {
		desc = render.ExtractDescription(body)
	}

	p := content.Post{
		Slug:        slug,
		Meta:        meta,
		Title:       meta.GetOr("title", slug),
		Date:        meta.Get("date"),
		Description: desc,
		URL:         site.PostURL(slug),
		Body:        body,
	}
	p.HTML = tpl.Render(render.Values{
		Title:       p.Title,
		Date:        p.Date,
		Description: p.Description,
		URL:         p.URL,
		Content:     htmlBody,
	})
	return p, nil
}
