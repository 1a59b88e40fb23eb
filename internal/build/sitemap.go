package build

import (
	"html"
	"sitegen/internal/domain/content"
	"sitegen/internal/domain/site"
	"strings"
)

const (
	rootChangefreq = "weekly"
	rootPriority   = "1.0"
	postChangefreq = "monthly"
	postPriority   = "0.8"
)

// BuildSitemap formats a sitemap with the site root followed by posts in the given order.
func BuildSitemap(siteURL string, posts []content.Post) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	writeURL(&b, site.Absolute(siteURL, "/"), "", rootChangefreq, rootPriority)
	for _, p := range posts {
		writeURL(&b, site.Absolute(siteURL, p.URL), p.Date, postChangefreq, postPriority)
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

func writeURL(b *strings.Builder, loc, lastmod, changefreq, priority string) {
	b.WriteString("  <url>\n")
	b.WriteString("    <loc>" + html.EscapeString(loc) + "</loc>\n")
	if lastmod != "" {
		b.WriteString("    <lastmod>" + html.EscapeString(lastmod) + "</lastmod>\n")
	}
	b.WriteString("    <changefreq>" + changefreq + "</changefreq>\n")
	b.WriteString("    <priority>" + priority + "</priority>\n")
	b.WriteString("  </url>\n")
}
