package site

import (
	"path"
	"path/filepath"
	"strings"
)

type RouteKind string

const (
	RouteIndex   RouteKind = "index"
	RoutePost    RouteKind = "post"
	RouteSitemap RouteKind = "sitemap"
)

type Route struct {
	Kind    RouteKind
	Slug    string
	URL     string
	OutPath string
}

func (r Route) String() string {
	var parts []string
	parts = append(parts, string(r.Kind))
	if r.Slug != "" {
		parts = append(parts, "slug="+r.Slug)
	}
	if r.URL != "" {
		parts = append(parts, "url="+r.URL)
	}
	if r.OutPath != "" {
		parts = append(parts, "out="+r.OutPath)
	}
	return strings.Join(parts, " ")
}

// PostURL is the canonical site-relative URL of a post.
func PostURL(slug string) string {
	return "/posts/" + slug + "/"
}

// Absolute joins a site base URL such as "https://example.com" with a site-relative path.
func Absolute(siteURL, rel string) string {
	base := strings.TrimSuffix(siteURL, "/")
	if rel == "" {
		rel = "/"
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + path.Clean(rel)
	}
	return base + rel
}

func IndexRoute() Route {
	return Route{Kind: RouteIndex, URL: "/", OutPath: "index.html"}
}

func SitemapRoute() Route {
	return Route{Kind: RouteSitemap, OutPath: "sitemap.xml"}
}

func PostRoute(slug string) Route {
	return Route{
		Kind:    RoutePost,
		Slug:    slug,
		URL:     PostURL(slug),
		OutPath: filepath.Join("posts", slug, "index.html"),
	}
}
