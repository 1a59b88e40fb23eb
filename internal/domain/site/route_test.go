package site

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostRoute(t *testing.T) {
	r := PostRoute("hello")

	assert.Equal(t, RoutePost, r.Kind)
	assert.Equal(t, "/posts/hello/", r.URL)
	assert.Equal(t, filepath.Join("posts", "hello", "index.html"), r.OutPath)
	assert.Equal(t, "post slug=hello url=/posts/hello/ out="+r.OutPath, r.String())
}

func TestFixedRoutes(t *testing.T) {
	assert.Equal(t, "index.html", IndexRoute().OutPath)
	assert.Equal(t, "/", IndexRoute().URL)
	assert.Equal(t, "sitemap.xml", SitemapRoute().OutPath)
	assert.Equal(t, "sitemap out=sitemap.xml", SitemapRoute().String())
}

func TestAbsolute(t *testing.T) {
	cases := []struct {
		base, rel, want string
	}{
		{"https://tomsik.cz", "/posts/a/", "https://tomsik.cz/posts/a/"},
		{"https://tomsik.cz/", "/", "https://tomsik.cz/"},
		{"https://tomsik.cz", "", "https://tomsik.cz/"},
		{"https://example.com/blog", "/posts/a/", "https://example.com/blog/posts/a/"},
		{"https://example.com", "about", "https://example.com/about"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Absolute(tc.base, tc.rel))
	}
}
