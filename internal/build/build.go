package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sitegen/internal/domain/config"
	"sitegen/internal/domain/content"
	domainbuild "sitegen/internal/domain/build"
	domainerr "sitegen/internal/domain/errors"
	"sitegen/internal/domain/site"
	"sitegen/internal/index"
	"sitegen/internal/ingest"
	"sitegen/internal/metrics"
	"sitegen/internal/render"
	"strings"
	"time"
)

type Builder struct {
	Cfg     config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// Converter defaults to the goldmark converter.
	Converter render.Converter
}

type Result struct {
	// Posts in index order, newest first.
	Posts  []content.Post
	Routes []site.Route
	// Diff is nil when the catalog is disabled or could not be updated.
	Diff *index.Diff
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res, err := b.run(ctx)
	posts := 0
	if res != nil {
		posts = len(res.Posts)
	}
	b.Metrics.ObserveBuild(time.Since(start), posts, err)
	return res, err
}

func (b *Builder) run(ctx context.Context) (*Result, error) {
	log := b.logger()
	cfg := b.Cfg.Build
	outDir := cfg.DistDir

	if err := prepareOutput(outDir); err != nil {
		return nil, err
	}

	if err := copyStaticAssets(cfg.PublicDir, outDir); err != nil {
		return nil, fmt.Errorf("copy static assets: %w", err)
	}

	tpl, err := render.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainerr.ErrTemplateMissing, err)
	}
	tpl = tpl.WithEscaping(cfg.EscapeValues)

	md := b.Converter
	if md == nil {
		md = render.NewMarkdownConverter()
	}

	docs, err := ingest.Ingest(cfg.PostsDir)
	if err != nil {
		return nil, fmt.Errorf("ingest failed: %w", err)
	}

	posts := make([]content.Post, 0, len(docs))
	entries := make([]index.Entry, 0, len(docs))
	routes := make([]site.Route, 0, len(docs)+2)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := BuildPost(doc.Name, doc.Raw, tpl, md)
		if err != nil {
			return nil, fmt.Errorf("build posts: %w", err)
		}

		route := site.PostRoute(p.Slug)
		if err := writeFile(outDir, route.OutPath, []byte(p.HTML)); err != nil {
			return nil, fmt.Errorf("write post(%s): %w", p.Slug, err)
		}
		log.Info("built post", "slug", p.Slug, "out", route.OutPath)

		posts = append(posts, p)
		routes = append(routes, route)
		entries = append(entries, b.catalogEntry(doc, p, tpl))
	}

	sorted := SortPosts(posts)

	indexRoute := site.IndexRoute()
	indexHTML := BuildIndex(sorted, tpl, IndexPage{
		Title:       b.Cfg.Site.Title,
		Description: b.Cfg.Site.Description,
		URL:         indexRoute.URL,
	})
	if err := writeFile(outDir, indexRoute.OutPath, []byte(indexHTML)); err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	log.Info("built index", "posts", len(sorted))

	sitemapRoute := site.SitemapRoute()
	if err := writeFile(outDir, sitemapRoute.OutPath, []byte(BuildSitemap(b.Cfg.Site.SiteURL, sorted))); err != nil {
		return nil, fmt.Errorf("build sitemap: %w", err)
	}

	res := &Result{
		Posts:  sorted,
		Routes: append([]site.Route{indexRoute}, append(routes, sitemapRoute)...),
	}

	if cfg.IndexPath != "" {
		diff, err := b.updateCatalog(entries)
		if err != nil {
			// output is already complete, the catalog is informational
			log.Warn("catalog update failed", "path", cfg.IndexPath, "error", err)
		} else {
			res.Diff = &diff
			log.Info("catalog updated",
				"added", len(diff.Added),
				"changed", len(diff.Changed),
				"removed", len(diff.Removed),
				"unchanged", len(diff.Unchanged),
			)
		}
	}
	return res, nil
}

func (b *Builder) catalogEntry(doc content.Document, p content.Post, tpl *render.Template) index.Entry {
	block, body, _ := ingest.SplitFrontmatter(doc.Raw)

	var fp domainbuild.Fingerprint
	fp.ComputeContentHash(strings.Join(block, "\n"), body)
	fp.TemplateHash = domainbuild.HashString(tpl.Source())
	fp.ConfigHash = domainbuild.HashString(fmt.Sprintf("escape_values=%t", b.Cfg.Build.EscapeValues))
	fp.ComputeRenderHash()

	return index.Entry{
		Slug:        p.Slug,
		Title:       p.Title,
		Date:        p.Date,
		URL:         p.URL,
		Description: p.Description,
		ContentHash: fp.ContentHash,
		RenderHash:  fp.RenderHash,
	}
}

func (b *Builder) updateCatalog(entries []index.Entry) (index.Diff, error) {
	st, err := index.Open(index.OpenOptions{Path: b.Cfg.Build.IndexPath})
	if err != nil {
		return index.Diff{}, fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	diff, err := st.Rebuild(entries)
	if err != nil {
		return index.Diff{}, fmt.Errorf("failed to rebuild index: %w", err)
	}
	return diff, nil
}

// prepareOutput wipes outDir and recreates it with an empty posts directory.
func prepareOutput(outDir string) error {
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("clean %s: %w", outDir, err)
	}
	if err := os.MkdirAll(filepath.Join(outDir, "posts"), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", outDir, err)
	}
	return nil
}

func writeFile(root, rel string, data []byte) error {
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

// copyStaticAssets mirrors src into outDir. A missing src is not an error.
func copyStaticAssets(src, outDir string) error {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return nil
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, rel)

		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return copySymlink(path, dst)
		}

		in, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		return os.WriteFile(dst, in, fi.Mode().Perm())
	})
}

// copySymlink recreates the link at dst with the same target, so links to
// directories are copied without following them.
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	return os.Symlink(target, dst)
}
