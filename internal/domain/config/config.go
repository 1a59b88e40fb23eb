package config

import (
	"gopkg.in/yaml.v3"
	"net/url"
	"os"
	"path/filepath"
	domainerr "sitegen/internal/domain/errors"
	"strings"
	"time"
)

type Config struct {
	Site  SiteConfig  `yaml:"site"`
	Build BuildConfig `yaml:"build"`
	Serve ServeConfig `yaml:"serve"`
}

type SiteConfig struct {
	SiteURL     string `yaml:"site_url"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type BuildConfig struct {
	PostsDir     string `yaml:"posts_dir"`
	PublicDir    string `yaml:"public_dir"`
	DistDir      string `yaml:"dist_dir"`
	TemplatePath string `yaml:"template_path"`
	// IndexPath is the bbolt catalog file; empty disables the catalog.
	IndexPath    string `yaml:"index_path"`
	EscapeValues bool   `yaml:"escape_values"`
}

type ServeConfig struct {
	Addr     string        `yaml:"addr"`
	Debounce time.Duration `yaml:"debounce"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			SiteURL: "https://tomsik.cz",
			Title:   "Blog",
		},
		Build: BuildConfig{
			PostsDir:     "posts",
			PublicDir:    "public",
			DistDir:      "dist",
			TemplatePath: "template.html",
			IndexPath:    ".sitegen/index.db",
		},
		Serve: ServeConfig{
			Addr:     ":8080",
			Debounce: 200 * time.Millisecond,
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.SiteURL) == "" {
		ve.Add("site.site_url", "must not be empty")
	} else if !isValidAbsURL(c.Site.SiteURL) {
		ve.Add("site.site_url", "must be a valid absolute URL")
	} else if strings.HasSuffix(c.Site.SiteURL, "/") {
		ve.Add("site.site_url", "must not end with '/'")
	}

	if strings.TrimSpace(c.Build.PostsDir) == "" {
		ve.Add("build.posts_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.PublicDir) == "" {
		ve.Add("build.public_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.DistDir) == "" {
		ve.Add("build.dist_dir", "must not be empty")
	} else if msg := c.checkDistDir(); msg != "" {
		ve.Add("build.dist_dir", msg)
	}
	if strings.TrimSpace(c.Build.TemplatePath) == "" {
		ve.Add("build.template_path", "must not be empty")
	}

	if c.Serve.Debounce < 0 {
		ve.Add("serve.debounce", "must not be negative")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

// checkDistDir guards the directory a build removes wholesale. It must not
// be, or contain, the working directory, the filesystem root or any input.
func (c Config) checkDistDir() string {
	dist, err := filepath.Abs(strings.TrimSpace(c.Build.DistDir))
	if err != nil {
		return "cannot be resolved: " + err.Error()
	}
	if filepath.Dir(dist) == dist {
		return "must not be the filesystem root"
	}
	if cwd, err := os.Getwd(); err == nil && isWithin(cwd, dist) {
		return "must not be or contain the working directory"
	}

	inputs := []struct {
		name, path string
	}{
		{"build.posts_dir", c.Build.PostsDir},
		{"build.public_dir", c.Build.PublicDir},
		{"the template directory", filepath.Dir(c.Build.TemplatePath)},
	}
	for _, in := range inputs {
		if strings.TrimSpace(in.path) == "" {
			continue
		}
		p, err := filepath.Abs(strings.TrimSpace(in.path))
		if err != nil {
			continue
		}
		if isWithin(p, dist) {
			return "must not be or contain " + in.name
		}
	}
	return ""
}

// isWithin reports whether path equals dir or lies below it. Both must be absolute.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// fields present in the file override defaults, the rest keep Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil && os.IsNotExist(err) {
		cfg = Default()
		return cfg, cfg.Validate()
	}
	return cfg, err
}
