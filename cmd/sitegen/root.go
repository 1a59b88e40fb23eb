package main

import (
	"fmt"
	"log/slog"
	"os"
	"sitegen/internal/domain/config"
	"sitegen/internal/logging"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "site.yaml"

// NewRootCmd creates the root command for sitegen.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitegen",
		Short: "Static blog generator for markdown posts",
		Long: `sitegen converts a directory of markdown posts with frontmatter into
HTML pages, an index listing and a sitemap, using a single HTML template.

Without a config file it reads ./posts, ./public and ./template.html and
writes the site to ./dist.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringP("config", "c", defaultConfigPath, "Configuration file path")
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.String("posts", "", "Directory of markdown posts")
	pf.String("public", "", "Directory of static assets copied into the output")
	pf.String("dist", "", "Output directory (removed and recreated on every build)")
	pf.String("template", "", "HTML page template")
	pf.String("site-url", "", "Absolute site URL used in the sitemap")
	pf.String("index", "", "Post catalog database path")

	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewPostsCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, or the defaults when it does not exist,
// and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"posts", &cfg.Build.PostsDir},
		{"public", &cfg.Build.PublicDir},
		{"dist", &cfg.Build.DistDir},
		{"template", &cfg.Build.TemplatePath},
		{"site-url", &cfg.Site.SiteURL},
		{"index", &cfg.Build.IndexPath},
	}
	changed := false
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		v, err := cmd.Flags().GetString(o.flag)
		if err != nil {
			return cfg, err
		}
		*o.dst = v
		changed = true
	}
	if changed {
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := "info"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logger := logging.New(level)
	slog.SetDefault(logger)
	return logger
}
