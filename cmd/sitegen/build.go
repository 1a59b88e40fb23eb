package main

import (
	"sitegen/internal/build"

	"github.com/spf13/cobra"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the site once",
		Long: `Build removes the output directory, copies static assets, renders every
markdown post through the template and writes index.html and sitemap.xml.`,
		Args: cobra.NoArgs,
		RunE: runBuildCmd,
	}
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	b := &build.Builder{Cfg: cfg, Logger: logger}
	res, err := b.Run(cmdContext(cmd))
	if err != nil {
		return err
	}
	logger.Info("build finished", "posts", len(res.Posts), "dist", cfg.Build.DistDir)
	return nil
}
