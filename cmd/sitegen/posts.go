package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sitegen/internal/index"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewPostsCmd creates the posts command.
func NewPostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "List the posts recorded by the last build",
		Args:  cobra.NoArgs,
		RunE:  runPostsCmd,
	}
}

func runPostsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Build.IndexPath == "" {
		return errors.New("post catalog is disabled (build.index_path is empty)")
	}
	if _, err := os.Stat(cfg.Build.IndexPath); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no catalog at %s, run sitegen build first", cfg.Build.IndexPath)
	}

	st, err := index.Open(index.OpenOptions{Path: cfg.Build.IndexPath, ReadOnly: true})
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	entries, err := st.List()
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSLUG\tTITLE")
	for _, e := range entries {
		date := e.Date
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", date, e.Slug, e.Title)
	}
	return w.Flush()
}
