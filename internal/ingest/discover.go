package ingest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const markdownExt = ".md"

type SourceFile struct {
	Name string
	Path string
}

// DiscoverSource lists the markdown files directly inside root, sorted by name.
// A missing root yields no files and no error.
func DiscoverSource(root string) ([]SourceFile, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var out []SourceFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), markdownExt) {
			continue
		}
		out = append(out, SourceFile{
			Name: e.Name(),
			Path: filepath.Join(root, e.Name()),
		})
	}
	return out, nil
}
