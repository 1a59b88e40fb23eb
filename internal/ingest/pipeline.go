package ingest

import (
	"fmt"
	"os"
	"sitegen/internal/domain/content"
)

// Ingest reads every markdown document in sourceDir in file-name order.
func Ingest(sourceDir string) ([]content.Document, error) {
	files, err := DiscoverSource(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", sourceDir, err)
	}

	docs := make([]content.Document, 0, len(files))
	for _, sf := range files {
		raw, err := os.ReadFile(sf.Path)
		if err != nil {
			return nil, fmt.Errorf("read post source(%s): %w", sf.Path, err)
		}
		docs = append(docs, content.Document{
			Name: sf.Name,
			Path: sf.Path,
			Raw:  string(raw),
		})
	}
	return docs, nil
}
