package index

import (
	"errors"
	"fmt"
	bolt "go.etcd.io/bbolt"
	"os"
	"path/filepath"
	"time"
)

// Store is the post catalog recorded by the last successful build.
type Store struct {
	db   *bolt.DB
	path string
}

type OpenOptions struct {
	Path     string // e.g. ".sitegen/index.db"
	ReadOnly bool
}

// Open opens or creates the catalog file. Read-only stores never create
// the parent directory and share the file lock with other readers.
func Open(opt OpenOptions) (*Store, error) {
	if opt.Path == "" {
		return nil, errors.New("index: missing path")
	}
	if !opt.ReadOnly {
		if err := os.MkdirAll(filepath.Dir(opt.Path), 0o755); err != nil {
			return nil, fmt.Errorf("index: mkdir: %w", err)
		}
	}
	db, err := bolt.Open(opt.Path, 0o600, &bolt.Options{
		Timeout:  time.Second,
		ReadOnly: opt.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("index: open %s: %w", opt.Path, err)
	}
	return &Store{db: db, path: opt.Path}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
