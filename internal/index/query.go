package index

import (
	"encoding/json"
	"errors"
	bolt "go.etcd.io/bbolt"
	"strings"
)

var ErrNotFound = errors.New("not found")

func (s *Store) Get(slug string) (Entry, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Entry{}, ErrNotFound
	}
	var e Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bEntries)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(slug))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &e)
	})
	return e, err
}

// List returns every entry, newest date first, ties by slug.
func (s *Store) List() ([]Entry, error) {
	var out []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(bIdxDate)
		entriesB := tx.Bucket(bEntries)
		if idx == nil || entriesB == nil {
			return nil
		}

		cur := idx.Cursor()
		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			slug := slugFromDateSlugKey(k)
			if slug == "" {
				continue
			}
			v := entriesB.Get([]byte(slug))
			if v == nil {
				continue
			}
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				continue
			}
			out = append(out, e)
		}
		return nil
	})
	return out, err
}

func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bEntries)
		if b == nil {
			return nil
		}
		n = b.Stats().KeyN
		return nil
	})
	return n, err
}
