package index

import (
	"encoding/json"
	bolt "go.etcd.io/bbolt"
	"sort"
	"strings"
)

// Rebuild replaces the whole catalog with entries and reports what changed.
// A repeated slug keeps its last entry.
func (s *Store) Rebuild(entries []Entry) (Diff, error) {
	var diff Diff
	err := s.db.Update(func(tx *bolt.Tx) error {
		prev := make(map[string]string)
		if old := tx.Bucket(bEntries); old != nil {
			err := old.ForEach(func(k, v []byte) error {
				var e Entry
				if err := json.Unmarshal(v, &e); err != nil {
					// unreadable entries count as changed
					prev[string(k)] = ""
					return nil
				}
				prev[string(k)] = e.RenderHash
				return nil
			})
			if err != nil {
				return err
			}
		}

		_ = tx.DeleteBucket(bEntries)
		_ = tx.DeleteBucket(bIdxDate)

		entriesB, err := tx.CreateBucket(bEntries)
		if err != nil {
			return err
		}
		idxDateB, err := tx.CreateBucket(bIdxDate)
		if err != nil {
			return err
		}

		current := make(map[string]Entry, len(entries))
		for _, e := range entries {
			if strings.TrimSpace(e.Slug) == "" {
				continue
			}
			if old, ok := current[e.Slug]; ok {
				if err := idxDateB.Delete(makeDateSlugKey(old.Date, old.Slug)); err != nil {
					return err
				}
			}
			current[e.Slug] = e

			eb, err := json.Marshal(e)
			if err != nil {
				return err
			}
			if err := entriesB.Put([]byte(e.Slug), eb); err != nil {
				return err
			}
			if err := idxDateB.Put(makeDateSlugKey(e.Date, e.Slug), []byte(e.Slug)); err != nil {
				return err
			}
		}

		for slug, e := range current {
			oldHash, ok := prev[slug]
			switch {
			case !ok:
				diff.Added = append(diff.Added, slug)
			case oldHash != e.RenderHash:
				diff.Changed = append(diff.Changed, slug)
			default:
				diff.Unchanged = append(diff.Unchanged, slug)
			}
		}
		for slug := range prev {
			if _, ok := current[slug]; !ok {
				diff.Removed = append(diff.Removed, slug)
			}
		}
		return nil
	})
	if err != nil {
		return Diff{}, err
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Changed)
	sort.Strings(diff.Removed)
	sort.Strings(diff.Unchanged)
	return diff, nil
}
