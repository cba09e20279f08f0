package trivia

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/boltdb/bolt"
)

// Store is the question table built once per run. Records are grouped into
// one bucket per category inside a throwaway bolt file; the file is removed
// again on Close. Read-only after construction.
type Store struct {
	db     *bolt.DB
	path   string
	counts map[string]int
}

// NewStore writes the given questions into a fresh bolt file at path.
// An existing file at that path is truncated first.
func NewStore(path string, questions []Question) (*Store, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: store needs at least one question", ErrMalformedRecord)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	// Always start from a clean table.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reset store file: %w", err)
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open question store: %w", err)
	}

	s := &Store{db: db, path: path, counts: make(map[string]int)}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, q := range questions {
			b, err := tx.CreateBucketIfNotExists([]byte(q.Category))
			if err != nil {
				return err
			}
			val, err := json.Marshal(q)
			if err != nil {
				return err
			}
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(s.counts[q.Category]))
			if err := b.Put(key, val); err != nil {
				return err
			}
			s.counts[q.Category]++
		}
		return nil
	})
	if err != nil {
		db.Close()
		os.Remove(path)
		return nil, fmt.Errorf("populate question store: %w", err)
	}
	return s, nil
}

// Categories returns the category names present in the store, sorted.
func (s *Store) Categories() []string {
	cats := make([]string, 0, len(s.counts))
	for c := range s.counts {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Count returns the number of questions stored under a category.
func (s *Store) Count(category string) int {
	return s.counts[category]
}

// Len returns the total number of questions in the store.
func (s *Store) Len() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Question returns the i-th question of a category.
func (s *Store) Question(category string, i int) (Question, error) {
	if i < 0 || i >= s.counts[category] {
		return Question{}, fmt.Errorf("question %d/%d in category %q does not exist", i, s.counts[category], category)
	}

	var q Question
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(category))
		if b == nil {
			return fmt.Errorf("category bucket %q missing", category)
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, uint64(i))
		val := b.Get(key)
		if val == nil {
			return fmt.Errorf("question %d missing from category %q", i, category)
		}
		return json.Unmarshal(val, &q)
	})
	if err != nil {
		return Question{}, err
	}
	return q, nil
}

// Close closes the store and removes its backing file. The table only ever
// lives for one run.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	return os.Remove(s.path)
}
