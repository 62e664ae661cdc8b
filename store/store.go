// Package store persists solved runs ("tests") so the UI can replay them
// as baselines. Records live in a badger KV database as JSON values; keys
// carry a monotonic sequence so reverse iteration yields most-recent-first
// without a separate index.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/Jvjx01/2D-Aero-Tester/deque"
	"github.com/Jvjx01/2D-Aero-Tester/geometry"
	"github.com/Jvjx01/2D-Aero-Tester/model"
	"github.com/Jvjx01/2D-Aero-Tester/solver"
)

const (
	runPrefix = "run:"
	idxPrefix = "idx:"

	// recentCap bounds the in-memory hot cache fronting List.
	recentCap = 64
)

var ErrNotFound = errors.New("store: test not found")

// TestRecord is one persisted run: the input polygon and parameters plus
// the rounded result, re-enterable into the solver to reproduce equivalent
// output.
type TestRecord struct {
	ID         string               `json:"id"`
	Name       string               `json:"name,omitempty"`
	Seq        uint64               `json:"seq"`
	Points     []geometry.Point     `json:"points"`
	Parameters model.FlowParameters `json:"parameters"`
	Result     solver.Result        `json:"result"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// Summary is the listing row: enough to render a history entry without
// shipping the polygon.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	ShapeType string    `json:"shapeType"`
	Cd        float64   `json:"cd"`
	Cl        float64   `json:"cl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is safe for concurrent use.
type Store struct {
	db  *badger.DB
	seq *badger.Sequence

	mu     sync.Mutex
	recent *deque.Deque[TestRecord]
	warm   bool
}

// Open creates or opens the test database under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.NumVersionsToKeep = 1
	opts.CompactL0OnClose = true
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open test db: %w", err)
	}
	seq, err := db.GetSequence([]byte("tests-seq"), 64)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open test sequence: %w", err)
	}
	return &Store{
		db:     db,
		seq:    seq,
		recent: deque.New[TestRecord](recentCap),
	}, nil
}

func (s *Store) Close() error {
	if err := s.seq.Release(); err != nil {
		log.Errorf("release test sequence: %v", err)
	}
	return s.db.Close()
}

func runKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", runPrefix, seq))
}

// Save assigns identity (uuid, sequence number, creation timestamp) and
// writes the record. The stored record is returned.
func (s *Store) Save(rec TestRecord) (TestRecord, error) {
	seq, err := s.seq.Next()
	if err != nil {
		return rec, fmt.Errorf("next sequence: %w", err)
	}
	rec.ID = uuid.NewString()
	rec.Seq = seq
	rec.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(rec)
	if err != nil {
		return rec, err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(runKey(seq), data); err != nil {
			return err
		}
		return txn.Set([]byte(idxPrefix+rec.ID), runKey(seq))
	})
	if err != nil {
		return rec, fmt.Errorf("save test %s: %w", rec.ID, err)
	}

	s.mu.Lock()
	if s.warm {
		s.recent.AddFirst(rec)
	}
	s.mu.Unlock()
	return rec, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(id string) (*TestRecord, error) {
	var rec TestRecord
	err := s.db.View(func(txn *badger.Txn) error {
		key, err := resolveID(txn, id)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns up to limit records, most recent first. Small listings are
// served from the hot cache once it is warm.
func (s *Store) List(limit int) ([]TestRecord, error) {
	if limit <= 0 {
		limit = recentCap
	}

	s.mu.Lock()
	if s.warm && (limit <= s.recent.Size() || !s.recent.IsFull()) {
		n := min(limit, s.recent.Size())
		out := make([]TestRecord, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, s.recent.Get(i))
		}
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	out, err := s.scan(limit)
	if err != nil {
		return nil, err
	}
	if limit >= recentCap {
		s.warmCache(out)
	}
	return out, nil
}

func (s *Store) scan(limit int) ([]TestRecord, error) {
	var out []TestRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opt := badger.DefaultIteratorOptions
		opt.Reverse = true
		opt.Prefix = []byte(runPrefix)
		it := txn.NewIterator(opt)
		defer it.Close()

		// seek past the last possible run key, then walk backwards
		for it.Seek([]byte(runPrefix + "\xff")); it.Valid() && len(out) < limit; it.Next() {
			var rec TestRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

func (s *Store) warmCache(newestFirst []TestRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent.Clear()
	for i := len(newestFirst) - 1; i >= 0; i-- {
		if i < recentCap {
			s.recent.AddFirst(newestFirst[i])
		}
	}
	s.warm = true
}

// Delete removes the record with the given id. The hot cache is dropped
// and rebuilt on the next full listing.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		key, err := resolveID(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete([]byte(idxPrefix + id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.recent.Clear()
	s.warm = false
	s.mu.Unlock()
	return nil
}

func resolveID(txn *badger.Txn, id string) ([]byte, error) {
	item, err := txn.Get([]byte(idxPrefix + id))
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

// Summarize projects records into listing rows.
func Summarize(recs []TestRecord) []Summary {
	return lo.Map(recs, func(r TestRecord, _ int) Summary {
		return Summary{
			ID:        r.ID,
			Name:      r.Name,
			ShapeType: r.Result.Shape.String(),
			Cd:        r.Result.Cd,
			Cl:        r.Result.Cl,
			CreatedAt: r.CreatedAt,
		}
	})
}
