// Package store persists committed export orders per drawing layer in a
// bbolt database, so a later run can start from the last optimized order.
//
// Each record is keyed by layer name and stamped with a fingerprint of the
// layer's geometry; a stored order whose fingerprint no longer matches the
// layer is treated as a miss.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvroute/shape"
	"github.com/mitchellh/hashstructure/v2"
	bbolt "go.etcd.io/bbolt"
)

var (
	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = errors.New("store: closed")

	// ErrEmptyLayer is returned when a layer name is empty.
	ErrEmptyLayer = errors.New("store: empty layer name")
)

var bucketOrders = []byte("orders")

// record is the JSON value stored per layer.
type record struct {
	Fingerprint uint64 `json:"fingerprint"`
	Order       []int  `json:"order"`
}

// Store is a bbolt-backed order store. It is safe for concurrent use to the
// extent bbolt is (many readers, one writer).
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return nil, fmt.Errorf("store: mkdir: %w", err)
	}
	db, err := bbolt.Open(path, 0o660, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketOrders)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Save writes order for layer under fingerprint, replacing any previous record.
func (s *Store) Save(layer string, fingerprint uint64, order []int) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	if layer == "" {
		return ErrEmptyLayer
	}
	v, err := json.Marshal(record{Fingerprint: fingerprint, Order: order})
	if err != nil {
		return fmt.Errorf("store: json marshal: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketOrders).Put([]byte(layer), v); err != nil {
			return fmt.Errorf("store: bbolt put: %w", err)
		}
		return nil
	})
}

// Load returns the stored order for layer when its fingerprint matches.
// A missing record or a fingerprint mismatch returns ok=false and no error.
func (s *Store) Load(layer string, fingerprint uint64) (order []int, ok bool, err error) {
	if s == nil || s.db == nil {
		return nil, false, ErrClosed
	}
	if layer == "" {
		return nil, false, ErrEmptyLayer
	}

	var rec record
	err = s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketOrders).Get([]byte(layer))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("store: json decode %q: %w", layer, err)
		}
		ok = rec.Fingerprint == fingerprint
		return nil
	})
	if err != nil || !ok {
		return nil, false, err
	}

	return rec.Order, true, nil
}

// Layers lists the layer names that have a stored order.
func (s *Store) Layers() ([]string, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	var out []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOrders).ForEach(func(k, _ []byte) error {
			out = append(out, string(k))
			return nil
		})
	})

	return out, err
}

// fingerprintShape is the hashed view of a shape: only what changes the
// routing problem (endpoints, pin flag, identity) is included.
type fingerprintShape struct {
	ID       string
	Entry    [2]float64
	Exit     [2]float64
	Optimize bool
}

// Fingerprint hashes the routing-relevant content of layer in input order.
func Fingerprint(layer shape.Layer) (uint64, error) {
	view := make([]fingerprintShape, len(layer.Shapes))
	for i, s := range layer.Shapes {
		view[i] = fingerprintShape{ID: s.ID, Entry: s.Entry, Exit: s.Exit, Optimize: s.Optimize}
	}
	h, err := hashstructure.Hash(struct {
		Name   string
		Shapes []fingerprintShape
	}{layer.Name, view}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("store: fingerprint: %w", err)
	}

	return h, nil
}
