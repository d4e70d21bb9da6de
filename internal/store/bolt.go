package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var bucketState = []byte("state")

// BoltStore implements domain.KV using BoltDB.
type BoltStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string]string
}

// NewBoltStore opens (creating if needed) the database at path
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, cache: make(map[string]string)}, nil
}

func (s *BoltStore) Get(_ context.Context, key string) (string, bool, error) {
	// Check memory cache first
	s.mu.RLock()
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return v, true, nil
	}
	s.mu.RUnlock()

	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)
		if b == nil {
			return nil
		}
		// Bolt values are only valid inside the transaction; string() copies.
		if v := b.Get([]byte(key)); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("bolt get %q: %w", key, err)
	}
	if !found {
		return "", false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return value, true, nil
}

func (s *BoltStore) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("bolt set %q: %w", key, err)
	}

	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()
	return nil
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
