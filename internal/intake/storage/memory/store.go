// Package memory provides an in-memory snapshot store for tests and hosts
// without a disk.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/saxionhub/intake/internal/intake/storage"
)

// Store keeps snapshots in memory.
type Store struct {
	mu        sync.Mutex
	snapshots map[string][]byte
}

// New creates a new in-memory snapshot store.
func New() *Store {
	return &Store{snapshots: make(map[string][]byte)}
}

// Save persists a snapshot record under its program slug.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if s == nil {
		return fmt.Errorf("snapshot store is required")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("snapshot key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[key] = append([]byte(nil), data...)
	return nil
}

// Load fetches a snapshot record by program slug.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if s == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("snapshot key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.snapshots[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}
