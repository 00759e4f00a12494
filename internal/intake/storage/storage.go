// Package storage defines the persistence boundary for application progress
// snapshots.
//
// The engine treats the store as a plain key-value byte adapter: one record
// per program slug. Writes are fire-and-forget after every mutation; a failed
// write leaves the in-memory state authoritative for the rest of the session.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested snapshot is missing.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore persists serialized application progress keyed per program
// slug.
type SnapshotStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}
