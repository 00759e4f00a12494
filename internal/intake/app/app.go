// Package app assembles an intake stack from configuration: it opens the
// configured snapshot backend and mounts application stores with the
// configured review delay.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/saxionhub/intake/internal/intake/domain"
	"github.com/saxionhub/intake/internal/intake/service"
	"github.com/saxionhub/intake/internal/intake/storage"
	boltstore "github.com/saxionhub/intake/internal/intake/storage/bbolt"
	memorystore "github.com/saxionhub/intake/internal/intake/storage/memory"
	sqlitestore "github.com/saxionhub/intake/internal/intake/storage/sqlite"
	"github.com/saxionhub/intake/internal/platform/config"
)

// Snapshot backends selectable through INTAKE_SNAPSHOT_BACKEND.
const (
	BackendBolt   = "bbolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// OpenSnapshotStore opens the snapshot backend named by the configuration.
// The returned close func releases the backend; for the memory backend it is
// a no-op.
func OpenSnapshotStore(cfg config.Config) (storage.SnapshotStore, func() error, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.SnapshotBackend))
	switch backend {
	case "", BackendBolt:
		store, err := boltstore.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bbolt snapshot store: %w", err)
		}
		return store, store.Close, nil
	case BackendSQLite:
		store, err := sqlitestore.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite snapshot store: %w", err)
		}
		return store, store.Close, nil
	case BackendMemory:
		return memorystore.New(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
}

// Sweep archives every unarchived application older than the configured
// retention window, measured from now. Returns the updated applications and
// how many were newly flagged; re-running with the same inputs is a no-op.
func Sweep(apps []domain.Application, cfg config.Config, now time.Time) ([]domain.Application, int) {
	cutoff := domain.RetentionCutoff(now, cfg.RetentionWindow)
	return domain.ArchiveExpired(apps, cutoff)
}

// Mount builds the state store for an application shell, applying the
// configured review delay and snapshot backend.
func Mount(ctx context.Context, shell domain.Application, cfg config.Config, snapshots storage.SnapshotStore) *service.Store {
	return service.Mount(ctx, shell, service.Options{
		Snapshots:   snapshots,
		ReviewDelay: cfg.ReviewDelay,
	})
}
