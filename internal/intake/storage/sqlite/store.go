// Package sqlite provides a SQLite-backed snapshot store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	intakeerrors "github.com/saxionhub/intake/internal/errors"
	"github.com/saxionhub/intake/internal/intake/storage"
	"github.com/saxionhub/intake/internal/intake/storage/sqlite/migrations"
	"github.com/saxionhub/intake/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed snapshot persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a snapshot SQLite store and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, intakeerrors.Wrap(intakeerrors.KindStorageUnavailable, intakeerrors.CodeStorageUnavailable, "open sqlite db", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, intakeerrors.Wrap(intakeerrors.KindStorageUnavailable, intakeerrors.CodeStorageUnavailable, "ping sqlite db", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, intakeerrors.Wrap(intakeerrors.KindStorageUnavailable, intakeerrors.CodeStorageUnavailable, "run migrations", err)
	}
	return store, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save persists a snapshot record under its program slug, replacing any
// previous record for the same slug.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("snapshot key is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO snapshots (program_slug, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(program_slug) DO UPDATE SET
	payload = excluded.payload,
	updated_at = excluded.updated_at
`,
		key,
		data,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return intakeerrors.Wrap(intakeerrors.KindStorageUnavailable, intakeerrors.CodeStorageUnavailable, "save snapshot", err)
	}
	return nil
}

// Load fetches a snapshot record by program slug.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("snapshot key is required")
	}

	var payload []byte
	row := s.sqlDB.QueryRowContext(ctx, "SELECT payload FROM snapshots WHERE program_slug = ?", key)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, intakeerrors.Wrap(intakeerrors.KindStorageUnavailable, intakeerrors.CodeStorageUnavailable, "load snapshot", err)
	}
	return payload, nil
}
