// Package snapshot serializes application progress for persistence and merges
// restored snapshots back into freshly constructed application shells.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/saxionhub/intake/internal/intake/domain"
)

// Snapshot is the persisted form of an application's mutable progress, one
// record per program slug.
type Snapshot struct {
	Program     string        `json:"program"`
	Steps       domain.Steps  `json:"steps"`
	Status      domain.Status `json:"status"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// Key returns the storage key for a program: its normalized slug.
func Key(program string) string {
	return domain.ProgramSlug(program)
}

// Capture builds the snapshot for an application's current progress.
func Capture(app domain.Application, now func() time.Time) Snapshot {
	if now == nil {
		now = time.Now
	}
	return Snapshot{
		Program:     app.Program,
		Steps:       app.Steps,
		Status:      app.Status(),
		LastUpdated: now().UTC(),
	}
}

// Encode marshals a snapshot for the persistence adapter.
func Encode(snap Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode unmarshals a persisted snapshot.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}

// Hydrate merges a restored snapshot into a fresh application shell. Identity
// fields come from the shell and progress fields from the snapshot, but only
// when the snapshot's program matches the shell's; a mismatched snapshot is
// discarded and the clean shell is returned unchanged. Status is a derived
// projection, so restoring Steps restores it implicitly.
func Hydrate(shell domain.Application, snap Snapshot) domain.Application {
	if snap.Program != shell.Program {
		return shell
	}
	shell.Steps = snap.Steps
	return shell
}
