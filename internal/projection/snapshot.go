package projection

import (
	"sync/atomic"
	"time"

	"sensory-map-api/internal/models"
)

// Snapshot is an immutable generation of the report set.
type Snapshot struct {
	Generation uint64
	Reports    []models.RawReport
	LoadedAt   time.Time
}

// SnapshotStore publishes report sets atomically so readers never observe a
// partially refreshed set.
type SnapshotStore struct {
	current atomic.Pointer[Snapshot]
	gen     atomic.Uint64
}

// NewSnapshotStore creates a store holding an empty generation 0.
func NewSnapshotStore() *SnapshotStore {
	s := &SnapshotStore{}
	s.current.Store(&Snapshot{})
	return s
}

// Load returns the current snapshot. Callers must not modify it.
func (s *SnapshotStore) Load() *Snapshot {
	return s.current.Load()
}

// Replace publishes a copy of reports as the next generation and returns it.
func (s *SnapshotStore) Replace(reports []models.RawReport) *Snapshot {
	owned := make([]models.RawReport, len(reports))
	copy(owned, reports)

	snap := &Snapshot{
		Generation: s.gen.Add(1),
		Reports:    owned,
		LoadedAt:   time.Now(),
	}
	s.current.Store(snap)
	return snap
}
