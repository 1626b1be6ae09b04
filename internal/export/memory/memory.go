package memory

import (
	"context"
	"fmt"
	"sync"

	"hearth/internal/storage"
)

// Store keeps exported snapshots in memory. Used in tests and when no
// spreadsheet is configured.
type Store struct {
	mu    sync.Mutex
	items []storage.Snapshot
}

func New() *Store {
	return &Store{}
}

// Append stores the snapshot and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, snap storage.Snapshot) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, snap)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// Snapshots returns a copy of everything exported so far.
func (s *Store) Snapshots() []storage.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]storage.Snapshot, len(s.items))
	copy(out, s.items)
	return out
}
