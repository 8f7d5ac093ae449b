package cache

import (
	"context"
	"sync"
	"time"
)

// Snapshot is a cached payload and the moment it was computed.
type Snapshot struct {
	Payload     []byte
	RefreshedAt time.Time
}

// SnapshotStore persists one snapshot per key. Freshness is decided by the
// caller, stores only keep the latest value.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (Snapshot, bool, error)
	Save(ctx context.Context, key string, snapshot Snapshot) error
}

type MemorySnapshotStore struct {
	mu    sync.RWMutex
	items map[string]Snapshot
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{items: make(map[string]Snapshot)}
}

func (s *MemorySnapshotStore) Load(_ context.Context, key string) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok {
		return Snapshot{}, false, nil
	}
	item.Payload = append([]byte(nil), item.Payload...)
	return item, true, nil
}

func (s *MemorySnapshotStore) Save(_ context.Context, key string, snapshot Snapshot) error {
	snapshot.Payload = append([]byte(nil), snapshot.Payload...)

	s.mu.Lock()
	s.items[key] = snapshot
	s.mu.Unlock()
	return nil
}
