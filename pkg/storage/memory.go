package storage

import (
	"context"
	"sync"

	"github.com/pudottapommin/pastebin-lite/pkg/pastes"
)

type memoryEntry struct {
	paste   pastes.Paste
	version uint64
}

// MemoryStore is a mutex-guarded map store. It is the default backend and the
// one unit tests run against; the version bump under the write lock gives the
// same linearization the Lua/SQL paths give.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryEntry
}

func NewMemory() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(_ context.Context, p pastes.Paste) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[p.ID]; ok {
		return ErrDuplicateID
	}
	s.records[p.ID] = memoryEntry{paste: normalizeUTC(p), version: 1}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (pastes.Paste, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.records[id]
	if !ok {
		return pastes.Paste{}, 0, ErrRecordNotFound
	}
	return e.paste, e.version, nil
}

func (s *MemoryStore) CompareAndUpdate(_ context.Context, id string, version uint64, p pastes.Paste) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.records[id]
	if !ok {
		return ErrRecordNotFound
	}
	if e.version != version {
		return ErrVersionConflict
	}
	s.records[id] = memoryEntry{paste: normalizeUTC(p), version: version + 1}
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// normalizeUTC pins stored timestamps to UTC so every store hands the engine
// the same canonical zone regardless of what the writer passed in.
func normalizeUTC(p pastes.Paste) pastes.Paste {
	p.CreatedAt = p.CreatedAt.UTC()
	if p.ExpiresAt != nil {
		t := p.ExpiresAt.UTC()
		p.ExpiresAt = &t
	}
	return p
}

var _ Store = (*MemoryStore)(nil)
