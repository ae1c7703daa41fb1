package outfitstore

import (
	"context"
	"sync"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

// MemoryStore keeps records in process memory. Useful for tests and local dev.
type MemoryStore struct {
	mu     sync.RWMutex
	header []string
	rows   [][]string
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements styling.OutfitStore.
func (s *MemoryStore) Append(_ context.Context, record styling.OutfitRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.header == nil {
		s.header = record.Keys()
	} else if !record.SameLayout(s.header) {
		return schemaMismatch(s.header, record.Keys())
	}
	s.rows = append(s.rows, record.Values())
	return nil
}

// List returns up to limit records, newest first.
func (s *MemoryStore) List(_ context.Context, limit int) ([]styling.OutfitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.header, s.rows, limit), nil
}

var _ styling.OutfitStore = (*MemoryStore)(nil)
