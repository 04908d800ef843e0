package store

import (
	"sync"

	"gridgazer/internal/domain"
)

// MemoryEntryStore is an in-memory implementation of EntryStore.
// Entries keep the order they were added in.
type MemoryEntryStore struct {
	mu      sync.RWMutex
	entries []domain.Entry
	index   map[string]int
}

// NewMemoryEntryStore creates a new memory-based entry store
func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{
		index: make(map[string]int),
	}
}

// Add appends an entry; an entry whose key is already stored is ignored
func (s *MemoryEntryStore) Add(entry domain.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[entry.Key]; ok {
		return false
	}
	s.index[entry.Key] = len(s.entries)
	s.entries = append(s.entries, entry)
	return true
}

func (s *MemoryEntryStore) At(index int) (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.entries) {
		return domain.Entry{}, false
	}
	return s.entries[index], true
}

func (s *MemoryEntryStore) Get(key string) (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[key]
	if !ok {
		return domain.Entry{}, false
	}
	return s.entries[i], true
}

func (s *MemoryEntryStore) IndexOf(key string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[key]
	return i, ok
}

func (s *MemoryEntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryEntryStore) All() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

func (s *MemoryEntryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.index = make(map[string]int)
}
