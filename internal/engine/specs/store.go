package specs

import (
	"sync"
)

// Store is the mutable level map of one character. Each table id is updated
// atomically; concurrent writers to the same id resolve last write wins.
type Store struct {
	schema *Schema

	mu     sync.RWMutex
	levels map[string]int
}

// NewStore creates a store with every known id at level 0
func NewStore(schema *Schema) *Store {
	return &Store{
		schema: schema,
		levels: schema.CreateEmpty(),
	}
}

// Load creates a store from persisted levels, passing them through BulkMerge
func Load(schema *Schema, persisted map[string]float64) *Store {
	return &Store{
		schema: schema,
		levels: schema.BulkMerge(persisted),
	}
}

// SetLevel normalizes value and stores it under id. Unknown ids are ignored
// and reported with false.
func (s *Store) SetLevel(id string, value float64) bool {
	if !s.schema.IsKnown(id) {
		return false
	}

	level := Normalize(value)

	s.mu.Lock()
	s.levels[id] = level
	s.mu.Unlock()

	return true
}

// Level returns the level for id, 0 for unknown ids
func (s *Store) Level(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levels[id]
}

// Replace merges input through BulkMerge and swaps it in
func (s *Store) Replace(input map[string]float64) {
	merged := s.schema.BulkMerge(input)

	s.mu.Lock()
	s.levels = merged
	s.mu.Unlock()
}

// Reset puts every id back to level 0
func (s *Store) Reset() {
	empty := s.schema.CreateEmpty()

	s.mu.Lock()
	s.levels = empty
	s.mu.Unlock()
}

// Snapshot returns a copy of the current levels
func (s *Store) Snapshot() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.levels))
	for id, level := range s.levels {
		out[id] = level
	}
	return out
}
