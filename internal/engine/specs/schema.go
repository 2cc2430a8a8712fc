// Package specs keeps a character's Destiny Board levels: one clamped
// integer level per canonical table id, with a migration path for maps saved
// under older naming schemes.
package specs

import (
	"math"
	"sort"

	"github.com/KirkDiggler/destiny-api/internal/engine/taxonomy"
)

// Level bounds and the number of character profiles per owner
const (
	MinLevel = 0
	MaxLevel = 120
	MaxSlots = 3
)

// Normalize clamps value into [MinLevel, MaxLevel] and rounds it to the
// nearest integer, halves away from zero. NaN becomes MinLevel.
func Normalize(value float64) int {
	if math.IsNaN(value) {
		return MinLevel
	}
	if value <= MinLevel {
		return MinLevel
	}
	if value >= MaxLevel {
		return MaxLevel
	}
	return int(math.Round(value))
}

// Schema knows the full canonical key set. It carries no player state.
type Schema struct {
	resolver *taxonomy.Resolver
}

// NewSchema creates a schema over the resolver's canonical ids
func NewSchema(resolver *taxonomy.Resolver) *Schema {
	return &Schema{resolver: resolver}
}

// Resolver returns the underlying id resolver
func (s *Schema) Resolver() *taxonomy.Resolver {
	return s.resolver
}

// CreateEmpty returns a map with every canonical id at level 0
func (s *Schema) CreateEmpty() map[string]int {
	ids := s.resolver.OrderedIDs()
	out := make(map[string]int, len(ids))
	for _, id := range ids {
		out[id] = MinLevel
	}
	return out
}

// IsKnown reports whether id is a canonical table id
func (s *Schema) IsKnown(id string) bool {
	return s.resolver.IsCanonical(id)
}

// BulkMerge rebases a possibly stale map onto a fresh empty map. Canonical
// keys copy through, human-readable names are translated to their canonical
// id and anything else is dropped. Values are normalized. When a canonical
// key and a legacy name address the same id the canonical key wins.
func (s *Schema) BulkMerge(input map[string]float64) map[string]int {
	out := s.CreateEmpty()

	var canonical, legacy []string
	for key := range input {
		if s.resolver.IsCanonical(key) {
			canonical = append(canonical, key)
			continue
		}
		legacy = append(legacy, key)
	}
	sort.Strings(legacy)

	for _, name := range legacy {
		if id, ok := s.resolver.IDFor(name); ok {
			out[id] = Normalize(input[name])
		}
	}
	for _, id := range canonical {
		out[id] = Normalize(input[id])
	}

	return out
}
