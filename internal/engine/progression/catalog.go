package progression

import (
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
)

// Catalog is an immutable index over the generated tables and the mastery
// each specialization belongs to. It is safe for concurrent reads.
type Catalog struct {
	tables         []Table
	byID           map[string]*Table
	masteryBySpec  map[string]string
	specsByMastery map[string][]string
}

// NewCatalog builds the tables for items and indexes them
func NewCatalog(items []destiny.ItemEntry) *Catalog {
	return newCatalog(BuildTables(items), items)
}

// NewCatalogFromTables indexes previously built tables. items supply the
// specialization to mastery relation.
func NewCatalogFromTables(tables []Table, items []destiny.ItemEntry) *Catalog {
	return newCatalog(tables, items)
}

func newCatalog(tables []Table, items []destiny.ItemEntry) *Catalog {
	c := &Catalog{
		tables:         tables,
		byID:           make(map[string]*Table, len(tables)),
		masteryBySpec:  make(map[string]string),
		specsByMastery: make(map[string][]string),
	}

	for i := range c.tables {
		c.byID[c.tables[i].UniqueName] = &c.tables[i]
	}

	for _, item := range items {
		if item.SpecTable == "" || item.MasteryTable == "" {
			continue
		}
		if _, ok := c.masteryBySpec[item.SpecTable]; ok {
			continue
		}
		spec, ok := c.byID[item.SpecTable]
		if !ok || spec.IsMastery() {
			continue
		}
		c.masteryBySpec[item.SpecTable] = item.MasteryTable
		c.specsByMastery[item.MasteryTable] = append(c.specsByMastery[item.MasteryTable], item.SpecTable)
	}

	return c
}

// Tables returns a copy of the tables in build order
func (c *Catalog) Tables() []Table {
	out := make([]Table, len(c.tables))
	copy(out, c.tables)
	return out
}

// Table looks up a table by id
func (c *Catalog) Table(id string) (Table, bool) {
	t, ok := c.byID[id]
	if !ok {
		return Table{}, false
	}
	return *t, true
}

// MasteryForSpec returns the mastery a specialization table levels under
func (c *Catalog) MasteryForSpec(specID string) (string, bool) {
	m, ok := c.masteryBySpec[specID]
	return m, ok
}

// SpecsForMastery returns the specialization ids under a mastery in order of
// first appearance
func (c *Catalog) SpecsForMastery(masteryID string) []string {
	specs := c.specsByMastery[masteryID]
	out := make([]string, len(specs))
	copy(out, specs)
	return out
}

// Len returns the number of tables
func (c *Catalog) Len() int {
	return len(c.tables)
}
