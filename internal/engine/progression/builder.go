package progression

import (
	"log/slog"

	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
)

// BuildTables produces the full table catalog for items. Mastery tables come
// first, then specialization tables, each in order of first appearance, so
// the same catalog always yields the same output.
//
// Items without a mastery or specialization id are skipped for that set. A
// specialization id that collides with a mastery id is dropped.
func BuildTables(items []destiny.ItemEntry) []Table {
	var (
		masteryOrder []string
		seenMastery  = make(map[string]bool)
		specOrder    []string
		specLead     = make(map[string]destiny.ItemEntry)
	)

	for _, item := range items {
		if item.MasteryTable != "" && !seenMastery[item.MasteryTable] {
			seenMastery[item.MasteryTable] = true
			masteryOrder = append(masteryOrder, item.MasteryTable)
		}
		if item.SpecTable != "" {
			if _, ok := specLead[item.SpecTable]; !ok {
				specLead[item.SpecTable] = item
				specOrder = append(specOrder, item.SpecTable)
			}
		}
	}

	tables := make([]Table, 0, len(masteryOrder)+len(specOrder))

	for _, id := range masteryOrder {
		tables = append(tables, Table{
			UniqueName:      id,
			MasteryModifier: MasteryModifier,
			Progression:     defaultCurve(),
		})
	}

	for _, id := range specOrder {
		if seenMastery[id] {
			slog.Warn("specialization table collides with mastery table, skipping",
				"table_id", id,
				"item_id", specLead[id].ID)
			continue
		}
		tables = append(tables, Table{
			UniqueName:                  id,
			SpecializationModifier:      SpecializationModifier,
			CrossSpecializationModifier: ResolveCrossSpecModifier(specLead[id]),
			Progression:                 defaultCurve(),
		})
	}

	return tables
}
