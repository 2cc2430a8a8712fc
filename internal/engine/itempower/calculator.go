// Package itempower computes the Item Power of equipped items from base
// power, quality and the owner's Destiny Board levels.
package itempower

import (
	"math"

	"github.com/KirkDiggler/destiny-api/internal/engine/progression"
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
	"github.com/KirkDiggler/destiny-api/internal/errors"
)

// LevelSource provides a character's level per table id
type LevelSource interface {
	Level(id string) int
}

// LevelMap adapts a plain map to LevelSource
type LevelMap map[string]int

// Level returns the level for id, 0 when absent
func (m LevelMap) Level(id string) int {
	return m[id]
}

// SiblingSpec records one sibling specialization that fed the total
type SiblingSpec struct {
	TableID      string  `json:"tableId"`
	Level        int     `json:"level"`
	Modifier     float64 `json:"modifier"`
	Contribution float64 `json:"contribution"`
}

// Result is the full breakdown of one item's power. Values are not rounded.
type Result struct {
	ItemID                 string        `json:"itemId"`
	BaseIP                 float64       `json:"baseIP"`
	TotalIP                float64       `json:"totalIP"`
	QualityBonus           float64       `json:"qualityBonus"`
	MasteryLevel           int           `json:"masteryLevel"`
	SpecLevel              int           `json:"specLevel"`
	MasteryBonus           float64       `json:"masteryBonus"`
	MasteryModifierBonus   float64       `json:"masteryModifierBonus"`
	SpecUniqueContribution float64       `json:"specUniqueContribution"`
	CrossSpecContribution  float64       `json:"crossSpecContribution"`
	SiblingSpecsUsed       []SiblingSpec `json:"siblingSpecsUsed"`
}

// Input is one item to evaluate
type Input struct {
	Item    destiny.ItemEntry
	BaseIP  float64
	Quality destiny.Quality
	Specs   LevelSource
}

// LoadoutResult holds the results for a set of equipped items
type LoadoutResult struct {
	Items     []*Result `json:"items"`
	AverageIP float64   `json:"averageIP"`
}

// Config holds the calculator's collaborators
type Config struct {
	Catalog *progression.Catalog
	Quality QualitySchedule
	// MasteryModifierBonusRate multiplies the mastery level into the
	// masteryModifierBonus term. Zero disables the term.
	MasteryModifierBonusRate float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if math.IsNaN(c.MasteryModifierBonusRate) || math.IsInf(c.MasteryModifierBonusRate, 0) || c.MasteryModifierBonusRate < 0 {
		vb.Field("MasteryModifierBonusRate", "must be a finite non-negative number")
	}

	return vb.Build()
}

// Calculator evaluates item power against an immutable table catalog
type Calculator struct {
	catalog     *progression.Catalog
	quality     QualitySchedule
	masteryRate float64
}

// New creates a calculator
func New(cfg *Config) (*Calculator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	quality := cfg.Quality
	if quality == nil {
		quality = QualitySchedule{}
	}

	return &Calculator{
		catalog:     cfg.Catalog,
		quality:     quality,
		masteryRate: cfg.MasteryModifierBonusRate,
	}, nil
}

// Calculate returns the IP breakdown for one item. Unknown tables contribute
// nothing; a nil Specs is treated as all levels at zero.
func (c *Calculator) Calculate(input Input) *Result {
	levels := input.Specs
	if levels == nil {
		levels = LevelMap(nil)
	}

	item := input.Item
	result := &Result{
		ItemID:           item.ID,
		BaseIP:           input.BaseIP,
		QualityBonus:     c.quality.Bonus(input.Quality),
		SiblingSpecsUsed: []SiblingSpec{},
	}

	if item.MasteryTable != "" {
		result.MasteryLevel = levels.Level(item.MasteryTable)
		if mastery, ok := c.catalog.Table(item.MasteryTable); ok {
			result.MasteryBonus = float64(result.MasteryLevel) * mastery.MasteryModifier
		}
		result.MasteryModifierBonus = float64(result.MasteryLevel) * c.masteryRate
	}

	if item.SpecTable != "" {
		result.SpecLevel = levels.Level(item.SpecTable)
		if spec, ok := c.catalog.Table(item.SpecTable); ok {
			result.SpecUniqueContribution = float64(result.SpecLevel) * spec.SpecializationModifier
		}
		c.addSiblings(result, item, levels)
	}

	result.TotalIP = result.BaseIP +
		result.QualityBonus +
		result.MasteryBonus +
		result.MasteryModifierBonus +
		result.SpecUniqueContribution +
		result.CrossSpecContribution

	return result
}

// addSiblings sums every other specialization under the item's mastery,
// each weighted by its own cross-specialization modifier.
func (c *Calculator) addSiblings(result *Result, item destiny.ItemEntry, levels LevelSource) {
	masteryID, ok := c.catalog.MasteryForSpec(item.SpecTable)
	if !ok {
		masteryID = item.MasteryTable
	}
	if masteryID == "" {
		return
	}

	for _, siblingID := range c.catalog.SpecsForMastery(masteryID) {
		if siblingID == item.SpecTable {
			continue
		}
		sibling, ok := c.catalog.Table(siblingID)
		if !ok {
			continue
		}
		level := levels.Level(siblingID)
		contribution := float64(level) * sibling.CrossSpecializationModifier
		if contribution == 0 {
			continue
		}
		result.CrossSpecContribution += contribution
		result.SiblingSpecsUsed = append(result.SiblingSpecsUsed, SiblingSpec{
			TableID:      siblingID,
			Level:        level,
			Modifier:     sibling.CrossSpecializationModifier,
			Contribution: contribution,
		})
	}
}

// CalculateLoadout evaluates every item and averages their total IP
func (c *Calculator) CalculateLoadout(inputs []Input) *LoadoutResult {
	out := &LoadoutResult{Items: make([]*Result, 0, len(inputs))}
	if len(inputs) == 0 {
		return out
	}

	var sum float64
	for _, input := range inputs {
		r := c.Calculate(input)
		out.Items = append(out.Items, r)
		sum += r.TotalIP
	}
	out.AverageIP = sum / float64(len(inputs))

	return out
}
