// Package destiny holds the shared data types of the Destiny Board domain:
// catalog items, equipment slots and quality tiers.
package destiny

import "strings"

// Slot is the equipment slot an item occupies
type Slot string

// Equipment slots
const (
	SlotWeapon  Slot = "weapon"
	SlotHead    Slot = "head"
	SlotArmor   Slot = "armor"
	SlotShoes   Slot = "shoes"
	SlotOffhand Slot = "offhand"
	SlotCape    Slot = "cape"
	SlotMount   Slot = "mount"
	SlotFood    Slot = "food"
	SlotPotion  Slot = "potion"
)

// ParseSlot maps catalog spellings onto a Slot. "chest" is an alias of armor
// and "mainhand" of weapon. Unknown values return "" and false.
func ParseSlot(value string) (Slot, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "weapon", "mainhand":
		return SlotWeapon, true
	case "head":
		return SlotHead, true
	case "armor", "chest":
		return SlotArmor, true
	case "shoes":
		return SlotShoes, true
	case "offhand":
		return SlotOffhand, true
	case "cape":
		return SlotCape, true
	case "mount":
		return SlotMount, true
	case "food":
		return SlotFood, true
	case "potion":
		return SlotPotion, true
	default:
		return "", false
	}
}

// IsArmorPiece reports whether the slot is one of head, armor or shoes
func (s Slot) IsArmorPiece() bool {
	return s == SlotHead || s == SlotArmor || s == SlotShoes
}

// ItemEntry is one row of the external item catalog. The engine never
// mutates it.
type ItemEntry struct {
	ID           string  `json:"id"`
	Slot         Slot    `json:"slot"`
	MasteryTable string  `json:"masteryTable"`
	SpecTable    string  `json:"specTable"`
	ItemPower    float64 `json:"itemPower,omitempty"`
}

// Quality is the equipped quality tier of an item
type Quality int

// Quality tiers
const (
	QualityNormal Quality = iota + 1
	QualityGood
	QualityOutstanding
	QualityExcellent
	QualityMasterpiece
)

var qualityNames = map[Quality]string{
	QualityNormal:      "normal",
	QualityGood:        "good",
	QualityOutstanding: "outstanding",
	QualityExcellent:   "excellent",
	QualityMasterpiece: "masterpiece",
}

// String returns the lowercase tier name
func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return "unknown"
}

// ParseQuality accepts a tier name. Unknown names return false.
func ParseQuality(value string) (Quality, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	for q, name := range qualityNames {
		if name == value {
			return q, true
		}
	}
	return 0, false
}

// IsValid reports whether q is one of the five tiers
func (q Quality) IsValid() bool {
	_, ok := qualityNames[q]
	return ok
}
