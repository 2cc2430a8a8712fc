// Package variant classifies items into rarity/provenance classes from the
// markers embedded in their ids.
package variant

import "strings"

// Class is the variant class of an item
type Class string

// Variant classes
const (
	Simple   Class = "simple"
	Royal    Class = "royal"
	Avalon   Class = "avalon"
	Crystal  Class = "crystal"
	Mist     Class = "mist"
	Artifact Class = "artifact"
)

// Ordered; first match wins.
var markers = []struct {
	tokens []string
	class  Class
}{
	{tokens: []string{"_ROYAL"}, class: Royal},
	{tokens: []string{"_AVALON"}, class: Avalon},
	{tokens: []string{"_CRYSTAL"}, class: Crystal},
	{tokens: []string{"_MIST"}, class: Mist},
	{tokens: []string{"_HELL", "_MORGANA", "_UNDEAD", "_KEEPER"}, class: Artifact},
}

// Classify returns the variant class for an item id. Matching is a
// case-insensitive substring search; plain craftable gear is Simple.
func Classify(itemID string) Class {
	upper := strings.ToUpper(itemID)
	for _, m := range markers {
		for _, token := range m.tokens {
			if strings.Contains(upper, token) {
				return m.class
			}
		}
	}
	return Simple
}

// IsSimple reports whether the class is the default craftable class
func (c Class) IsSimple() bool {
	return c == Simple
}
