package testutils

import (
	"github.com/KirkDiggler/destiny-api/internal/engine/taxonomy"
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
)

// Fixture owner and item identifiers shared by service and transport tests
const (
	TestOwnerID = "owner-test-001"

	ItemBroadsword = "T4_MAIN_SWORD"
	ItemClaymore   = "T4_2H_CLAYMORE"
	ItemShield     = "T4_OFF_SHIELD"
	ItemFireStaff  = "T4_MAIN_FIRESTAFF"
	ItemHellStaff  = "T8_2H_FIRESTAFF_HELL"
)

// TaxonomyYAML is a small destiny board whose canonical ids match FixtureItems
const TaxonomyYAML = `
Warrior:
  Swords:
    - Sword Fighter
    - Broadsword Combat Specialist
    - Claymore Combat Specialist
  Shields:
    - Shield Fighter
    - Shield Combat Specialist
Mage:
  Fire Staffs:
    - Fire Staff Fighter
    - Fire Staff Combat Specialist
    - Great Fire Staff Combat Specialist
`

// FixtureItems returns the item catalog matching TaxonomyYAML
func FixtureItems() []destiny.ItemEntry {
	return []destiny.ItemEntry{
		{ID: ItemBroadsword, Slot: destiny.SlotWeapon, MasteryTable: "SWORD_FIGHTER", SpecTable: "BROADSWORD_SPECIALIST", ItemPower: 700},
		{ID: ItemClaymore, Slot: destiny.SlotWeapon, MasteryTable: "SWORD_FIGHTER", SpecTable: "CLAYMORE_SPECIALIST", ItemPower: 700},
		{ID: ItemShield, Slot: destiny.SlotOffhand, MasteryTable: "SHIELD_FIGHTER", SpecTable: "SHIELD_SPECIALIST", ItemPower: 700},
		{ID: ItemFireStaff, Slot: destiny.SlotWeapon, MasteryTable: "FIRE_STAFF_FIGHTER", SpecTable: "FIRE_STAFF_SPECIALIST", ItemPower: 700},
		{ID: ItemHellStaff, Slot: destiny.SlotWeapon, MasteryTable: "FIRE_STAFF_FIGHTER", SpecTable: "GREAT_FIRE_STAFF_SPECIALIST", ItemPower: 1100},
	}
}

// FixtureResolver parses TaxonomyYAML. It panics on error since the
// document is a compile-time constant.
func FixtureResolver() *taxonomy.Resolver {
	root, err := taxonomy.Parse([]byte(TaxonomyYAML))
	if err != nil {
		panic(err)
	}
	return taxonomy.NewResolver(root)
}
