package taxonomy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ErikKalkoken/go-set"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/destiny-api/internal/engine/taxonomy"
)

const sampleTaxonomy = `
Warrior:
  Swords:
    - Sword Fighter
    - Broadsword Combat Specialist
    - Claymore Combat Specialist
  Plate Armor:
    - Plate Armor Fighter
    - Soldier Armor Combat Specialist
Mage:
  Fire Staffs:
    - Fire Staff Fighter
    - Fire Staff Combat Specialist
    - Great Fire Staff Combat Specialist
Crafting:
  Cloth:
    - Cloth Armor Crafter
    - Scholar Robe Tailoring Specialist
`

type TaxonomyTestSuite struct {
	suite.Suite
	root taxonomy.Node
}

func TestTaxonomySuite(t *testing.T) {
	suite.Run(t, new(TaxonomyTestSuite))
}

func (s *TaxonomyTestSuite) SetupTest() {
	root, err := taxonomy.Parse([]byte(sampleTaxonomy))
	s.Require().NoError(err)
	s.root = root
}

func (s *TaxonomyTestSuite) TestCanonicalID() {
	testCases := []struct {
		name string
		want string
	}{
		{name: "Fire Staff Combat Specialist", want: "FIRE_STAFF_SPECIALIST"},
		{name: "Plate Armor Fighter", want: "PLATE_ARMOR_FIGHTER"},
		{name: "Cloth Armor Crafter", want: "CLOTH_ARMOR_CRAFTER"},
		{name: "Scholar Robe Tailoring Specialist", want: "SCHOLAR_ROBE_SPECIALIST"},
		{name: "Toolmaker Crafting Specialist", want: "TOOLMAKER_SPECIALIST"},
		{name: "Hunter's Garb", want: "HUNTERS_GARB"},
		{name: "Hunter’s Hood", want: "HUNTERS_HOOD"},
		{name: "Élan  Bow -- of  Badon", want: "ELAN_BOW_OF_BADON"},
		{name: "  Mist-Walker Shoes!", want: "MIST_WALKER_SHOES"},
		{name: "Carving Sword", want: "CARVING_SWORD"},
		{name: "Großaxt Fighter", want: "GROSSAXT_FIGHTER"},
		{name: "GROẞE Axt", want: "GROSSE_AXT"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, taxonomy.CanonicalID(tc.name))
			// stable across calls
			s.Equal(taxonomy.CanonicalID(tc.name), taxonomy.CanonicalID(tc.name))
		})
	}
}

func (s *TaxonomyTestSuite) TestSuffixPriority() {
	// "Specialist" rules are checked before "Fighter"
	s.Equal("ARMOR_FIGHTER_SPECIALIST", taxonomy.CanonicalID("Armor Fighter Combat Specialist"))
	// "Crafter" only applies when no earlier rule matched
	s.Equal("SHIELD_CRAFTER_FIGHTER", taxonomy.CanonicalID("Shield Crafter Fighter"))
}

func (s *TaxonomyTestSuite) TestFlattenPreservesOrder() {
	names := taxonomy.Flatten(s.root)

	s.Equal([]string{
		"Sword Fighter",
		"Broadsword Combat Specialist",
		"Claymore Combat Specialist",
		"Plate Armor Fighter",
		"Soldier Armor Combat Specialist",
		"Fire Staff Fighter",
		"Fire Staff Combat Specialist",
		"Great Fire Staff Combat Specialist",
		"Cloth Armor Crafter",
		"Scholar Robe Tailoring Specialist",
	}, names)
}

func (s *TaxonomyTestSuite) TestWalkReportsPath() {
	var paths [][]string
	taxonomy.Walk(s.root, func(path []string, _ []string) {
		paths = append(paths, path)
	})

	s.Require().Len(paths, 4)
	s.Equal([]string{"Warrior", "Swords"}, paths[0])
	s.Equal([]string{"Crafting", "Cloth"}, paths[3])
}

func (s *TaxonomyTestSuite) TestResolver() {
	r := taxonomy.NewResolver(s.root)

	s.Equal(10, r.Len())
	s.True(r.IsCanonical("FIRE_STAFF_SPECIALIST"))
	s.False(r.IsCanonical("Fire Staff Combat Specialist"))

	id, ok := r.IDFor("Great Fire Staff Combat Specialist")
	s.True(ok)
	s.Equal("GREAT_FIRE_STAFF_SPECIALIST", id)

	_, ok = r.IDFor("Unknown Name")
	s.False(ok)

	s.True(r.IDs().Equal(set.Of(r.OrderedIDs()...)))
	s.Equal("SWORD_FIGHTER", r.OrderedIDs()[0])
}

func (s *TaxonomyTestSuite) TestResolverDeduplicates() {
	root := taxonomy.Branch(
		taxonomy.Named("A", taxonomy.Leaf("Sword Fighter", "Sword  Fighter")),
		taxonomy.Named("B", taxonomy.Leaf("Sword Fighter")),
	)

	r := taxonomy.NewResolver(root)

	s.Len(r.Names(), 3)
	s.Equal([]string{"SWORD_FIGHTER"}, r.OrderedIDs())
}

func (s *TaxonomyTestSuite) TestEmptyTree() {
	r := taxonomy.NewResolver(taxonomy.Node{})

	s.Empty(r.Names())
	s.Equal(0, r.IDs().Size())
	s.Empty(taxonomy.Flatten(taxonomy.Branch()))
}

func (s *TaxonomyTestSuite) TestParseMalformedShapes() {
	testCases := []struct {
		name      string
		doc       string
		wantNames []string
	}{
		{name: "empty document", doc: "", wantNames: nil},
		{name: "scalar root", doc: "just a string", wantNames: nil},
		{name: "leaf at root", doc: "- Sword Fighter\n- Axe Fighter\n", wantNames: []string{"Sword Fighter", "Axe Fighter"}},
		{name: "nested sequence degrades", doc: "Group:\n  - [a, b]\n  - Axe Fighter\nOther:\n  - Bow Fighter\n", wantNames: []string{"Bow Fighter"}},
		{name: "scalar under branch degrades", doc: "Group: nope\nOther:\n  - Bow Fighter\n", wantNames: []string{"Bow Fighter"}},
		{name: "json document", doc: `{"Mage": {"Frost": ["Frost Staff Fighter"]}}`, wantNames: []string{"Frost Staff Fighter"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			root, err := taxonomy.Parse([]byte(tc.doc))
			s.Require().NoError(err)
			s.Equal(tc.wantNames, taxonomy.Flatten(root))
		})
	}
}

func (s *TaxonomyTestSuite) TestParseSyntaxError() {
	_, err := taxonomy.Parse([]byte("a: [unclosed"))
	s.Error(err)
}

func (s *TaxonomyTestSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "taxonomy.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(sampleTaxonomy), 0o600))

	root, err := taxonomy.LoadFile(path)
	s.Require().NoError(err)
	s.Len(taxonomy.Flatten(root), 10)

	_, err = taxonomy.LoadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}
