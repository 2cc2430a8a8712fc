package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/destiny-api/internal/engine/variant"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		itemID string
		want   variant.Class
	}{
		{itemID: "T8_2H_SWORD_KEEPER", want: variant.Artifact},
		{itemID: "T4_HEAD_PLATE_SET1", want: variant.Simple},
		{itemID: "T6_OFF_SHIELD_AVALON@1", want: variant.Avalon},
		{itemID: "T5_ARMOR_CLOTH_ROYAL", want: variant.Royal},
		{itemID: "t7_main_cursedstaff_undead", want: variant.Artifact},
		{itemID: "T6_2H_FIRESTAFF_HELL", want: variant.Artifact},
		{itemID: "T5_MAIN_ARCANESTAFF_MORGANA", want: variant.Artifact},
		{itemID: "T8_SHOES_LEATHER_CRYSTAL", want: variant.Crystal},
		{itemID: "T4_CAPEITEM_FW_MIST", want: variant.Mist},
		// royal is checked before avalon
		{itemID: "T6_HEAD_ROYAL_AVALON", want: variant.Royal},
		// mist is checked before the artifact markers
		{itemID: "T6_MAIN_MIST_KEEPER", want: variant.Mist},
		{itemID: "", want: variant.Simple},
		{itemID: "ROYAL", want: variant.Simple},
	}

	for _, tc := range testCases {
		t.Run(tc.itemID, func(t *testing.T) {
			assert.Equal(t, tc.want, variant.Classify(tc.itemID))
		})
	}
}

func TestIsSimple(t *testing.T) {
	assert.True(t, variant.Simple.IsSimple())
	assert.False(t, variant.Artifact.IsSimple())
}
