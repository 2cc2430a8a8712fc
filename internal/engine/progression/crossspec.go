package progression

import (
	"strings"

	"github.com/KirkDiggler/destiny-api/internal/engine/variant"
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
)

// Cross-specialization rates
const (
	CrossSpecUtilityOffhand = 0.6
	CrossSpecSimple         = 0.2
	CrossSpecVariant        = 0.1
)

var utilityOffhandMarkers = []string{"_OFF_SHIELD", "_OFF_TORCH", "_OFF_TOME"}

// ResolveCrossSpecModifier returns the rate at which a specialization led by
// item feeds its siblings under the same mastery.
func ResolveCrossSpecModifier(item destiny.ItemEntry) float64 {
	class := variant.Classify(item.ID)

	switch {
	case item.Slot == destiny.SlotOffhand:
		if class.IsSimple() && isUtilityOffhand(item.ID) {
			return CrossSpecUtilityOffhand
		}
		if class.IsSimple() {
			return CrossSpecSimple
		}
		return CrossSpecVariant
	case item.Slot.IsArmorPiece():
		if class.IsSimple() {
			return CrossSpecSimple
		}
		return CrossSpecVariant
	default:
		if class.IsSimple() {
			return CrossSpecSimple
		}
		return CrossSpecVariant
	}
}

func isUtilityOffhand(itemID string) bool {
	upper := strings.ToUpper(itemID)
	for _, marker := range utilityOffhandMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
