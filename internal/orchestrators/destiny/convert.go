package destiny

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/destiny-api/internal/engine/specs"
	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
	"github.com/KirkDiggler/destiny-api/internal/errors"
	profilerepo "github.com/KirkDiggler/destiny-api/internal/repositories/profile"
)

func toEntity(data *profilerepo.Data, store *specs.Store) *destiny.Profile {
	return &destiny.Profile{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Slot:      data.Slot,
		Name:      data.Name,
		Server:    data.Server,
		Specs:     store.Snapshot(),
		UpdatedAt: data.UpdatedAt,
	}
}

func toPersisted(levels map[string]int) map[string]float64 {
	out := make(map[string]float64, len(levels))
	for id, level := range levels {
		out[id] = float64(level)
	}
	return out
}

func validateQuality(field string, q destiny.Quality, vb *errors.ValidationBuilder) {
	if q != 0 && !q.IsValid() {
		vb.Fieldf(field, "unknown quality tier %d", int(q))
	}
}

func validateBaseIP(field string, base *float64, vb *errors.ValidationBuilder) {
	if base == nil {
		return
	}
	if math.IsNaN(*base) || math.IsInf(*base, 0) || *base < 0 {
		vb.Field(field, "must be a finite non-negative number")
	}
}

func fieldName(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}
