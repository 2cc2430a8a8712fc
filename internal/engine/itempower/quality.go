package itempower

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
	"github.com/KirkDiggler/destiny-api/internal/errors"
)

// QualitySchedule maps an equipped quality tier to its flat IP bonus. Tiers
// without an entry add nothing.
type QualitySchedule map[destiny.Quality]float64

// Bonus returns the bonus for q
func (qs QualitySchedule) Bonus(q destiny.Quality) float64 {
	return qs[q]
}

// ParseQualitySchedule reads a YAML mapping of tier name to bonus, e.g.
//
//	normal: 0
//	good: 20
//	masterpiece: 100
func ParseQualitySchedule(data []byte) (QualitySchedule, error) {
	raw := make(map[string]float64)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.InvalidArgumentf("invalid quality schedule: %v", err)
	}

	vb := errors.NewValidationBuilder()
	schedule := make(QualitySchedule, len(raw))
	for name, bonus := range raw {
		q, ok := destiny.ParseQuality(name)
		if !ok {
			vb.Field(name, "is not a quality tier")
			continue
		}
		schedule[q] = bonus
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return schedule, nil
}

// LoadQualitySchedule reads the schedule at path. An empty path yields an
// empty schedule.
func LoadQualitySchedule(path string) (QualitySchedule, error) {
	if path == "" {
		return QualitySchedule{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read quality schedule %s", path)
	}
	return ParseQualitySchedule(data)
}
