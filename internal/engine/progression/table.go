// Package progression builds the mastery and specialization progression
// tables from the item catalog.
package progression

// Curve and modifier constants shared by every generated table
const (
	MaxLevel               = 120
	PointsPerLevel         = 1000
	MasteryModifier        = 0.2
	SpecializationModifier = 2.0
)

// Point is one level entry of a progression curve. SeasonPoints is reserved
// for a seasonal track and is always zero.
type Point struct {
	Level        int `json:"level"`
	Points       int `json:"points"`
	SeasonPoints int `json:"seasonpoints"`
}

// Table is a mastery or specialization progression table. Mastery tables
// carry only MasteryModifier, specialization tables only the
// specialization and cross-specialization modifiers.
type Table struct {
	UniqueName                  string  `json:"uniquename"`
	MasteryModifier             float64 `json:"masterymodifier"`
	SpecializationModifier      float64 `json:"specializationmodifier"`
	CrossSpecializationModifier float64 `json:"crossspecializationmodifier"`
	Progression                 []Point `json:"progression"`
}

// IsMastery reports whether the table is used as a mastery track
func (t *Table) IsMastery() bool {
	return t.MasteryModifier > 0
}

// PointsForLevel returns the cumulative points needed to reach level,
// clamped to the curve.
func (t *Table) PointsForLevel(level int) int {
	if level <= 0 || len(t.Progression) == 0 {
		return 0
	}
	if level > len(t.Progression) {
		level = len(t.Progression)
	}
	return t.Progression[level-1].Points
}

// LevelForPoints returns the highest level whose cumulative points are
// covered by points.
func (t *Table) LevelForPoints(points int) int {
	level := 0
	for _, p := range t.Progression {
		if p.Points > points {
			break
		}
		level = p.Level
	}
	return level
}

func defaultCurve() []Point {
	curve := make([]Point, MaxLevel)
	for i := range curve {
		level := i + 1
		curve[i] = Point{Level: level, Points: level * PointsPerLevel}
	}
	return curve
}
