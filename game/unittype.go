package game

import (
	"fmt"
	"strings"
)

// UnitType identifies one of the closed set of unit categories.
type UnitType int

const (
	Pikeman UnitType = iota
	Archer
	Knight
)

func (t UnitType) String() string {
	switch t {
	case Pikeman:
		return "Pikeman"
	case Archer:
		return "Archer"
	case Knight:
		return "Knight"
	}
	return fmt.Sprintf("UnitType(%d)", int(t))
}

// ParseUnitType converts a type tag from configuration data into a UnitType.
func ParseUnitType(s string) (UnitType, error) {
	switch strings.ToLower(s) {
	case "pikeman":
		return Pikeman, nil
	case "archer":
		return Archer, nil
	case "knight":
		return Knight, nil
	}
	return 0, fmt.Errorf("unknown unit type %q", s)
}

// UnitTypeDef holds the static stats for one unit type. All type-specific
// numbers live here, indexed by tag, so instance state stays independent
// of type data.
type UnitTypeDef struct {
	BaseStrength  int
	TrainingCost  int
	TrainingBonus int
	TransformCost int      // gold cost of promotion, unused for terminal types
	Next          UnitType // successor in the promotion chain
	HasNext       bool     // false marks a terminal type
}

// The promotion chain is strictly linear: Pikeman -> Archer -> Knight.
var definitions = [...]UnitTypeDef{
	Pikeman: {BaseStrength: 5, TrainingCost: 10, TrainingBonus: 3, TransformCost: 30, Next: Archer, HasNext: true},
	Archer:  {BaseStrength: 10, TrainingCost: 20, TrainingBonus: 7, TransformCost: 40, Next: Knight, HasNext: true},
	Knight:  {BaseStrength: 20, TrainingCost: 30, TrainingBonus: 10},
}

// Definition returns the static stats for a unit type. Total over the
// closed set of types; read-only and safe to share.
func Definition(t UnitType) UnitTypeDef {
	return definitions[t]
}

// NextType returns the promotion successor for a type, if any.
func NextType(t UnitType) (UnitType, bool) {
	def := definitions[t]
	return def.Next, def.HasNext
}
