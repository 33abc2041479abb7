package game

// Unit is one fielded instance of a unit type.
type Unit struct {
	Type         UnitType
	Strength     int
	ServiceYears int
}

// NewUnit creates a fresh unit at its type's base strength.
func NewUnit(t UnitType) *Unit {
	return &Unit{Type: t, Strength: Definition(t).BaseStrength}
}

// Train adds the type's training bonus and returns the new strength.
// Cost validation is the army's responsibility.
func (u *Unit) Train() int {
	u.Strength += Definition(u.Type).TrainingBonus
	return u.Strength
}

// AdvanceServiceYear increments the unit's service time by one year.
func (u *Unit) AdvanceServiceYear() int {
	u.ServiceYears++
	return u.ServiceYears
}
