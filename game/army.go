package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// InitialGold is the endowment every army starts with.
const InitialGold = 1000

// UnitGroup is one entry of a starting composition.
type UnitGroup struct {
	Type  UnitType
	Count int
}

// Army owns a gold balance, an ordered roster of units, and an append-only
// battle history. Gold never goes negative: every operation validates its
// cost fully before mutating anything. Not safe for concurrent use; callers
// must serialize access per army.
type Army struct {
	Name    string
	Gold    int
	Roster  []*Unit
	History []BattleRecord
}

// NewArmy builds an army from an ordered starting composition, appending
// Count fresh units per group in the given order.
func NewArmy(name string, composition []UnitGroup) *Army {
	a := &Army{Name: name, Gold: InitialGold}
	for _, g := range composition {
		for i := 0; i < g.Count; i++ {
			a.Roster = append(a.Roster, NewUnit(g.Type))
		}
	}
	return a
}

func (a *Army) unit(i int) (*Unit, error) {
	if i < 0 || i >= len(a.Roster) {
		return nil, fmt.Errorf("%w: index %d, roster size %d", ErrUnitNotFound, i, len(a.Roster))
	}
	return a.Roster[i], nil
}

// TrainUnit pays the unit's training cost and trains it, returning the new
// strength. The army is left untouched on failure.
func (a *Army) TrainUnit(i int) (int, error) {
	u, err := a.unit(i)
	if err != nil {
		return 0, err
	}
	cost := Definition(u.Type).TrainingCost
	if a.Gold < cost {
		return 0, fmt.Errorf("%w: training a %s costs %d, have %d", ErrInsufficientFunds, u.Type, cost, a.Gold)
	}
	a.Gold -= cost
	return u.Train(), nil
}

// TransformUnit promotes the unit at i to the next type in its chain,
// replacing the roster slot with a fresh unit at the new type's base
// strength. Only service years carry over; accumulated training growth is
// discarded. Returns the replacement unit.
func (a *Army) TransformUnit(i int) (*Unit, error) {
	u, err := a.unit(i)
	if err != nil {
		return nil, err
	}
	next, ok := NextType(u.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a terminal type", ErrNotTransformable, u.Type)
	}
	cost := Definition(u.Type).TransformCost
	if a.Gold < cost {
		return nil, fmt.Errorf("%w: promoting a %s costs %d, have %d", ErrInsufficientFunds, u.Type, cost, a.Gold)
	}
	a.Gold -= cost
	promoted := NewUnit(next)
	promoted.ServiceYears = u.ServiceYears
	a.Roster[i] = promoted
	return promoted, nil
}

// TotalStrength sums strength over the roster; 0 for an empty roster.
func (a *Army) TotalStrength() int {
	total := 0
	for _, u := range a.Roster {
		total += u.Strength
	}
	return total
}

// RemoveTopUnits sorts the roster by descending strength (stable, so units
// of equal strength keep their prior relative order) and removes the first
// min(n, len) units, returning them as casualty snapshots. The reordering
// sticks: subsequent index-based operations address the roster in its
// post-sort order.
func (a *Army) RemoveTopUnits(n int) []Casualty {
	slices.SortStableFunc(a.Roster, func(x, y *Unit) int {
		return y.Strength - x.Strength
	})
	if n > len(a.Roster) {
		n = len(a.Roster)
	}
	casualties := make([]Casualty, n)
	for i, u := range a.Roster[:n] {
		casualties[i] = Casualty{Type: u.Type, Strength: u.Strength}
	}
	a.Roster = a.Roster[n:]
	return casualties
}

// AdvanceAllServiceYears ages every unit in the roster by one year.
func (a *Army) AdvanceAllServiceYears() {
	for _, u := range a.Roster {
		u.AdvanceServiceYear()
	}
}

// AddGold credits battle spoils.
func (a *Army) AddGold(amount int) {
	a.Gold += amount
}

// Record appends one battle record to the army's history.
func (a *Army) Record(rec BattleRecord) {
	a.History = append(a.History, rec)
}
