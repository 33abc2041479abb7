package game

import "time"

// Casualty is a snapshot of a unit at the moment it was lost in battle.
type Casualty struct {
	Type     UnitType
	Strength int
}

// BattleRecord describes one battle from one side's perspective. The two
// records produced by a battle share When and Result with the roles swapped.
// Records are never mutated after being appended to an army's history.
type BattleRecord struct {
	When             time.Time
	Opponent         string
	OwnStrength      int // total strength before the battle
	OpponentStrength int
	Result           string
	GoldDelta        int
	OwnLosses        []Casualty
	OpponentLosses   []Casualty
}
