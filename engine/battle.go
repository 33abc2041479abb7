package engine

import (
	"time"

	"warsim/game"
)

// Spoils is the gold awarded to the winner of a battle.
const Spoils = 100

// DrawLabel is the result label of a drawn battle.
const DrawLabel = "draw"

// WinLabel returns the result label of a battle won by the named army.
func WinLabel(name string) string {
	return name + " wins"
}

// Battle resolves one battle between two armies, mutating both as a single
// step: every unit on both sides ages one year regardless of outcome, the
// stronger side takes the spoils while the weaker loses its two strongest
// units (one each on a draw, with no gold moving), and both histories gain
// a record sharing the same timestamp and result label. Strengths are
// compared as they stood before any mutation. Battle itself has no failure
// path; both armies must already be initialized.
func Battle(self, opponent *game.Army) string {
	when := time.Now()
	selfBefore := self.TotalStrength()
	oppBefore := opponent.TotalStrength()

	self.AdvanceAllServiceYears()
	opponent.AdvanceAllServiceYears()

	var label string
	var selfGold, oppGold int
	var selfLosses, oppLosses []game.Casualty
	switch {
	case selfBefore > oppBefore:
		label = WinLabel(self.Name)
		selfGold = Spoils
		oppLosses = opponent.RemoveTopUnits(2)
	case selfBefore < oppBefore:
		label = WinLabel(opponent.Name)
		oppGold = Spoils
		selfLosses = self.RemoveTopUnits(2)
	default:
		label = DrawLabel
		selfLosses = self.RemoveTopUnits(1)
		oppLosses = opponent.RemoveTopUnits(1)
	}

	self.AddGold(selfGold)
	opponent.AddGold(oppGold)

	self.Record(game.BattleRecord{
		When:             when,
		Opponent:         opponent.Name,
		OwnStrength:      selfBefore,
		OpponentStrength: oppBefore,
		Result:           label,
		GoldDelta:        selfGold,
		OwnLosses:        selfLosses,
		OpponentLosses:   oppLosses,
	})
	opponent.Record(game.BattleRecord{
		When:             when,
		Opponent:         self.Name,
		OwnStrength:      oppBefore,
		OpponentStrength: selfBefore,
		Result:           label,
		GoldDelta:        oppGold,
		OwnLosses:        oppLosses,
		OpponentLosses:   selfLosses,
	})

	return label
}
