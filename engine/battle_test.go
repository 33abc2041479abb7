package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"warsim/game"
)

// fieldArmy builds an army with one pikeman per given strength, bypassing
// the standard endowment so gold deltas are easy to assert.
func fieldArmy(name string, strengths ...int) *game.Army {
	a := &game.Army{Name: name}
	for _, s := range strengths {
		a.Roster = append(a.Roster, &game.Unit{Type: game.Pikeman, Strength: s})
	}
	return a
}

func TestBattleStrongerSideWins(t *testing.T) {
	x := fieldArmy("X", 20, 15, 10, 5) // 50
	y := fieldArmy("Y", 40, 40)        // 80

	label := Battle(x, y)

	require.Equal(t, "Y wins", label, "Result should name the winning army")
	require.Equal(t, Spoils, y.Gold, "Winner should collect the spoils")
	require.Equal(t, 0, x.Gold, "Loser's gold should be unchanged")

	require.Len(t, x.Roster, 2, "Loser should lose its top two units")
	require.Equal(t, []game.Casualty{
		{Type: game.Pikeman, Strength: 20},
		{Type: game.Pikeman, Strength: 15},
	}, x.History[0].OwnLosses)
	require.Len(t, y.Roster, 2, "Winner should lose no units")

	require.Len(t, x.History, 1)
	require.Len(t, y.History, 1)
	require.Equal(t, x.History[0].When, y.History[0].When, "Both records should share the timestamp")
}

func TestBattleSelfWins(t *testing.T) {
	x := fieldArmy("X", 30, 30)
	y := fieldArmy("Y", 10, 10, 10)

	label := Battle(x, y)

	require.Equal(t, "X wins", label)
	require.Equal(t, Spoils, x.Gold)
	require.Equal(t, 0, y.Gold)
	require.Len(t, x.Roster, 2)
	require.Len(t, y.Roster, 1)
}

func TestBattleDraw(t *testing.T) {
	x := fieldArmy("X", 20, 10)
	y := fieldArmy("Y", 15, 15)

	label := Battle(x, y)

	require.Equal(t, DrawLabel, label)
	require.Equal(t, 0, x.Gold, "No gold should move on a draw")
	require.Equal(t, 0, y.Gold)
	require.Len(t, x.Roster, 1, "Each side should lose its single strongest unit")
	require.Len(t, y.Roster, 1)
	require.Equal(t, []game.Casualty{{Type: game.Pikeman, Strength: 20}}, x.History[0].OwnLosses)
	require.Equal(t, []game.Casualty{{Type: game.Pikeman, Strength: 15}}, y.History[0].OwnLosses)
}

func TestBattleAdvancesServiceYearsEverywhere(t *testing.T) {
	x := fieldArmy("X", 20, 5)
	y := fieldArmy("Y", 40, 10)

	// Hold on to every unit, including the ones about to fall
	var all []*game.Unit
	all = append(all, x.Roster...)
	all = append(all, y.Roster...)

	Battle(x, y)

	for _, u := range all {
		require.Equal(t, 1, u.ServiceYears,
			"Every unit fielded before the battle should age, casualties included")
	}
}

func TestBattleSmallLoserRoster(t *testing.T) {
	x := fieldArmy("X", 5)
	y := fieldArmy("Y", 40, 40)

	Battle(x, y)

	require.Empty(t, x.Roster, "A one-unit loser loses that one unit")
	require.Equal(t, []game.Casualty{{Type: game.Pikeman, Strength: 5}}, x.History[0].OwnLosses)
}

func TestBattleHistorySymmetry(t *testing.T) {
	x := fieldArmy("X", 20, 15, 10)
	y := fieldArmy("Y", 40, 40)

	label := Battle(x, y)

	recX := x.History[0]
	recY := y.History[0]

	require.Equal(t, "Y", recX.Opponent)
	require.Equal(t, "X", recY.Opponent)
	require.Equal(t, 45, recX.OwnStrength, "Strengths should be recorded as they stood pre-battle")
	require.Equal(t, 80, recX.OpponentStrength)
	require.Equal(t, 80, recY.OwnStrength)
	require.Equal(t, 45, recY.OpponentStrength)
	require.Equal(t, label, recX.Result)
	require.Equal(t, label, recY.Result)
	require.Equal(t, recX.OwnLosses, recY.OpponentLosses)
	require.Equal(t, recX.OpponentLosses, recY.OwnLosses)
	require.Equal(t, Spoils, recY.GoldDelta)
	require.Equal(t, 0, recX.GoldDelta)
}
