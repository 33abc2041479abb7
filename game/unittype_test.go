package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPromotionChain(t *testing.T) {
	next, ok := NextType(Pikeman)
	require.True(t, ok)
	require.Equal(t, Archer, next, "Pikeman should promote to Archer")

	next, ok = NextType(Archer)
	require.True(t, ok)
	require.Equal(t, Knight, next, "Archer should promote to Knight")

	_, ok = NextType(Knight)
	require.False(t, ok, "Knight should be a terminal type")
}

func TestParseUnitType(t *testing.T) {
	t.Run("accepts every known tag in any case", func(t *testing.T) {
		for _, tc := range []struct {
			tag  string
			want UnitType
		}{
			{"pikeman", Pikeman},
			{"Pikeman", Pikeman},
			{"archer", Archer},
			{"KNIGHT", Knight},
		} {
			got, err := ParseUnitType(tc.tag)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		}
	})

	t.Run("rejects unknown tags", func(t *testing.T) {
		_, err := ParseUnitType("catapult")
		require.Error(t, err)
		require.Contains(t, err.Error(), "catapult")
	})

	t.Run("round trips through String", func(t *testing.T) {
		for _, unitType := range []UnitType{Pikeman, Archer, Knight} {
			got, err := ParseUnitType(unitType.String())
			require.NoError(t, err)
			require.Equal(t, unitType, got)
		}
	})
}
