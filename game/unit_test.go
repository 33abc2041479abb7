package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitTrain(t *testing.T) {
	t.Run("adds the type's bonus each time", func(t *testing.T) {
		u := NewUnit(Pikeman)
		require.Equal(t, 5, u.Strength, "Pikeman should start at base strength")

		require.Equal(t, 8, u.Train(), "First training should add the bonus")
		require.Equal(t, 11, u.Train(), "Repeated training should be additive")
		require.Equal(t, 11, u.Strength)
	})

	t.Run("uses the bonus of the unit's current type", func(t *testing.T) {
		u := NewUnit(Knight)
		require.Equal(t, 30, u.Train(), "Knight should gain its own training bonus")
	})
}

func TestUnitAdvanceServiceYear(t *testing.T) {
	u := NewUnit(Archer)
	require.Equal(t, 0, u.ServiceYears, "Fresh unit should have no service time")
	require.Equal(t, 1, u.AdvanceServiceYear())
	require.Equal(t, 2, u.AdvanceServiceYear())
	require.Equal(t, 10, u.Strength, "Service time should not touch strength")
}
