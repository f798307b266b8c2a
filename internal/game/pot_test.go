package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreetContributionsSeedBlinds(t *testing.T) {
	s, err := NewHand(3)
	require.NoError(t, err)

	contribs, err := StreetContributions(Preflop, s.Actions, s.Players, s.SmallBlind, s.BigBlind)
	require.NoError(t, err)
	assert.Equal(t, 1, contribs[SmallBlind])
	assert.Equal(t, 2, contribs[BigBlind])
	assert.Equal(t, 0, contribs[Button])
}

func TestStreetContributionsDeriveCallAmounts(t *testing.T) {
	s, err := NewHand(3)
	require.NoError(t, err)

	s = apply(t, s, Button, Raise, 6)
	s = apply(t, s, SmallBlind, Call, 0)

	contribs, err := StreetContributions(Preflop, s.Actions, s.Players, s.SmallBlind, s.BigBlind)
	require.NoError(t, err)
	assert.Equal(t, 6, contribs[Button])
	assert.Equal(t, 6, contribs[SmallBlind], "the call tops up to the ceiling")
	assert.Equal(t, 2, contribs[BigBlind])
}

func TestIsStreetClosed(t *testing.T) {
	s, err := NewHand(2)
	require.NoError(t, err)

	closed := func(s *GameState) bool {
		return IsStreetClosed(s.Street, s.Actions, s.Players, s.SmallBlind, s.BigBlind)
	}

	assert.False(t, closed(s), "blinds posted, nobody has acted")

	s = apply(t, s, SmallBlind, Call, 0)
	assert.False(t, closed(s), "the big blind still has its option")

	next, err := s.Apply(ActionRecord{Position: BigBlind, Action: Check, Street: Preflop})
	require.NoError(t, err)
	// Apply advanced to the flop; the fresh street is open again.
	assert.Equal(t, Flop, next.Street)
	assert.False(t, closed(next))
}

func TestClosedStreetStaysClosed(t *testing.T) {
	s, err := NewHand(3)
	require.NoError(t, err)

	closed := func(s *GameState, street Street) bool {
		return IsStreetClosed(street, s.Actions, s.Players, s.SmallBlind, s.BigBlind)
	}

	s = apply(t, s, Button, Call, 0)
	s = apply(t, s, SmallBlind, Call, 0)
	s = apply(t, s, BigBlind, Check, 0)
	require.Equal(t, Flop, s.Street)

	assert.True(t, closed(s, Preflop))
	assert.True(t, closed(s, Preflop), "closure is stable under repeated queries")

	// Actions on later streets never reopen an earlier one.
	s = apply(t, s, SmallBlind, Bet, 4)
	s = apply(t, s, BigBlind, Fold, 0)
	assert.True(t, closed(s, Preflop))
	s = apply(t, s, Button, Call, 0)
	require.Equal(t, Turn, s.Street)
	assert.True(t, closed(s, Preflop))
	assert.True(t, closed(s, Flop))
}

func TestIsStreetClosedVacuouslyWhenAllIn(t *testing.T) {
	s, err := NewHand(2)
	require.NoError(t, err)
	s = apply(t, s, SmallBlind, AllIn, 0)
	s = apply(t, s, BigBlind, AllIn, 0)

	// Zero acting seats: every street is closed without any action.
	for street := Preflop; street <= River; street++ {
		assert.True(t, IsStreetClosed(street, s.Actions, s.Players, s.SmallBlind, s.BigBlind))
	}
}

func TestSidePotsEqualStacksSinglePot(t *testing.T) {
	s, err := NewHand(2)
	require.NoError(t, err)
	s = apply(t, s, SmallBlind, AllIn, 0)
	s = apply(t, s, BigBlind, AllIn, 0)

	pots, err := s.SidePots()
	require.NoError(t, err)
	require.Len(t, pots, 1, "equal stacks degenerate to one pot")
	assert.Equal(t, 400, pots[0].Amount)
	assert.Equal(t, []Position{SmallBlind, BigBlind}, pots[0].Eligible)
}
