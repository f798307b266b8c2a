package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handscribe/handscribe/internal/game"
)

func TestLoadHeadsUpTranscript(t *testing.T) {
	f, err := Load("testdata/headsup_fold.hcl")
	require.NoError(t, err)

	assert.Equal(t, 2, f.Table.Seats)
	assert.Equal(t, 1, f.Table.SmallBlind)
	assert.Equal(t, 2, f.Table.BigBlind)
	assert.Equal(t, "SB", f.Table.Hero)
	assert.Equal(t, []string{"As", "Kd"}, f.Table.HeroCards)
	require.Len(t, f.Streets, 4)
	assert.Equal(t, "preflop", f.Streets[0].Name)
	require.NotNil(t, f.Result)
	assert.Equal(t, []string{"SB"}, f.Result.Winners)
}

func TestLoadDefaultsBlinds(t *testing.T) {
	f, err := LoadBytes([]byte(`
table {
  seats = 6
}
`), "blinds.hcl")
	require.NoError(t, err)
	assert.Equal(t, 1, f.Table.SmallBlind)
	assert.Equal(t, 2, f.Table.BigBlind)

	f, err = LoadBytes([]byte(`
table {
  seats       = 6
  small_blind = 5
}
`), "blinds.hcl")
	require.NoError(t, err)
	assert.Equal(t, 10, f.Table.BigBlind)
}

func TestLoadRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"bad table size", `
table {
  seats = 11
}
`},
		{"unknown seat", `
table {
  seats = 2
}
street "preflop" {
  action {
    seat = "LJ"
    do   = "fold"
  }
}
`},
		{"unknown action", `
table {
  seats = 2
}
street "preflop" {
  action {
    seat = "SB"
    do   = "limp"
  }
}
`},
		{"streets out of order", `
table {
  seats = 2
}
street "flop" {
}
street "preflop" {
}
`},
		{"one hero card", `
table {
  seats      = 2
  hero       = "BB"
  hero_cards = ["As"]
}
`},
		{"river without turn", `
table {
  seats = 2
}
board {
  flop  = ["Ah", "7c", "2d"]
  river = "9h"
}
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tc.src), tc.name+".hcl")
			assert.Error(t, err)
		})
	}
}

func TestReplayHeadsUpFold(t *testing.T) {
	f, err := Load("testdata/headsup_fold.hcl")
	require.NoError(t, err)

	summary, err := NewReplayer(nil, nil).Replay(f)
	require.NoError(t, err)

	assert.Equal(t, game.River, summary.Final.Street)
	assert.False(t, summary.Final.Complete, "a hand ending in a fold never reaches showdown")
	assert.Equal(t, 36, summary.Final.Pot)
	assert.Equal(t, "river lead took it down", summary.Memo)

	require.Len(t, summary.Pots, 1)
	assert.Equal(t, 36, summary.Pots[0].Amount)
	assert.Equal(t, []game.Position{game.SmallBlind}, summary.Pots[0].Eligible)

	assert.Equal(t, map[game.Position]int{game.SmallBlind: 36}, summary.Payouts)

	// The folder's stack reflects everything it put in.
	bb := summary.Final.Players[1]
	require.Equal(t, game.BigBlind, bb.Position)
	assert.False(t, bb.Active)
	assert.Equal(t, 188, bb.Stack)
}

func TestReplayThreeWayAllIn(t *testing.T) {
	f, err := Load("testdata/threeway_allin.hcl")
	require.NoError(t, err)

	summary, err := NewReplayer(nil, nil).Replay(f)
	require.NoError(t, err)

	require.True(t, summary.Final.Complete, "an all-in hand runs out to the river")
	assert.Equal(t, game.River, summary.Final.Street)
	assert.Equal(t, 170, summary.Final.Pot)

	// 20/50/100 stacks layer into three pots.
	require.Len(t, summary.Pots, 3)
	assert.Equal(t, 60, summary.Pots[0].Amount)
	assert.Equal(t, []game.Position{game.SmallBlind, game.BigBlind, game.Button}, summary.Pots[0].Eligible)
	assert.Equal(t, 60, summary.Pots[1].Amount)
	assert.Equal(t, []game.Position{game.SmallBlind, game.Button}, summary.Pots[1].Eligible)
	assert.Equal(t, 50, summary.Pots[2].Amount)
	assert.Equal(t, []game.Position{game.SmallBlind}, summary.Pots[2].Eligible)

	// Set of nines takes the main pot, pair of jacks the middle, and
	// the deep stack gets its uncalled layer back.
	require.Len(t, summary.PotWinners, 3)
	assert.Equal(t, []game.Position{game.BigBlind}, summary.PotWinners[0].Winners)
	assert.Equal(t, []game.Position{game.Button}, summary.PotWinners[1].Winners)
	assert.Equal(t, []game.Position{game.SmallBlind}, summary.PotWinners[2].Winners)

	assert.Equal(t, map[game.Position]int{
		game.BigBlind:   60,
		game.Button:     60,
		game.SmallBlind: 50,
	}, summary.Payouts)
}

func TestReplayRejectsOutOfTurn(t *testing.T) {
	f, err := LoadBytes([]byte(`
table {
  seats = 2
}
street "preflop" {
  action {
    seat = "BB"
    do   = "check"
  }
}
`), "outofturn.hcl")
	require.NoError(t, err)

	_, err = NewReplayer(nil, nil).Replay(f)
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrOutOfTurn)
}

func TestReplayRejectsUndersizedRaise(t *testing.T) {
	f, err := LoadBytes([]byte(`
table {
  seats = 2
}
street "preflop" {
  action {
    seat = "SB"
    do   = "raise"
    amount = 2
  }
}
`), "undersized.hcl")
	require.NoError(t, err)

	// Raising to 3 adds one chip less than a full big blind on top.
	_, err = NewReplayer(nil, nil).Replay(f)
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrMalformedSize)
}

func TestReplayWithoutResultStopsAtPots(t *testing.T) {
	f, err := LoadBytes([]byte(`
table {
  seats = 2
}
street "preflop" {
  action {
    seat = "SB"
    do   = "call"
  }
}
`), "openended.hcl")
	require.NoError(t, err)

	summary, err := NewReplayer(nil, nil).Replay(f)
	require.NoError(t, err)
	assert.Nil(t, summary.PotWinners)
	assert.Equal(t, 4, summary.Final.Pot)
}
