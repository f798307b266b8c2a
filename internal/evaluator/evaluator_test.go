package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handscribe/handscribe/internal/deck"
)

func mustHand(t *testing.T, cards ...string) deck.Hand {
	t.Helper()
	h, err := deck.ParseHand(cards...)
	require.NoError(t, err)
	return h
}

func TestEvaluateCategories(t *testing.T) {
	cases := []struct {
		name  string
		cards []string
		want  HandRank
	}{
		{"royal flush", []string{"As", "Ks", "Qs", "Js", "10s"}, StraightFlush},
		{"straight flush", []string{"9h", "8h", "7h", "6h", "5h"}, StraightFlush},
		{"steel wheel", []string{"Ad", "2d", "3d", "4d", "5d"}, StraightFlush},
		{"quads", []string{"Ac", "Ad", "Ah", "As", "Kc"}, FourOfAKind},
		{"full house", []string{"Kc", "Kd", "Kh", "2c", "2d"}, FullHouse},
		{"flush", []string{"Ac", "Jc", "9c", "6c", "2c"}, Flush},
		{"straight", []string{"9c", "8d", "7h", "6s", "5c"}, Straight},
		{"wheel", []string{"Ac", "2d", "3h", "4s", "5c"}, Straight},
		{"trips", []string{"Qc", "Qd", "Qh", "7s", "2c"}, ThreeOfAKind},
		{"two pair", []string{"Jc", "Jd", "8h", "8s", "2c"}, TwoPair},
		{"pair", []string{"10c", "10d", "Ah", "7s", "2c"}, Pair},
		{"high card", []string{"Ac", "Jd", "9h", "6s", "2c"}, HighCard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rank := Evaluate(mustHand(t, tc.cards...))
			assert.Equal(t, tc.want, rank.Type())
		})
	}
}

func TestEvaluateCardCountBounds(t *testing.T) {
	assert.Equal(t, HandRank(0), Evaluate(mustHand(t, "As", "Ks")))
	assert.Equal(t, HandRank(0), Evaluate(mustHand(t, "As", "Ks", "Qs", "Js")))
	assert.NotEqual(t, HandRank(0), Evaluate(mustHand(t, "As", "Ks", "Qs", "Js", "9s", "2c", "3c")))
}

func TestRoyalFlushString(t *testing.T) {
	royal := Evaluate(mustHand(t, "A♠", "K♠", "Q♠", "J♠", "10♠"))
	assert.Equal(t, "Royal Flush", royal.String())

	sf := Evaluate(mustHand(t, "9h", "8h", "7h", "6h", "5h"))
	assert.Equal(t, "Straight Flush", sf.String())
}

func TestFlushBeatsStraightInSevenCards(t *testing.T) {
	// Seven cards containing both a straight and a flush must score as
	// the flush.
	rank := Evaluate(mustHand(t, "Ah", "Kh", "9h", "6h", "2h", "8c", "7d"))
	assert.Equal(t, Flush, rank.Type())
}

func TestStraightFlushOnlyInOneSuit(t *testing.T) {
	// Flush in hearts, straight across suits: not a straight flush.
	rank := Evaluate(mustHand(t, "9h", "8h", "6h", "5h", "2h", "7c", "Kd"))
	assert.Equal(t, Flush, rank.Type())
}

func TestKickersBreakTies(t *testing.T) {
	cases := []struct {
		name   string
		better []string
		worse  []string
	}{
		{
			"pair rank dominates kickers",
			[]string{"3c", "3d", "5h", "4s", "2c"},
			[]string{"2c", "2d", "Ah", "Ks", "Qc"},
		},
		{
			"pair kicker",
			[]string{"10c", "10d", "Ah", "7s", "2c"},
			[]string{"10h", "10s", "Kh", "7d", "2d"},
		},
		{
			"two pair order",
			[]string{"Ac", "Ad", "2h", "2s", "3c"},
			[]string{"Kc", "Kd", "Qh", "Qs", "Ac"},
		},
		{
			"trips kicker",
			[]string{"Qc", "Qd", "Qh", "As", "2c"},
			[]string{"Qs", "Qc", "Qd", "Kc", "Jh"},
		},
		{
			"straight high card",
			[]string{"9c", "8d", "7h", "6s", "5c"},
			[]string{"8c", "7d", "6h", "5s", "4c"},
		},
		{
			"wheel is the lowest straight",
			[]string{"6c", "5d", "4h", "3s", "2c"},
			[]string{"Ac", "2d", "3h", "4s", "5c"},
		},
		{
			"quad kicker",
			[]string{"Ac", "Ad", "Ah", "As", "Kc"},
			[]string{"Ac", "Ad", "Ah", "As", "Qc"},
		},
		{
			"full house trips dominate",
			[]string{"3c", "3d", "3h", "2s", "2c"},
			[]string{"2h", "2d", "2s", "Ac", "Ad"},
		},
		{
			"high card chain",
			[]string{"Ac", "Jd", "9h", "6s", "3c"},
			[]string{"Ad", "Jh", "9s", "6c", "2d"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			better := Evaluate(mustHand(t, tc.better...))
			worse := Evaluate(mustHand(t, tc.worse...))
			assert.Equal(t, 1, Compare(better, worse))
			assert.Equal(t, -1, Compare(worse, better))
		})
	}
}

func TestCompareChop(t *testing.T) {
	a := Evaluate(mustHand(t, "9c", "8d", "7h", "6s", "5c"))
	b := Evaluate(mustHand(t, "9d", "8h", "7s", "6c", "5d"))
	assert.Equal(t, 0, Compare(a, b))
}

func TestBestRank(t *testing.T) {
	board := mustHand(t, "Kh", "9h", "2h", "7c", "3d")

	flush := BestRank(mustHand(t, "Ah", "4h"), board)
	assert.Equal(t, Flush, flush.Type())

	pair := BestRank(mustHand(t, "Kc", "4d"), board)
	assert.Equal(t, Pair, pair.Type())

	assert.Equal(t, 1, Compare(flush, pair))

	// Preflop there is no five-card hand to rank.
	assert.Equal(t, HandRank(0), BestRank(mustHand(t, "Ah", "4h"), 0))
}

func TestSevenCardBestFive(t *testing.T) {
	// Board plays: both hole cards are outkicked.
	board := mustHand(t, "Ac", "Ad", "Kh", "Ks", "Qc")
	a := BestRank(mustHand(t, "2c", "3d"), board)
	b := BestRank(mustHand(t, "4c", "5d"), board)
	assert.Equal(t, TwoPair, a.Type())
	assert.Equal(t, 0, Compare(a, b))
}
