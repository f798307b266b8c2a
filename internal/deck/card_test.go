package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	as := NewCard(Ace, Spades)
	assert.Equal(t, Ace, as.Rank())
	assert.Equal(t, Spades, as.Suit())
	assert.Equal(t, "As", as.String())

	tc := NewCard(Two, Clubs)
	assert.Equal(t, uint8(0), tc.BitPosition(), "2c is the lowest bit")
}

func TestParseCard(t *testing.T) {
	cases := []struct {
		in   string
		rank uint8
		suit uint8
	}{
		{"As", Ace, Spades},
		{"as", Ace, Spades},
		{"Td", Ten, Diamonds},
		{"10d", Ten, Diamonds},
		{"A♠", Ace, Spades},
		{"10♦", Ten, Diamonds},
		{"2c", Two, Clubs},
		{" Kh ", King, Hearts},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseCard(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.rank, c.Rank())
			assert.Equal(t, tc.suit, c.Suit())
		})
	}

	for _, bad := range []string{"", "A", "Ax", "1d", "100d", "AsK"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, "card %q", bad)
	}
}

func TestParseHandRejectsDuplicates(t *testing.T) {
	_, err := ParseHand("As", "Kd", "As")
	require.Error(t, err)

	// Same card, different spelling.
	_, err = ParseHand("10d", "Td")
	require.Error(t, err)
}

func TestHandMasks(t *testing.T) {
	h, err := ParseHand("As", "Ks", "Ad", "2c")
	require.NoError(t, err)

	assert.Equal(t, 4, h.CountCards())
	assert.True(t, h.HasCard(NewCard(Ace, Spades)))
	assert.False(t, h.HasCard(NewCard(Ace, Clubs)))

	// Spades hold the ace and king bits.
	assert.Equal(t, uint16(1<<Ace|1<<King), h.SuitMask(Spades))
	assert.Equal(t, uint16(1<<Ace), h.SuitMask(Diamonds))
	assert.Equal(t, uint16(1<<Ace|1<<King|1<<Two), h.RankMask())
}

func TestHandString(t *testing.T) {
	h, err := ParseHand("As", "2c", "Kh")
	require.NoError(t, err)
	// Lowest bit first: clubs before hearts before spades.
	assert.Equal(t, "2c Kh As", h.String())
}
