package deck

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs], low bits first.
type Card uint64

// Hand is also a uint64 but can contain multiple cards.
// Multiple cards are represented by multiple bits set.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// NewCard creates a card from rank and suit
func NewCard(rank, suit uint8) Card {
	offset := suit*13 + rank
	return Card(1) << offset
}

// BitPosition returns which bit position this card occupies (0-51)
func (c Card) BitPosition() uint8 {
	if c == 0 {
		return 255 // Invalid card
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	pos := c.BitPosition()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	pos := c.BitPosition()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	ranks := "23456789TJQKA"
	suits := "cdhs"

	rank := c.Rank()
	suit := c.Suit()

	if rank > 12 || suit > 3 {
		return "??"
	}

	return string(ranks[rank]) + string(suits[suit])
}

// ParseCard parses a card string into a Card. Both the compact form
// ("As", "Td") and the form a transcriber is likely to type ("A♠",
// "10♦") are accepted.
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 {
		return 0, fmt.Errorf("empty card string")
	}

	var rank uint8
	switch runes[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	case '1':
		// "10" is the only rank written with two characters
		if len(runes) < 2 || runes[1] != '0' {
			return 0, fmt.Errorf("invalid rank in card %q", s)
		}
		rank = Ten
		runes = runes[1:]
	default:
		return 0, fmt.Errorf("invalid rank in card %q", s)
	}
	rest := runes[1:]

	if len(rest) != 1 {
		return 0, fmt.Errorf("invalid card string %q", s)
	}

	var suit uint8
	switch rest[0] {
	case 'c', 'C', '♣':
		suit = Clubs
	case 'd', 'D', '♦':
		suit = Diamonds
	case 'h', 'H', '♥':
		suit = Hearts
	case 's', 'S', '♠':
		suit = Spades
	default:
		return 0, fmt.Errorf("invalid suit in card %q", s)
	}

	return NewCard(rank, suit), nil
}

// NewHand creates a hand from multiple cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// ParseHand parses a list of card strings into a Hand. Duplicate
// cards are rejected since a transcribed hand can never contain them.
func ParseHand(cards ...string) (Hand, error) {
	var h Hand
	for _, s := range cards {
		c, err := ParseCard(s)
		if err != nil {
			return 0, err
		}
		if h.HasCard(c) {
			return 0, fmt.Errorf("duplicate card %q", s)
		}
		h |= Hand(c)
	}
	return h, nil
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// Cards returns the cards in the hand, lowest bit first
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	v := uint64(h)
	for v != 0 {
		low := v & -v
		cards = append(cards, Card(low))
		v &^= low
	}
	return cards
}

// String returns the cards joined with spaces (e.g., "2d Kh As")
func (h Hand) String() string {
	cards := h.Cards()
	strs := make([]string, len(cards))
	for i, c := range cards {
		strs[i] = c.String()
	}
	return strings.Join(strs, " ")
}

// SuitMask returns the cards of a specific suit as a bitmask
func (h Hand) SuitMask(suit uint8) uint16 {
	offset := suit * 13
	return uint16((h >> offset) & 0x1FFF)
}

// RankMask returns a bitmask of which ranks are present (for straight detection)
func (h Hand) RankMask() uint16 {
	mask := uint16(0)
	for suit := uint8(0); suit < 4; suit++ {
		mask |= h.SuitMask(suit)
	}
	return mask
}
