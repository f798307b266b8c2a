// Package evaluator ranks the best five-card poker hand that can be
// made from five to seven cards. Rankings are encoded so that a plain
// integer comparison orders any two hands correctly, including kickers.
package evaluator

import (
	"math/bits"

	"github.com/handscribe/handscribe/internal/deck"
)

// HandRank represents the strength of a poker hand.
// The high 4 bits are the hand category, the remaining bits break ties.
type HandRank uint32

const (
	HighCard HandRank = iota << 28
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Type returns the category of the hand (pair, flush, etc.)
func (hr HandRank) Type() HandRank {
	return hr & 0xF0000000
}

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	switch hr.Type() {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		if hr&0x0FFFFFFF == HandRank(deck.Ace) {
			return "Royal Flush"
		}
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// BestRank evaluates the best five-card hand from hole cards plus the
// board. Returns 0 when fewer than five cards are available, since no
// five-card hand exists yet.
func BestRank(holeCards, board deck.Hand) HandRank {
	return Evaluate(holeCards | board)
}

// Evaluate ranks a hand of five to seven cards. Flushes are checked
// before straights so that a seven-card hand containing both resolves
// to the flush; the straight-flush check happens inside the flush
// branch on the flush suit only.
func Evaluate(hand deck.Hand) HandRank {
	n := hand.CountCards()
	if n < 5 || n > 7 {
		return 0
	}

	flushSuit := checkFlush(hand)
	if flushSuit >= 0 {
		flushCards := flushMask(hand, uint8(flushSuit))
		if high := straightHigh(flushCards); high > 0 {
			return StraightFlush | HandRank(high)
		}
		return Flush | HandRank(topCards(flushCards, 5))
	}

	rankCounts := countRanks(hand)

	if quad := findNOfAKind(rankCounts, 4); quad >= 0 {
		kicker := findKicker(rankCounts, []uint8{uint8(quad)})
		return FourOfAKind | (HandRank(quad) << 4) | HandRank(kicker)
	}

	trips := findNOfAKind(rankCounts, 3)
	if trips >= 0 {
		if pair := findPairBelowTrips(rankCounts, uint8(trips)); pair >= 0 {
			return FullHouse | (HandRank(trips) << 4) | HandRank(pair)
		}
	}

	if high := straightHigh(hand.RankMask()); high > 0 {
		return Straight | HandRank(high)
	}

	if trips >= 0 {
		kickers := findKickers(rankCounts, []uint8{uint8(trips)}, 2)
		return ThreeOfAKind | (HandRank(trips) << 13) | HandRank(kickers)
	}

	pair1 := findNOfAKind(rankCounts, 2)
	if pair1 >= 0 {
		pair2 := findNOfAKindExcept(rankCounts, 2, uint8(pair1))
		if pair2 >= 0 {
			kicker := findKicker(rankCounts, []uint8{uint8(pair1), uint8(pair2)})
			return TwoPair | (HandRank(pair1) << 8) | (HandRank(pair2) << 4) | HandRank(kicker)
		}
		kickers := findKickers(rankCounts, []uint8{uint8(pair1)}, 3)
		return Pair | (HandRank(pair1) << 13) | HandRank(kickers)
	}

	kickers := findKickers(rankCounts, nil, 5)
	return HighCard | HandRank(kickers)
}

// Compare returns 1 if a beats b, -1 if b beats a, 0 for a chop.
func Compare(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// countRanks counts how many of each rank the hand holds
func countRanks(hand deck.Hand) [13]uint8 {
	var counts [13]uint8
	for suit := uint8(0); suit < 4; suit++ {
		suitMask := hand.SuitMask(suit)
		for rank := uint8(0); rank < 13; rank++ {
			if suitMask&(1<<rank) != 0 {
				counts[rank]++
			}
		}
	}
	return counts
}

// findNOfAKind finds the highest rank with exactly n cards
func findNOfAKind(counts [13]uint8, n uint8) int {
	for rank := 12; rank >= 0; rank-- {
		if counts[rank] == n {
			return rank
		}
	}
	return -1
}

// findNOfAKindExcept finds the highest rank with exactly n cards, excluding a specific rank
func findNOfAKindExcept(counts [13]uint8, n uint8, except uint8) int {
	for rank := 12; rank >= 0; rank-- {
		if uint8(rank) != except && counts[rank] == n {
			return rank
		}
	}
	return -1
}

// findPairBelowTrips finds the best pair usable under a full house.
// A second set of trips counts as a pair here (three players' worth of
// board pairings can produce two trips in seven cards).
func findPairBelowTrips(counts [13]uint8, trips uint8) int {
	for rank := 12; rank >= 0; rank-- {
		if uint8(rank) != trips && counts[rank] >= 2 {
			return rank
		}
	}
	return -1
}

// findKicker finds the highest kicker excluding used ranks
func findKicker(counts [13]uint8, used []uint8) uint8 {
	isUsed := make(map[uint8]bool)
	for _, r := range used {
		isUsed[r] = true
	}

	for rank := uint8(12); rank < 13; rank-- { // Will wrap around after 0
		if !isUsed[rank] && counts[rank] > 0 {
			return rank
		}
	}
	return 0
}

// findKickers returns a rank bitmask of the top n kickers excluding used ranks
func findKickers(counts [13]uint8, used []uint8, n int) uint16 {
	isUsed := make(map[uint8]bool)
	for _, r := range used {
		isUsed[r] = true
	}

	kickers := uint16(0)
	found := 0
	for rank := uint8(12); rank < 13 && found < n; rank-- { // Will wrap around after 0
		if !isUsed[rank] && counts[rank] > 0 {
			kickers |= uint16(1) << rank
			found++
		}
	}
	return kickers
}

// checkFlush returns the suit if there's a flush, -1 otherwise
func checkFlush(hand deck.Hand) int {
	for suit := uint8(0); suit < 4; suit++ {
		if bits.OnesCount16(hand.SuitMask(suit)) >= 5 {
			return int(suit)
		}
	}
	return -1
}

// flushMask returns the rank bitmask of the cards in the given suit
func flushMask(hand deck.Hand, suit uint8) uint16 {
	return hand.SuitMask(suit)
}

// straightHigh checks a rank bitmask for a straight and returns the
// high card rank, or 0 when there is none. The wheel (A-2-3-4-5)
// scores as 5-high.
func straightHigh(rankMask uint16) uint8 {
	for high := uint8(12); high >= 4; high-- {
		straightMask := uint16(0x1F) << (high - 4)
		if rankMask&straightMask == straightMask {
			return high
		}
	}

	// Ace-low straight: ace plus 2-3-4-5
	if rankMask&0x100F == 0x100F {
		return 3 // 5-high
	}

	return 0
}

// topCards returns a bitmask of the top n ranks present in the mask
func topCards(rankMask uint16, n int) uint16 {
	result := uint16(0)
	found := 0

	for rank := uint8(12); rank < 13 && found < n; rank-- {
		if rankMask&(1<<rank) != 0 {
			result |= 1 << rank
			found++
		}
	}
	return result
}
