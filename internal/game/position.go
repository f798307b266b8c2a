package game

import "fmt"

// Position identifies a seat at the table by its label, not a person.
type Position string

const (
	SmallBlind  Position = "SB"
	BigBlind    Position = "BB"
	UnderTheGun Position = "UTG"
	UTGPlusOne  Position = "UTG1"
	UTGPlusTwo  Position = "UTG2"
	Middle      Position = "MP"
	Hijack      Position = "HJ"
	Cutoff      Position = "CO"
	Button      Position = "BTN"
)

// seatIndex is the clockwise table order starting from the small
// blind. Postflop action proceeds in exactly this order; preflop
// action starts two seats later (first seat past the big blind).
var seatIndex = map[Position]int{
	SmallBlind:  0,
	BigBlind:    1,
	UnderTheGun: 2,
	UTGPlusOne:  3,
	UTGPlusTwo:  4,
	Middle:      5,
	Hijack:      6,
	Cutoff:      7,
	Button:      8,
}

// seatSets lists which labels are in play for each table size.
// Heads-up the button posts the small blind, so BTN is absent.
var seatSets = map[int][]Position{
	2: {SmallBlind, BigBlind},
	3: {SmallBlind, BigBlind, Button},
	4: {SmallBlind, BigBlind, UnderTheGun, Button},
	5: {SmallBlind, BigBlind, UnderTheGun, Cutoff, Button},
	6: {SmallBlind, BigBlind, UnderTheGun, Middle, Cutoff, Button},
	7: {SmallBlind, BigBlind, UnderTheGun, Middle, Hijack, Cutoff, Button},
	8: {SmallBlind, BigBlind, UnderTheGun, UTGPlusOne, Middle, Hijack, Cutoff, Button},
	9: {SmallBlind, BigBlind, UnderTheGun, UTGPlusOne, UTGPlusTwo, Middle, Hijack, Cutoff, Button},
}

// SeatsFor returns the seat label set for a table size, in clockwise
// order starting from the small blind.
func SeatsFor(tableSize int) ([]Position, error) {
	seats, ok := seatSets[tableSize]
	if !ok {
		return nil, fmt.Errorf("unsupported table size %d: must be 2-9", tableSize)
	}
	out := make([]Position, len(seats))
	copy(out, seats)
	return out, nil
}

// ParsePosition validates a seat label.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if _, ok := seatIndex[p]; !ok {
		return "", fmt.Errorf("unknown position %q", s)
	}
	return p, nil
}

// sortSeats orders an arbitrary set of seats into clockwise table
// order starting from the small blind. Relative order is preserved
// for any subset, so folded or all-in seats can simply be dropped.
func sortSeats(seats []Position) []Position {
	out := make([]Position, len(seats))
	copy(out, seats)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && seatIndex[out[j]] < seatIndex[out[j-1]]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// ActionOrder returns the seat sequence in which action proceeds on a
// street. Postflop always starts with the small-blind seat; preflop
// starts with the first seat past the big blind and ends on the big
// blind. For heads-up tables both rotations collapse to SB then BB,
// which preflop is correct because the button posts the small blind.
func ActionOrder(street Street, seats []Position) []Position {
	order := sortSeats(seats)
	if street != Preflop {
		return order
	}

	// Rotate so the blinds act last.
	pivot := 0
	for i, p := range order {
		if seatIndex[p] >= seatIndex[UnderTheGun] {
			pivot = i
			break
		}
	}
	if pivot == 0 {
		return order
	}
	return append(append([]Position{}, order[pivot:]...), order[:pivot]...)
}
