package game

import "sort"

// SidePot is one layer of the pot and the non-folded seats that
// contributed enough to contest it.
type SidePot struct {
	Amount   int        `json:"amount"`
	Eligible []Position `json:"eligiblePositions"`
}

// PotWinner is the resolved allocation of one side pot at showdown.
type PotWinner struct {
	PotIndex int        `json:"potIndex"`
	Amount   int        `json:"potAmount"`
	Winners  []Position `json:"winners"`
}

// StreetContributions replays one street's action log into per-seat
// contributed amounts. On preflop the blinds are seeded as already
// contributed; call amounts are derived as the delta to the street's
// running ceiling, capped at what the seat has behind.
func StreetContributions(street Street, actions []ActionRecord, players []PlayerState, sb, bb int) (map[Position]int, error) {
	entering := enteringStacks(street, actions, players, sb, bb)
	ledger, err := replayStreet(street, streetActions(actions, street), entering, sb, bb)
	if err != nil {
		return nil, err
	}
	return ledger.contrib, nil
}

// IsStreetClosed reports whether a street's betting is finished:
// every acting seat has acted, and either nothing was bet or every
// acting seat has matched the ceiling (or is out of chips). A street
// with zero acting seats is vacuously closed, which is what triggers
// the automatic run-out when everyone left is all-in.
func IsStreetClosed(street Street, actions []ActionRecord, players []PlayerState, sb, bb int) bool {
	acting := actingSeats(players)
	if len(acting) == 0 {
		return true
	}

	entering := enteringStacks(street, actions, players, sb, bb)
	ledger, err := replayStreet(street, streetActions(actions, street), entering, sb, bb)
	if err != nil {
		return false
	}

	for _, pos := range acting {
		if _, acted := ledger.lastActed[pos]; !acted {
			return false
		}
		if ledger.level == 0 {
			continue
		}
		if ledger.contrib[pos] != ledger.level && ledger.remaining[pos] > 0 {
			return false
		}
	}

	// A seat that acted before the latest aggression is still owed a
	// turn even when its contribution math happens to line up.
	if _, owed := NextToAct(street, acting, actions, players, sb, bb); owed {
		return false
	}

	return true
}

// SidePots partitions the pot into layers at each unique lifetime
// contribution level among the non-folded seats, ascending. Folded
// seats' chips still count toward every layer they reached, but
// folding forfeits eligibility. Equal contributions all around
// degenerate to a single pot.
func SidePots(actions []ActionRecord, players []PlayerState, sb, bb int) ([]SidePot, error) {
	ledger, err := replayHand(actions, players, sb, bb)
	if err != nil {
		return nil, err
	}

	levels := make([]int, 0, len(players))
	seen := make(map[int]bool)
	for i := range players {
		if !players[i].Active {
			continue
		}
		c := ledger.total[players[i].Position]
		if c > 0 && !seen[c] {
			seen[c] = true
			levels = append(levels, c)
		}
	}
	sort.Ints(levels)

	pots := make([]SidePot, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := SidePot{}
		for i := range players {
			c := ledger.total[players[i].Position]
			pot.Amount += min(c, level) - min(c, prev)
			if players[i].Active && c >= level {
				pot.Eligible = append(pot.Eligible, players[i].Position)
			}
		}
		pot.Eligible = sortSeats(pot.Eligible)
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		prev = level
	}

	return pots, nil
}

// Winnings splits each pot's amount evenly among its declared
// winners. Integer division leaves a remainder of at most
// len(winners)-1 chips per pot; the odd chips go to the
// earliest-position winner, which keeps repeated splits consistent.
func Winnings(pots []SidePot, winnersPerPot [][]Position) []PotWinner {
	out := make([]PotWinner, 0, len(pots))
	for i, pot := range pots {
		var winners []Position
		if i < len(winnersPerPot) {
			winners = sortSeats(winnersPerPot[i])
		}
		out = append(out, PotWinner{PotIndex: i, Amount: pot.Amount, Winners: winners})
	}
	return out
}

// Payouts flattens pot allocations into per-seat totals.
func Payouts(potWinners []PotWinner) map[Position]int {
	payouts := make(map[Position]int)
	for _, pw := range potWinners {
		if len(pw.Winners) == 0 {
			continue
		}
		share := pw.Amount / len(pw.Winners)
		remainder := pw.Amount % len(pw.Winners)
		for i, pos := range sortSeats(pw.Winners) {
			payouts[pos] += share
			if i == 0 {
				payouts[pos] += remainder
			}
		}
	}
	return payouts
}

// actingSeats lists the seats that can still act, in table order.
func actingSeats(players []PlayerState) []Position {
	seats := make([]Position, 0, len(players))
	for i := range players {
		if players[i].CanAct() {
			seats = append(seats, players[i].Position)
		}
	}
	return sortSeats(seats)
}
