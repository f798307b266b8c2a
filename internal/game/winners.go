package game

import (
	"fmt"

	"github.com/handscribe/handscribe/internal/deck"
	"github.com/handscribe/handscribe/internal/evaluator"
)

// ShowdownWinners resolves every side pot against the known hole
// cards. A pot with a single eligible seat needs no cards; otherwise
// every eligible seat must have hole cards on record, since guessing
// a winner from partial information would silently misallocate chips.
func (s *GameState) ShowdownWinners(holeCards map[Position]deck.Hand) ([]PotWinner, error) {
	pots, err := s.SidePots()
	if err != nil {
		return nil, err
	}

	winnersPerPot := make([][]Position, len(pots))
	for i, pot := range pots {
		if len(pot.Eligible) == 1 {
			winnersPerPot[i] = pot.Eligible
			continue
		}

		best := evaluator.HandRank(0)
		var winners []Position
		for _, pos := range pot.Eligible {
			hole, ok := holeCards[pos]
			if !ok {
				return nil, fmt.Errorf("no hole cards recorded for %s in pot %d", pos, i)
			}
			rank := evaluator.BestRank(hole, s.Board)
			if rank == 0 {
				return nil, fmt.Errorf("cannot rank %s with %d board cards", pos, s.Board.CountCards())
			}
			switch evaluator.Compare(rank, best) {
			case 1:
				best = rank
				winners = []Position{pos}
			case 0:
				winners = append(winners, pos)
			}
		}
		winnersPerPot[i] = winners
	}

	return Winnings(pots, winnersPerPot), nil
}

// DeclaredWinners allocates every pot to winners the transcriber
// declared, for hands where villain cards were never shown. Each
// winner must be eligible for the pots it takes.
func (s *GameState) DeclaredWinners(winners []Position) ([]PotWinner, error) {
	pots, err := s.SidePots()
	if err != nil {
		return nil, err
	}

	winnersPerPot := make([][]Position, len(pots))
	for i, pot := range pots {
		var eligible []Position
		for _, pos := range winners {
			if containsSeat(pot.Eligible, pos) {
				eligible = append(eligible, pos)
			}
		}
		if len(eligible) == 0 {
			// Nobody declared can take this layer; it defaults to
			// the seats that contested it.
			eligible = pot.Eligible
		}
		winnersPerPot[i] = eligible
	}

	return Winnings(pots, winnersPerPot), nil
}
