package game

// NoAction marks a seat that has not acted yet this hand.
const NoAction Action = -1

// PlayerState tracks one seat through a hand.
//
// Invariants: Active goes false once the seat folds and never resets
// mid-hand; AllIn goes true once the stack hits zero or an explicit
// all-in is recorded and is sticky for the rest of the hand; Stack
// only ever decreases during a hand.
type PlayerState struct {
	Position     Position `json:"position"`
	Stack        int      `json:"stack"`
	InitialStack int      `json:"initialStack"`
	Active       bool     `json:"active"`
	AllIn        bool     `json:"isAllIn"`
	LastAction   Action   `json:"lastAction"`
}

// CanAct reports whether the seat still has decisions to make.
func (p *PlayerState) CanAct() bool {
	return p.Active && !p.AllIn && p.Stack > 0
}
