package game

import (
	"fmt"
	"time"
)

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// IsAggressive reports whether the action sets a new contribution
// ceiling that other players must match.
func (a Action) IsAggressive() bool {
	return a == Bet || a == Raise || a == AllIn
}

// Sized reports whether the action carries an explicit amount.
// Call and all-in amounts are derived from the log, never recorded.
func (a Action) Sized() bool {
	return a == Bet || a == Raise
}

// ParseAction parses an action name as written in transcripts.
func ParseAction(name string) (Action, error) {
	switch name {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "bet":
		return Bet, nil
	case "raise":
		return Raise, nil
	case "allin", "all-in", "all_in":
		return AllIn, nil
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// ActionRecord is one immutable fact in the hand's append-only log.
// The ordered records for a street are the sole source of truth for
// that street's betting state; everything else is rederived from them.
type ActionRecord struct {
	Position  Position  `json:"position"`
	Action    Action    `json:"action"`
	Street    Street    `json:"street"`
	Amount    int       `json:"amount,omitempty"` // chips added by this action, only for bet/raise
	Timestamp time.Time `json:"timestamp"`
}

// SizeKind tags how a bet size was derived.
type SizeKind int

const (
	BetRelative SizeKind = iota // multiple of the current bet or big blind
	PotRelative                 // fraction of the pot
	FullStack                   // the seat's entire remaining stack
)

func (k SizeKind) String() string {
	return [...]string{"bet-relative", "pot-relative", "full-stack"}[k]
}

// BetSize is one entry of a sizing menu. Amount is always resolved to
// the absolute number of chips the seat would put in with this action,
// on top of anything it already contributed this street.
type BetSize struct {
	Kind   SizeKind
	Label  string // e.g. "2x", "1/2 pot"
	Amount int
}

// ActionOption is one legal action for the seat to act, with its
// sizing menu where applicable. Min and Max bound the free-form
// amount a transcriber may enter for sized actions.
type ActionOption struct {
	Action Action
	Sizes  []BetSize
	Min    int
	Max    int
}

// streetActions filters a log down to a single street, preserving order.
func streetActions(actions []ActionRecord, street Street) []ActionRecord {
	out := make([]ActionRecord, 0, len(actions))
	for _, a := range actions {
		if a.Street == street {
			out = append(out, a)
		}
	}
	return out
}
