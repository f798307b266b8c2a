package game

import "fmt"

// presetMultiple is a sizing the wizard offers as a one-tap button.
type presetMultiple struct {
	label string
	num   int
	den   int
}

var (
	betRelativePresets = []presetMultiple{{"2x", 2, 1}, {"3x", 3, 1}}
	potRelativePresets = []presetMultiple{{"1/3 pot", 1, 3}, {"1/2 pot", 1, 2}, {"1x pot", 1, 1}}
)

// AvailableActions enumerates the legal actions and sizes for a seat.
// It returns nothing for a seat that has folded or is already all-in.
//
// The menus mirror how a transcriber thinks about sizes: opening the
// preflop betting offers multiples of the big blind, facing a bet
// offers multiples of that bet, and opening a postflop street offers
// fractions of the pot. Every sized menu also carries free-form
// bounds, and a distinct all-in entry is always present.
func AvailableActions(pos Position, street Street, actions []ActionRecord, players []PlayerState, pot int, sb, bb int) []ActionOption {
	player := findPlayer(players, pos)
	if player == nil || !player.Active || player.AllIn {
		return nil
	}

	entering := enteringStacks(street, actions, players, sb, bb)
	ledger, err := replayStreet(street, streetActions(actions, street), entering, sb, bb)
	if err != nil {
		return nil
	}

	stack := ledger.remaining[pos]
	if stack <= 0 {
		return nil
	}
	contrib := ledger.contrib[pos]

	callAmount := ledger.level - contrib
	if callAmount < 0 {
		callAmount = 0
	}

	soleActor := countActingExcept(players, pos) == 0

	var opts []ActionOption

	if callAmount > 0 {
		opts = append(opts, ActionOption{Action: Fold})

		if callAmount >= stack {
			// Continuing empties the stack: this is an all-in,
			// not a call, even when it merely matches the bet.
			opts = append(opts, ActionOption{
				Action: AllIn,
				Sizes:  []BetSize{{Kind: FullStack, Label: "all-in", Amount: stack}},
				Min:    stack,
				Max:    stack,
			})
			return opts
		}

		opts = append(opts, ActionOption{Action: Call, Min: callAmount, Max: callAmount})

		minTarget := ledger.level + ledger.minIncrement
		if !soleActor && ledger.canRaise(pos) && contrib+stack > minTarget {
			opts = append(opts, ActionOption{
				Action: Raise,
				Sizes:  raiseMenu(ledger, contrib, stack),
				Min:    minTarget - contrib,
				Max:    stack,
			})
		}
	} else {
		opts = append(opts, ActionOption{Action: Check})

		if !soleActor {
			if ledger.level == 0 {
				// Unopened street: a bet of at least one big blind.
				// A stack of exactly one big blind can only bet its
				// whole stack, which the all-in entry below already
				// offers.
				if stack > bb {
					opts = append(opts, ActionOption{
						Action: Bet,
						Sizes:  betMenu(pot, stack, bb),
						Min:    bb,
						Max:    stack,
					})
				}
			} else {
				// The big blind's option: nothing to call but the
				// betting can still be raised.
				minTarget := ledger.level + ledger.minIncrement
				if ledger.canRaise(pos) && contrib+stack > minTarget {
					opts = append(opts, ActionOption{
						Action: Raise,
						Sizes:  raiseMenu(ledger, contrib, stack),
						Min:    minTarget - contrib,
						Max:    stack,
					})
				}
			}
		}
	}

	if !soleActor || callAmount > 0 {
		opts = append(opts, ActionOption{
			Action: AllIn,
			Sizes:  []BetSize{{Kind: FullStack, Label: "all-in", Amount: stack}},
			Min:    stack,
			Max:    stack,
		})
	}

	return opts
}

// raiseMenu sizes a raise facing the current contribution ceiling.
// Preflop with only the blinds posted this is the opening raise and
// the multiples apply to the big blind; otherwise they apply to the
// bet being faced. Entries below the minimum raise or that the seat
// cannot cover with chips behind are dropped (the pinned all-in
// covers those intents).
func raiseMenu(ledger *streetLedger, contrib, stack int) []BetSize {
	sizes := make([]BetSize, 0, len(betRelativePresets))
	for _, preset := range betRelativePresets {
		target := ledger.level * preset.num / preset.den
		amount := target - contrib
		if amount <= 0 || amount >= stack {
			continue
		}
		if target < ledger.level+ledger.minIncrement {
			continue
		}
		sizes = append(sizes, BetSize{Kind: BetRelative, Label: preset.label, Amount: amount})
	}
	return sizes
}

// betMenu sizes an opening bet on a postflop street as fractions of
// the pot. Entries below the minimum bet of one big blind are dropped.
func betMenu(pot, stack, bb int) []BetSize {
	sizes := make([]BetSize, 0, len(potRelativePresets))
	for _, preset := range potRelativePresets {
		amount := pot * preset.num / preset.den
		if amount < bb || amount >= stack {
			continue
		}
		sizes = append(sizes, BetSize{Kind: PotRelative, Label: preset.label, Amount: amount})
	}
	return sizes
}

// DidReopenAction reports whether the most recent aggression on the
// street was a full raise, reopening the betting for seats that had
// already acted. A short all-in leaves this false.
func DidReopenAction(street Street, actions []ActionRecord, players []PlayerState, sb, bb int) bool {
	entering := enteringStacks(street, actions, players, sb, bb)
	ledger, err := replayStreet(street, streetActions(actions, street), entering, sb, bb)
	if err != nil {
		return false
	}
	return ledger.reopened
}

// findPlayer returns the state for a seat, or nil if absent.
func findPlayer(players []PlayerState, pos Position) *PlayerState {
	for i := range players {
		if players[i].Position == pos {
			return &players[i]
		}
	}
	return nil
}

// countActingExcept counts seats other than pos that can still act.
func countActingExcept(players []PlayerState, pos Position) int {
	n := 0
	for i := range players {
		if players[i].Position != pos && players[i].CanAct() {
			n++
		}
	}
	return n
}

// optionFor returns the entry for an action in a menu, if present.
func optionFor(opts []ActionOption, action Action) (ActionOption, error) {
	for _, opt := range opts {
		if opt.Action == action {
			return opt, nil
		}
	}
	return ActionOption{}, fmt.Errorf("%w: %s", ErrIllegalAction, action)
}
