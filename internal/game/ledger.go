package game

import "fmt"

// streetLedger is the betting state of one street, rederived from the
// action log on every call. Nothing in here is cached across calls;
// the log is the sole source of truth.
type streetLedger struct {
	contrib       map[Position]int // chips contributed this street, blinds seeded preflop
	remaining     map[Position]int // stack behind after the street's actions
	level         int              // current contribution ceiling, 0 = unopened
	minIncrement  int              // size of the last full raise increment
	lastAggr      int              // index in the street log of the most recent aggression, -1 if none
	lastFullRaise int              // index of the last aggression that reopened action, -1 if none
	lastActed     map[Position]int // index of each seat's most recent action this street
	reopened      bool             // whether the most recent aggression was a full raise
}

// maxContribution returns the street's highest contribution.
func (l *streetLedger) maxContribution() int {
	max := 0
	for _, c := range l.contrib {
		if c > max {
			max = c
		}
	}
	return max
}

// actedSince reports whether the seat acted at or after the given
// log index. Posted blinds are contribution seeds, not actions, so
// the blinds still get their option from this.
func (l *streetLedger) actedSince(pos Position, idx int) bool {
	last, ok := l.lastActed[pos]
	return ok && last >= idx
}

// canRaise applies the action-reopening rule: a seat that already
// acted this street may only raise again if a full raise (increment
// at least the last full raise increment) happened after its action.
// A short all-in between them does not reopen.
func (l *streetLedger) canRaise(pos Position) bool {
	last, ok := l.lastActed[pos]
	if !ok {
		return true
	}
	return l.lastFullRaise > last
}

// replayStreet folds one street's records into a ledger. entering
// holds each seat's stack at the start of the street (for preflop,
// the initial stack before blinds). Call and all-in amounts are
// derived here rather than read from the records, capped at what the
// seat actually has.
func replayStreet(street Street, acts []ActionRecord, entering map[Position]int, sb, bb int) (*streetLedger, error) {
	l := &streetLedger{
		contrib:       make(map[Position]int, len(entering)),
		remaining:     make(map[Position]int, len(entering)),
		minIncrement:  bb,
		lastAggr:      -1,
		lastFullRaise: -1,
		lastActed:     make(map[Position]int),
	}
	for pos, stack := range entering {
		l.remaining[pos] = stack
	}

	if street == Preflop {
		for _, blind := range []struct {
			pos    Position
			amount int
		}{{SmallBlind, sb}, {BigBlind, bb}} {
			stack, ok := l.remaining[blind.pos]
			if !ok {
				continue
			}
			paid := min(blind.amount, stack)
			l.contrib[blind.pos] = paid
			l.remaining[blind.pos] -= paid
		}
		// The ceiling is the full big blind even when the big
		// blind seat is short.
		l.level = bb
	}

	for i, rec := range acts {
		if rec.Street != street {
			return nil, fmt.Errorf("%w: %s record in %s replay", ErrInconsistentReplay, rec.Street, street)
		}
		pos := rec.Position
		stack, ok := l.remaining[pos]
		if !ok {
			return nil, fmt.Errorf("%w: unknown seat %s", ErrInconsistentReplay, pos)
		}

		switch rec.Action {
		case Fold, Check:
			// No chips move.

		case Call:
			delta := l.level - l.contrib[pos]
			if delta < 0 {
				delta = 0
			}
			delta = min(delta, stack)
			l.contrib[pos] += delta
			l.remaining[pos] -= delta

		case Bet, Raise:
			if rec.Amount <= 0 {
				return nil, fmt.Errorf("%w: %s by %s with amount %d", ErrInconsistentReplay, rec.Action, pos, rec.Amount)
			}
			if rec.Amount > stack {
				return nil, fmt.Errorf("%w: %s by %s of %d exceeds stack %d", ErrInconsistentReplay, rec.Action, pos, rec.Amount, stack)
			}
			l.contrib[pos] += rec.Amount
			l.remaining[pos] -= rec.Amount
			l.applyAggression(pos, i)

		case AllIn:
			l.contrib[pos] += stack
			l.remaining[pos] = 0
			if l.contrib[pos] > l.level {
				l.applyAggression(pos, i)
			}

		default:
			return nil, fmt.Errorf("%w: unknown action %d", ErrInconsistentReplay, rec.Action)
		}

		l.lastActed[pos] = i
	}

	return l, nil
}

// applyAggression raises the contribution ceiling to the seat's new
// total and decides whether the increment reopens action. A full
// raise resets the minimum increment; a short all-in leaves both the
// minimum increment and the reopening point untouched, so a later
// full raise still reopens action for seats in between.
func (l *streetLedger) applyAggression(pos Position, idx int) {
	newLevel := l.contrib[pos]
	increment := newLevel - l.level
	if increment >= l.minIncrement {
		l.minIncrement = increment
		l.lastFullRaise = idx
		l.reopened = true
	} else {
		l.reopened = false
	}
	l.level = newLevel
	l.lastAggr = idx
}

// handLedger is the full-hand replay: one streetLedger per street up
// to and including the current one, plus lifetime totals.
type handLedger struct {
	streets map[Street]*streetLedger
	total   map[Position]int // lifetime contribution, capped at the initial stack
}

// replayHand rederives every street's ledger from scratch. Stacks
// enter each street as the initial stacks minus everything
// contributed on earlier streets.
func replayHand(actions []ActionRecord, players []PlayerState, sb, bb int) (*handLedger, error) {
	entering := make(map[Position]int, len(players))
	for i := range players {
		entering[players[i].Position] = players[i].InitialStack
	}

	h := &handLedger{
		streets: make(map[Street]*streetLedger, 4),
		total:   make(map[Position]int, len(players)),
	}

	for street := Preflop; street <= River; street++ {
		l, err := replayStreet(street, streetActions(actions, street), entering, sb, bb)
		if err != nil {
			return nil, err
		}
		h.streets[street] = l
		entering = l.remaining
	}

	for i := range players {
		pos := players[i].Position
		total := 0
		for street := Preflop; street <= River; street++ {
			total += h.streets[street].contrib[pos]
		}
		// Guard against a blind that was never debited from the
		// stack ledger at hand start.
		h.total[pos] = min(total, players[i].InitialStack)
	}

	return h, nil
}

// potTotal is the sum of every seat's lifetime contribution.
func (h *handLedger) potTotal() int {
	total := 0
	for _, c := range h.total {
		total += c
	}
	return total
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
