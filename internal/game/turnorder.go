package game

// NextToAct computes which seat is owed an action on a street, given
// the seats still able to act (folded and all-in seats must already be
// excluded) and the street's action log. The second return is false
// when nobody is owed an action and the street is contestable-closed.
//
// With no aggression yet this street, the first acting seat in street
// order that has not acted is up; a pure check-around ends the street.
// After aggression, every seat from the most recent aggressor onward
// (wrapping around the table, aggressor last) that has not acted since
// that aggression is owed an action: a short all-in still obliges the
// seats before it to match the higher total, even though it does not
// reopen raising for them.
func NextToAct(street Street, acting []Position, actions []ActionRecord, players []PlayerState, sb, bb int) (Position, bool) {
	acts := streetActions(actions, street)

	entering := enteringStacks(street, actions, players, sb, bb)
	ledger, err := replayStreet(street, acts, entering, sb, bb)
	if err != nil {
		return "", false
	}

	if ledger.lastAggr < 0 {
		for _, pos := range ActionOrder(street, acting) {
			if _, acted := ledger.lastActed[pos]; !acted {
				return pos, true
			}
		}
		return "", false
	}

	aggressor := acts[ledger.lastAggr].Position

	// Scan seats in table order starting one past the aggressor,
	// wrapping around so the aggressor is considered last. The
	// aggressor's own aggression counts as its action, so it is
	// never owed another turn by this scan.
	scan := append([]Position{}, acting...)
	if !containsSeat(scan, aggressor) {
		scan = append(scan, aggressor)
	}
	order := ActionOrder(street, scan)
	start := 0
	for i, pos := range order {
		if pos == aggressor {
			start = i + 1
			break
		}
	}

	for i := 0; i < len(order); i++ {
		pos := order[(start+i)%len(order)]
		if !containsSeat(acting, pos) {
			continue
		}
		if !ledger.actedSince(pos, ledger.lastAggr) {
			return pos, true
		}
	}
	return "", false
}

// enteringStacks computes each seat's stack at the start of a street
// by replaying all earlier streets from the initial stacks.
func enteringStacks(street Street, actions []ActionRecord, players []PlayerState, sb, bb int) map[Position]int {
	entering := make(map[Position]int, len(players))
	for i := range players {
		entering[players[i].Position] = players[i].InitialStack
	}
	for s := Preflop; s < street; s++ {
		ledger, err := replayStreet(s, streetActions(actions, s), entering, sb, bb)
		if err != nil {
			return entering
		}
		entering = ledger.remaining
	}
	return entering
}

func containsSeat(seats []Position, pos Position) bool {
	for _, p := range seats {
		if p == pos {
			return true
		}
	}
	return false
}
