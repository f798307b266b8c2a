package game

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// Next returns the street that follows. River has no successor and
// returns itself.
func (s Street) Next() Street {
	if s >= River {
		return River
	}
	return s + 1
}

// ParseStreet parses a street name as written in transcripts.
func ParseStreet(name string) (Street, bool) {
	switch name {
	case "preflop":
		return Preflop, true
	case "flop":
		return Flop, true
	case "turn":
		return Turn, true
	case "river":
		return River, true
	}
	return 0, false
}
