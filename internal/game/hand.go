package game

import (
	"fmt"

	"github.com/handscribe/handscribe/internal/deck"
)

// GameState is a snapshot of a hand in progress. Applying an action
// always produces a new snapshot; prior snapshots are never mutated,
// so the caller gets undo and replay for free by keeping old values.
//
// Pot, stacks and LastBet are derived from the action log on every
// application rather than patched incrementally. That is deliberate:
// the log is the single source of truth and the accounting must never
// drift from it.
type GameState struct {
	Street     Street         `json:"street"`
	Players    []PlayerState  `json:"players"`
	Actions    []ActionRecord `json:"actions"`
	Pot        int            `json:"pot"`
	LastBet    int            `json:"lastBet,omitempty"` // current street's contribution ceiling, 0 = none
	Board      deck.Hand      `json:"-"`
	SmallBlind int            `json:"smallBlind"`
	BigBlind   int            `json:"bigBlind"`
	Hero       Position       `json:"heroPosition,omitempty"`
	HeroCards  deck.Hand      `json:"-"`
	Complete   bool           `json:"complete"`
}

// HandOption configures a new hand.
type HandOption func(*handConfig)

type handConfig struct {
	smallBlind int
	bigBlind   int
	uniform    int
	stacks     map[Position]int
	hero       Position
	heroCards  deck.Hand
}

// WithBlinds sets the blind sizes. The defaults are 1 and 2, which
// makes a chip worth half a big blind so typical written sizes
// ("raise to 3bb") stay whole numbers.
func WithBlinds(smallBlind, bigBlind int) HandOption {
	return func(c *handConfig) {
		c.smallBlind = smallBlind
		c.bigBlind = bigBlind
	}
}

// WithUniformStacks gives every seat the same starting stack.
func WithUniformStacks(chips int) HandOption {
	return func(c *handConfig) { c.uniform = chips }
}

// WithStacks sets individual starting stacks by seat.
func WithStacks(stacks map[Position]int) HandOption {
	return func(c *handConfig) { c.stacks = stacks }
}

// WithHero marks the transcriber's own seat and hole cards.
func WithHero(pos Position, cards deck.Hand) HandOption {
	return func(c *handConfig) {
		c.hero = pos
		c.heroCards = cards
	}
}

// NewHand creates the starting snapshot for a table size: blinds
// posted, stacks debited, pot equal to the sum of the blinds.
func NewHand(tableSize int, opts ...HandOption) (*GameState, error) {
	seats, err := SeatsFor(tableSize)
	if err != nil {
		return nil, err
	}

	cfg := handConfig{smallBlind: 1, bigBlind: 2, uniform: 200}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bigBlind <= cfg.smallBlind {
		return nil, fmt.Errorf("big blind %d must exceed small blind %d", cfg.bigBlind, cfg.smallBlind)
	}

	players := make([]PlayerState, 0, len(seats))
	for _, pos := range seats {
		stack := cfg.uniform
		if cfg.stacks != nil {
			s, ok := cfg.stacks[pos]
			if !ok {
				return nil, fmt.Errorf("no starting stack for seat %s", pos)
			}
			stack = s
		}
		if stack <= 0 {
			return nil, fmt.Errorf("seat %s has no chips", pos)
		}
		players = append(players, PlayerState{
			Position:     pos,
			Stack:        stack,
			InitialStack: stack,
			Active:       true,
			LastAction:   NoAction,
		})
	}
	if cfg.hero != "" && findPlayer(players, cfg.hero) == nil {
		return nil, fmt.Errorf("hero seat %s not at a %d-handed table", cfg.hero, tableSize)
	}

	s := &GameState{
		Street:     Preflop,
		Players:    players,
		SmallBlind: cfg.smallBlind,
		BigBlind:   cfg.bigBlind,
		Hero:       cfg.hero,
		HeroCards:  cfg.heroCards,
	}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// clone copies the snapshot. Players and the action log get fresh
// backing arrays; everything else is a value.
func (s *GameState) clone() *GameState {
	next := *s
	next.Players = make([]PlayerState, len(s.Players))
	copy(next.Players, s.Players)
	next.Actions = make([]ActionRecord, len(s.Actions), len(s.Actions)+1)
	copy(next.Actions, s.Actions)
	return &next
}

// NextToAct returns the seat owed an action, or false when the
// current street is closed (or the hand is over).
func (s *GameState) NextToAct() (Position, bool) {
	if s.Complete || s.countActive() <= 1 {
		return "", false
	}
	return NextToAct(s.Street, actingSeats(s.Players), s.Actions, s.Players, s.SmallBlind, s.BigBlind)
}

// AvailableActions enumerates the legal actions for a seat under the
// current snapshot.
func (s *GameState) AvailableActions(pos Position) []ActionOption {
	return AvailableActions(pos, s.Street, s.Actions, s.Players, s.Pot, s.SmallBlind, s.BigBlind)
}

// Validate rejects a record before it reaches Apply: out-of-turn
// submissions, actions missing from the seat's legality menu, and
// sized actions outside the menu's bounds. Callers re-prompt on any
// of these instead of applying partially.
func (s *GameState) Validate(rec ActionRecord) error {
	if rec.Street != s.Street {
		return fmt.Errorf("%w: record is for %s but the hand is on %s", ErrOutOfTurn, rec.Street, s.Street)
	}

	next, ok := s.NextToAct()
	if !ok {
		return fmt.Errorf("%w: no action pending", ErrOutOfTurn)
	}
	if next != rec.Position {
		return fmt.Errorf("%w: %s acted but %s is next", ErrOutOfTurn, rec.Position, next)
	}

	opt, err := optionFor(s.AvailableActions(rec.Position), rec.Action)
	if err != nil {
		return err
	}
	if rec.Action.Sized() {
		if rec.Amount < opt.Min || rec.Amount > opt.Max {
			return fmt.Errorf("%w: %s of %d outside [%d, %d]", ErrMalformedSize, rec.Action, rec.Amount, opt.Min, opt.Max)
		}
	}
	return nil
}

// Apply folds one validated record into the snapshot and returns the
// successor state. It performs no legality re-check; validation is
// the caller's responsibility via Validate. Street advancement
// happens here: when the street closes the hand moves on and the
// contribution ceiling resets, and when no acting seats remain the
// hand runs out to the river with no further betting.
func (s *GameState) Apply(rec ActionRecord) (*GameState, error) {
	next := s.clone()
	next.Actions = append(next.Actions, rec)

	player := findPlayer(next.Players, rec.Position)
	if player == nil {
		return nil, fmt.Errorf("%w: unknown seat %s", ErrInconsistentReplay, rec.Position)
	}
	if !player.Active || player.AllIn {
		return nil, fmt.Errorf("%w: %s acted after folding or going all-in", ErrInconsistentReplay, rec.Position)
	}

	player.LastAction = rec.Action
	switch rec.Action {
	case Fold:
		player.Active = false
	case AllIn:
		player.AllIn = true
	}

	// Rederive pot, stacks and the betting ceiling from the log.
	if err := next.refresh(); err != nil {
		return nil, err
	}

	if next.countActive() <= 1 {
		// The hand ends by folds; stay on this street and let the
		// caller assign the pot.
		return next, nil
	}

	// A closed street advances the hand and resets the contribution
	// ceiling. With zero acting seats every later street is vacuously
	// closed too, so this loop is also the all-in run-out to the river.
	for next.Street < River && IsStreetClosed(next.Street, next.Actions, next.Players, next.SmallBlind, next.BigBlind) {
		next.Street = next.Street.Next()
		if err := next.refresh(); err != nil {
			return nil, err
		}
	}

	if next.Street == River && IsStreetClosed(River, next.Actions, next.Players, next.SmallBlind, next.BigBlind) {
		next.Complete = true
	}

	return next, nil
}

// ApplyAll folds a batch of records into the snapshot strictly in
// order, each fully applied before the next is considered. Used when
// the caller batches auto-inferred folds with a user action. Every
// record is validated against the snapshot it lands on.
func (s *GameState) ApplyAll(recs []ActionRecord) (*GameState, error) {
	cur := s
	for _, rec := range recs {
		if err := cur.Validate(rec); err != nil {
			return nil, err
		}
		next, err := cur.Apply(rec)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// AddBoardCards attaches dealt community cards to a new snapshot.
func (s *GameState) AddBoardCards(cards deck.Hand) *GameState {
	next := s.clone()
	next.Board |= cards
	return next
}

// SidePots partitions the current pot.
func (s *GameState) SidePots() ([]SidePot, error) {
	return SidePots(s.Actions, s.Players, s.SmallBlind, s.BigBlind)
}

// refresh rederives every cached field (stacks, pot, ceiling) from
// the action log. Any mismatch with the recorded player states is an
// inconsistent replay and fails loudly.
func (s *GameState) refresh() error {
	ledger, err := replayHand(s.Actions, s.Players, s.SmallBlind, s.BigBlind)
	if err != nil {
		return err
	}

	for i := range s.Players {
		p := &s.Players[i]
		stack := p.InitialStack - ledger.total[p.Position]
		if stack < 0 {
			return fmt.Errorf("%w: seat %s contributed more than its stack", ErrInconsistentReplay, p.Position)
		}
		p.Stack = stack
		if stack == 0 {
			p.AllIn = true
		}
	}

	s.Pot = ledger.potTotal()
	s.LastBet = ledger.streets[s.Street].level
	return nil
}

// countActive counts seats that have not folded.
func (s *GameState) countActive() int {
	n := 0
	for i := range s.Players {
		if s.Players[i].Active {
			n++
		}
	}
	return n
}
