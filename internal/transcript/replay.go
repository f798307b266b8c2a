package transcript

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/handscribe/handscribe/internal/deck"
	"github.com/handscribe/handscribe/internal/game"
)

// Summary is the outcome of replaying a transcript.
type Summary struct {
	Final      *game.GameState
	Pots       []game.SidePot
	PotWinners []game.PotWinner
	Payouts    map[game.Position]int
	Memo       string
}

// Replayer drives the engine from a parsed transcript, enforcing the
// same validation the interactive wizard applies per action.
type Replayer struct {
	logger *log.Logger
	clock  quartz.Clock
}

// NewReplayer creates a replayer. A nil logger discards output; a nil
// clock uses the real one.
func NewReplayer(logger *log.Logger, clock quartz.Clock) *Replayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Replayer{logger: logger, clock: clock}
}

// Replay applies every recorded action in order and resolves the
// outcome. Any illegal, out-of-turn or malformed record aborts the
// replay with an error naming the offending action; nothing is
// partially applied.
func (r *Replayer) Replay(f *File) (*Summary, error) {
	state, err := r.start(f)
	if err != nil {
		return nil, err
	}

	recorder := game.NewRecorder(r.clock)

	for _, block := range f.Streets {
		street, _ := game.ParseStreet(block.Name)

		for i, act := range block.Actions {
			if state.Street != street {
				return nil, fmt.Errorf("street %s action %d: hand is on %s", block.Name, i+1, state.Street)
			}

			pos, _ := game.ParsePosition(act.Seat)
			action, _ := game.ParseAction(act.Do)
			rec := recorder.Record(state, pos, action, act.Amount)

			if err := state.Validate(rec); err != nil {
				return nil, fmt.Errorf("street %s action %d (%s %s): %w", block.Name, i+1, act.Seat, act.Do, err)
			}
			next, err := state.Apply(rec)
			if err != nil {
				return nil, fmt.Errorf("street %s action %d (%s %s): %w", block.Name, i+1, act.Seat, act.Do, err)
			}

			r.logger.Debug("applied action",
				"street", rec.Street,
				"seat", rec.Position,
				"action", rec.Action,
				"amount", rec.Amount,
				"pot", next.Pot,
			)

			if next.Street != state.Street {
				next, err = r.dealBoard(f, next)
				if err != nil {
					return nil, err
				}
				r.logger.Debug("street closed", "street", next.Street, "board", next.Board)
			}
			state = next
		}
	}

	return r.finish(f, state)
}

// start builds the opening snapshot from the table block.
func (r *Replayer) start(f *File) (*game.GameState, error) {
	opts := []game.HandOption{
		game.WithBlinds(f.Table.SmallBlind, f.Table.BigBlind),
	}

	if len(f.Table.Stacks) > 0 {
		seats, err := game.SeatsFor(f.Table.Seats)
		if err != nil {
			return nil, err
		}
		stacks := make(map[game.Position]int, len(seats))
		// Unlisted seats keep the default buy-in.
		for _, pos := range seats {
			stacks[pos] = 200
		}
		for _, s := range f.Table.Stacks {
			pos, err := game.ParsePosition(s.Seat)
			if err != nil {
				return nil, fmt.Errorf("stack: %w", err)
			}
			stacks[pos] = s.Chips
		}
		opts = append(opts, game.WithStacks(stacks))
	}

	if f.Table.Hero != "" {
		hero, _ := game.ParsePosition(f.Table.Hero)
		cards, err := deck.ParseHand(f.Table.HeroCards...)
		if err != nil {
			return nil, fmt.Errorf("hero_cards: %w", err)
		}
		opts = append(opts, game.WithHero(hero, cards))
	}

	state, err := game.NewHand(f.Table.Seats, opts...)
	if err != nil {
		return nil, err
	}

	r.logger.Info("hand started",
		"seats", f.Table.Seats,
		"blinds", fmt.Sprintf("%d/%d", f.Table.SmallBlind, f.Table.BigBlind),
		"pot", state.Pot,
	)
	return state, nil
}

// dealBoard attaches the community cards revealed by the snapshot's
// street. Covers the all-in run-out too, where a single application
// may advance several streets at once.
func (r *Replayer) dealBoard(f *File, state *game.GameState) (*game.GameState, error) {
	board, err := f.boardFor(state.Street)
	if err != nil {
		return nil, err
	}
	if board == 0 {
		if state.Street > game.Preflop {
			return nil, fmt.Errorf("hand reached %s but the transcript has no board cards", state.Street)
		}
		return state, nil
	}
	if expect := boardSize(state.Street); board.CountCards() != expect {
		return nil, fmt.Errorf("hand reached %s: board has %d cards, want %d", state.Street, board.CountCards(), expect)
	}
	return state.AddBoardCards(board), nil
}

// finish resolves the pots once no further action is possible.
func (r *Replayer) finish(f *File, state *game.GameState) (*Summary, error) {
	pots, err := state.SidePots()
	if err != nil {
		return nil, err
	}

	summary := &Summary{Final: state, Pots: pots}
	if f.Result != nil {
		summary.Memo = f.Result.Memo
	}

	switch {
	case f.Result != nil && len(f.Result.Winners) > 0:
		winners := make([]game.Position, 0, len(f.Result.Winners))
		for _, w := range f.Result.Winners {
			pos, err := game.ParsePosition(w)
			if err != nil {
				return nil, fmt.Errorf("result: %w", err)
			}
			winners = append(winners, pos)
		}
		summary.PotWinners, err = state.DeclaredWinners(winners)
		if err != nil {
			return nil, err
		}

	case state.Complete:
		holes, err := r.shownCards(f, state)
		if err != nil {
			return nil, err
		}
		summary.PotWinners, err = state.ShowdownWinners(holes)
		if err != nil {
			return nil, err
		}

	default:
		// The transcript stops mid-hand; report pots without an
		// allocation.
		r.logger.Warn("transcript ends before a result", "street", state.Street)
		return summary, nil
	}

	summary.Payouts = game.Payouts(summary.PotWinners)
	r.logger.Info("hand resolved", "pot", state.Pot, "pots", len(pots))
	return summary, nil
}

// shownCards collects hero plus shown villain hole cards.
func (r *Replayer) shownCards(f *File, state *game.GameState) (map[game.Position]deck.Hand, error) {
	holes := make(map[game.Position]deck.Hand)
	if state.Hero != "" && state.HeroCards != 0 {
		holes[state.Hero] = state.HeroCards
	}
	for _, shown := range f.Shown {
		pos, err := game.ParsePosition(shown.Seat)
		if err != nil {
			return nil, fmt.Errorf("shown: %w", err)
		}
		cards, err := deck.ParseHand(shown.Hole...)
		if err != nil {
			return nil, fmt.Errorf("shown %s: %w", shown.Seat, err)
		}
		holes[pos] = cards
	}
	return holes, nil
}

func boardSize(street game.Street) int {
	switch street {
	case game.Flop:
		return 3
	case game.Turn:
		return 4
	case game.River:
		return 5
	}
	return 0
}
