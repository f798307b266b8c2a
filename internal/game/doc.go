// Package game implements the core engine for transcribing No-Limit
// Texas Hold'em hands one action at a time.
//
// The main type is GameState, an immutable snapshot of a hand. The
// caller owns exactly one current snapshot and threads it through
// every call; applying an ActionRecord returns a successor snapshot
// and never mutates the old one, so undo is just keeping the previous
// value.
//
// # Basic usage
//
//	s, _ := game.NewHand(6, game.WithHero(game.Button, hole))
//	rec := recorder.Record(s, game.UnderTheGun, game.Fold, 0)
//	if err := s.Validate(rec); err != nil {
//	    // re-prompt the transcriber
//	}
//	s, _ = s.Apply(rec)
//
// # Architecture
//
// Betting state is never cached: contributions, the pot, the current
// ceiling and the legality menus are all rederived from the
// append-only action log on every call (see ledger.go). The legality
// rules live in betting.go, turn order in turnorder.go, pot and
// side-pot accounting in pot.go, and street advancement in hand.go.
// Hand strength comes from the evaluator package.
package game
