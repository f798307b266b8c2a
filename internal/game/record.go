package game

import (
	"github.com/coder/quartz"
)

// Recorder stamps new action records with a clock, so transcribed
// hands keep their real entry times in production while tests inject
// a mock clock for deterministic timestamps.
type Recorder struct {
	clock quartz.Clock
}

// NewRecorder creates a recorder. A nil clock uses the real one.
func NewRecorder(clock quartz.Clock) *Recorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Recorder{clock: clock}
}

// Record builds an immutable action record for the current street of
// the given snapshot.
func (r *Recorder) Record(s *GameState, pos Position, action Action, amount int) ActionRecord {
	return ActionRecord{
		Position:  pos,
		Action:    action,
		Street:    s.Street,
		Amount:    amount,
		Timestamp: r.clock.Now(),
	}
}
