package game

import "errors"

// Validation failures are recoverable transcription mistakes: the
// caller re-prompts or redirects to the correct seat. An inconsistent
// replay means the action log could not have produced the recorded
// player states; that is a data error fatal to the current hand.
var (
	ErrOutOfTurn          = errors.New("action submitted out of turn")
	ErrIllegalAction      = errors.New("action not legal for this seat")
	ErrMalformedSize      = errors.New("bet size outside legal bounds")
	ErrInconsistentReplay = errors.New("action log inconsistent with player states")
)
