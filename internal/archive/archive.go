// Package archive defines the serialized shape of a finished hand.
// The engine only produces and accepts this shape; where it is stored
// is the surrounding application's concern.
package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/handscribe/handscribe/internal/deck"
	"github.com/handscribe/handscribe/internal/game"
)

// Hand is a finished, transcribed hand ready for storage.
type Hand struct {
	ID           string              `json:"id"`
	Date         time.Time           `json:"date"`
	Positions    []game.Position     `json:"positions"`
	HeroPosition game.Position       `json:"heroPosition,omitempty"`
	HeroHand     []string            `json:"heroHand,omitempty"`
	Board        []string            `json:"board,omitempty"`
	Actions      []game.ActionRecord `json:"actions"`
	Result       *Result             `json:"result,omitempty"`
	Memo         string              `json:"memo,omitempty"`
}

// Result records how the pot was allocated.
type Result struct {
	Pots    []game.PotWinner      `json:"pots"`
	Payouts map[game.Position]int `json:"payouts"`
}

// FromState builds the archived shape from a final snapshot. The
// result may be nil for hands abandoned before a winner was known.
func FromState(s *game.GameState, potWinners []game.PotWinner, memo string, date time.Time) *Hand {
	positions := make([]game.Position, len(s.Players))
	for i := range s.Players {
		positions[i] = s.Players[i].Position
	}

	h := &Hand{
		ID:           NewID(),
		Date:         date,
		Positions:    positions,
		HeroPosition: s.Hero,
		HeroHand:     cardStrings(s.HeroCards),
		Board:        cardStrings(s.Board),
		Actions:      s.Actions,
		Memo:         memo,
	}
	if potWinners != nil {
		h.Result = &Result{Pots: potWinners, Payouts: game.Payouts(potWinners)}
	}
	return h
}

// Encode renders the hand as JSON for whatever stores it.
func (h *Hand) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode hand %s: %w", h.ID, err)
	}
	return data, nil
}

// Decode parses a previously encoded hand.
func Decode(data []byte) (*Hand, error) {
	var h Hand
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode hand: %w", err)
	}
	return &h, nil
}

func cardStrings(h deck.Hand) []string {
	cards := h.Cards()
	if len(cards) == 0 {
		return nil
	}
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
