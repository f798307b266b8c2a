// Package transcript reads hand transcripts written in HCL and
// replays them through the engine, validating every recorded action
// the way the interactive wizard would.
package transcript

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/handscribe/handscribe/internal/deck"
	"github.com/handscribe/handscribe/internal/game"
)

// File is the top-level transcript layout.
type File struct {
	Table   TableBlock    `hcl:"table,block"`
	Streets []StreetBlock `hcl:"street,block"`
	Board   *BoardBlock   `hcl:"board,block"`
	Shown   []CardsBlock  `hcl:"shown,block"`
	Result  *ResultBlock  `hcl:"result,block"`
}

// TableBlock describes the table at hand start.
type TableBlock struct {
	Seats      int          `hcl:"seats"`
	SmallBlind int          `hcl:"small_blind,optional"`
	BigBlind   int          `hcl:"big_blind,optional"`
	Hero       string       `hcl:"hero,optional"`
	HeroCards  []string     `hcl:"hero_cards,optional"`
	Stacks     []StackBlock `hcl:"stack,block"`
}

// StackBlock overrides one seat's starting stack.
type StackBlock struct {
	Seat  string `hcl:"seat,label"`
	Chips int    `hcl:"chips"`
}

// StreetBlock holds one street's actions in transcription order.
type StreetBlock struct {
	Name    string        `hcl:"name,label"`
	Actions []ActionBlock `hcl:"action,block"`
}

// ActionBlock is one recorded action.
type ActionBlock struct {
	Seat   string `hcl:"seat"`
	Do     string `hcl:"do"`
	Amount int    `hcl:"amount,optional"`
}

// BoardBlock lists the community cards as they were dealt.
type BoardBlock struct {
	Flop  []string `hcl:"flop,optional"`
	Turn  string   `hcl:"turn,optional"`
	River string   `hcl:"river,optional"`
}

// CardsBlock records hole cards a villain showed down.
type CardsBlock struct {
	Seat string   `hcl:"seat,label"`
	Hole []string `hcl:"hole"`
}

// ResultBlock declares the outcome when cards were never shown.
type ResultBlock struct {
	Winners []string `hcl:"winners,optional"`
	Memo    string   `hcl:"memo,optional"`
}

// Load parses and structurally validates a transcript file.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return LoadBytes(src, path)
}

// LoadBytes parses a transcript from memory.
func LoadBytes(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	if f.Table.SmallBlind == 0 {
		f.Table.SmallBlind = 1
	}
	if f.Table.BigBlind == 0 {
		f.Table.BigBlind = 2 * f.Table.SmallBlind
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	if _, err := game.SeatsFor(f.Table.Seats); err != nil {
		return err
	}
	if f.Table.Hero != "" {
		if _, err := game.ParsePosition(f.Table.Hero); err != nil {
			return fmt.Errorf("hero: %w", err)
		}
	}
	if len(f.Table.HeroCards) != 0 && len(f.Table.HeroCards) != 2 {
		return fmt.Errorf("hero_cards must list exactly two cards, got %d", len(f.Table.HeroCards))
	}

	prev := game.Street(-1)
	for _, block := range f.Streets {
		street, ok := game.ParseStreet(block.Name)
		if !ok {
			return fmt.Errorf("unknown street %q", block.Name)
		}
		if street <= prev {
			return fmt.Errorf("street %q out of order", block.Name)
		}
		prev = street

		for _, act := range block.Actions {
			if _, err := game.ParsePosition(act.Seat); err != nil {
				return fmt.Errorf("street %q: %w", block.Name, err)
			}
			if _, err := game.ParseAction(act.Do); err != nil {
				return fmt.Errorf("street %q seat %s: %w", block.Name, act.Seat, err)
			}
		}
	}

	if f.Board != nil {
		if n := len(f.Board.Flop); n != 0 && n != 3 {
			return fmt.Errorf("flop must list exactly three cards, got %d", n)
		}
		if f.Board.Turn != "" && len(f.Board.Flop) == 0 {
			return fmt.Errorf("turn card without a flop")
		}
		if f.Board.River != "" && f.Board.Turn == "" {
			return fmt.Errorf("river card without a turn")
		}
	}

	return nil
}

// LoadDir is a convenience for listing transcript files in a
// directory, in name order.
func LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read transcripts: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); len(name) > 4 && name[len(name)-4:] == ".hcl" {
			paths = append(paths, dir+"/"+name)
		}
	}
	return paths, nil
}

// boardFor returns the board cards revealed by the time the hand is
// on the given street.
func (f *File) boardFor(street game.Street) (deck.Hand, error) {
	if f.Board == nil {
		return 0, nil
	}
	var cards []string
	if street >= game.Flop {
		cards = append(cards, f.Board.Flop...)
	}
	if street >= game.Turn && f.Board.Turn != "" {
		cards = append(cards, f.Board.Turn)
	}
	if street >= game.River && f.Board.River != "" {
		cards = append(cards, f.Board.River)
	}
	return deck.ParseHand(cards...)
}
