package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/handscribe/handscribe/internal/archive"
	"github.com/handscribe/handscribe/internal/fileutil"
	"github.com/handscribe/handscribe/internal/game"
	"github.com/handscribe/handscribe/internal/transcript"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1).
			Bold(true)

	streetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD54F")).
			Bold(true)

	seatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#81D4FA")).
			Width(5)

	potStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A5D6A7"))
)

// ReplayCmd replays one transcript through the engine and prints the
// resolved hand.
type ReplayCmd struct {
	File    string `arg:"" name:"file" help:"Path to a transcript .hcl file"`
	JSON    bool   `help:"Emit the archived hand as JSON instead of the rendered view"`
	Out     string `short:"o" help:"Archive the hand as JSON to this path"`
	Verbose bool   `help:"Enable debug logging"`
}

func (cmd ReplayCmd) Run() error {
	logger := newLogger(cmd.Verbose)

	f, err := transcript.Load(cmd.File)
	if err != nil {
		return err
	}

	summary, err := transcript.NewReplayer(logger, nil).Replay(f)
	if err != nil {
		return fmt.Errorf("replay %s: %w", cmd.File, err)
	}

	if cmd.JSON || cmd.Out != "" {
		hand := archive.FromState(summary.Final, summary.PotWinners, summary.Memo, time.Now())
		data, err := hand.Encode()
		if err != nil {
			return err
		}
		if cmd.Out != "" {
			if err := fileutil.WriteFileAtomic(cmd.Out, data, 0o644); err != nil {
				return err
			}
			logger.Info("archived hand", "id", hand.ID, "path", cmd.Out)
		}
		if cmd.JSON {
			fmt.Println(string(data))
		}
		return nil
	}

	renderSummary(f, summary)
	return nil
}

func renderSummary(f *transcript.File, summary *transcript.Summary) {
	s := summary.Final

	fmt.Println(titleStyle.Render(fmt.Sprintf(" ♠ %d-handed %d/%d ♥ ", len(s.Players), s.SmallBlind, s.BigBlind)))
	if s.Hero != "" {
		fmt.Printf("hero %s with %s\n", seatStyle.Render(string(s.Hero)), s.HeroCards)
	}
	fmt.Println()

	street := game.Street(-1)
	for _, rec := range s.Actions {
		if rec.Street != street {
			street = rec.Street
			fmt.Println(streetStyle.Render(street.String()))
		}
		line := fmt.Sprintf("%s %s", seatStyle.Render(string(rec.Position)), rec.Action)
		if rec.Action.Sized() {
			line += fmt.Sprintf(" %d", rec.Amount)
		}
		fmt.Println("  " + line)
	}
	if s.Board != 0 {
		fmt.Printf("\nboard %s\n", s.Board)
	}

	fmt.Println()
	for i, pot := range summary.Pots {
		label := "pot"
		if len(summary.Pots) > 1 {
			label = fmt.Sprintf("pot %d", i+1)
		}
		fmt.Println(potStyle.Render(fmt.Sprintf("%s: %d (%v)", label, pot.Amount, pot.Eligible)))
	}

	if len(summary.Payouts) == 0 {
		fmt.Println("\nno result recorded")
		return
	}
	fmt.Println()
	for _, pos := range payoutOrder(summary.Payouts) {
		fmt.Printf("%s wins %d\n", seatStyle.Render(string(pos)), summary.Payouts[pos])
	}
	if summary.Memo != "" {
		fmt.Printf("\n%s\n", summary.Memo)
	}
}

// payoutOrder lists paid seats biggest payout first.
func payoutOrder(payouts map[game.Position]int) []game.Position {
	seats := make([]game.Position, 0, len(payouts))
	for pos := range payouts {
		seats = append(seats, pos)
	}
	for i := 1; i < len(seats); i++ {
		for j := i; j > 0 && payouts[seats[j]] > payouts[seats[j-1]]; j-- {
			seats[j], seats[j-1] = seats[j-1], seats[j]
		}
	}
	return seats
}
