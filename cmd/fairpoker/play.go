package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/miacat/fairpoker/internal/fairgame"
	"github.com/miacat/fairpoker/internal/recordio"
	"github.com/miacat/fairpoker/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headingStyle = lipgloss.NewStyle().Bold(true)
	cardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// PlayCmd runs a full demonstration hand: house commit, participant
// commits, seat assignment, deck derivation, the fixed burn/deal
// sequence, hand evaluation, and record export.
type PlayCmd struct {
	Players []string `short:"p" help:"Participant names" default:"Seal,Syztmz,Eddie,Wino"`
	Out     string   `short:"o" help:"Record output path" default:"game_data.json" type:"path"`
}

func (c *PlayCmd) Run(root *CLI) error {
	logger := setupLogger(root.Debug)

	cfg, err := fairgame.LoadConfig(root.Config)
	if err != nil {
		return err
	}

	game, err := fairgame.New(cfg, fairgame.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ FairPoker demonstration ♦ ♣ "))
	fmt.Println()

	house, err := game.CommitHouse()
	if err != nil {
		return err
	}
	fmt.Println(headingStyle.Render("Game ID: ") + house.GameID)
	fmt.Println(headingStyle.Render("Commit hash:  ") + short(string(house.CommitHash)))
	fmt.Println(headingStyle.Render("Chain hash:   ") + short(string(house.ChainHash)))
	fmt.Println()

	// One commit processed at a time: participant commits are
	// serialized at this boundary.
	for _, name := range c.Players {
		receipt, err := game.CommitParticipant(name, "secret_seed_"+name)
		if err != nil {
			return fmt.Errorf("committing %s: %w", name, err)
		}
		fmt.Printf("%s's commitment: %s\n", name, short(string(receipt.Commitment)))
	}

	seats, err := game.AssignSeats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(headingStyle.Render("Seats:"))
	for _, seat := range sortedSeatNumbers(seats) {
		fmt.Printf("  seat %d: %s\n", seat, seatHolder(seats, seat))
	}

	deck, bindingDigest, err := game.DeriveDeck()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(dimStyle.Render("final binding digest: " + short(string(bindingDigest))))

	deal, err := fairgame.Sequence(deck, len(c.Players))
	if err != nil {
		return err
	}
	c.renderDeal(deal, seats)

	if err := recordio.Save(c.Out, game.Export()); err != nil {
		return err
	}
	logger.Info("record exported", "path", c.Out)
	return nil
}

func (c *PlayCmd) renderDeal(deal *fairgame.Deal, seats map[string]int) {
	board := deal.Board()

	fmt.Println()
	fmt.Println(headingStyle.Render("Board: ") + cardStyle.Render(renderCards(board[:])))
	fmt.Println()
	fmt.Println(headingStyle.Render("Hands:"))

	type result struct {
		name string
		seat int
		hole [2]poker.Card
		rank poker.HandRank
	}
	results := make([]result, 0, len(seats))
	for name, seat := range seats {
		hole := deal.Hole[seat]
		rank := poker.Evaluate(hole, board)
		results = append(results, result{name: name, seat: seat, hole: hole, rank: rank})
		fmt.Printf("  seat %d (%s): %s — %s\n",
			seat, name, cardStyle.Render(renderCards(hole[:])), rank)
	}

	sort.Slice(results, func(i, j int) bool {
		if cmp := results[i].rank.Compare(results[j].rank); cmp != 0 {
			return cmp > 0
		}
		return results[i].seat < results[j].seat
	})

	fmt.Println()
	fmt.Println(headingStyle.Render("Standings:"))
	for i, r := range results {
		fmt.Printf("  %d. seat %d (%s) — %s\n", i+1, r.seat, r.name, r.rank.Category)
	}
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func sortedSeatNumbers(seats map[string]int) []int {
	out := make([]int, 0, len(seats))
	for _, seat := range seats {
		out = append(out, seat)
	}
	sort.Ints(out)
	return out
}

func seatHolder(seats map[string]int, seat int) string {
	for name, s := range seats {
		if s == seat {
			return name
		}
	}
	return "?"
}

func short(digest string) string {
	if len(digest) <= 20 {
		return digest
	}
	return digest[:20] + "..."
}
