package fairgame

import (
	"fmt"

	"github.com/miacat/fairpoker/poker"
)

// Deal is the mapping of a derived deck onto hole cards and the board
type Deal struct {
	// Hole maps seat number to that seat's two hole cards
	Hole map[int][2]poker.Card

	Flop  [3]poker.Card
	Turn  poker.Card
	River poker.Card

	// Burns records the burned cards in burn order: before the deal,
	// before the flop, before the turn, before the river
	Burns [4]poker.Card
}

// Board returns the five community cards in deal order
func (d *Deal) Board() [5]poker.Card {
	return [5]poker.Card{d.Flop[0], d.Flop[1], d.Flop[2], d.Turn, d.River}
}

// cardsDealt is the number of cards the fixed sequence consumes for
// numSeats participants: two hole cards each, four burns, five
// community cards.
func cardsDealt(numSeats int) int {
	return 2*numSeats + 9
}

// dealOrder returns the seat order for a hole-card round: seats
// 2..N then 1. Seat 1 is the dealer/button and receives last.
func dealOrder(numSeats int) []int {
	order := make([]int, 0, numSeats)
	for seat := 2; seat <= numSeats; seat++ {
		order = append(order, seat)
	}
	return append(order, 1)
}

// Sequence maps the derived deck onto a Deal using the fixed burn/deal
// order: burn, two hole rounds (seats 2..N then 1), burn, flop, burn,
// turn, burn, river.
func Sequence(deck []poker.Card, numSeats int) (*Deal, error) {
	if numSeats < 1 {
		return nil, fmt.Errorf("need at least one seat, got %d", numSeats)
	}
	if cardsDealt(numSeats) > len(deck) {
		return nil, fmt.Errorf("sequence for %d seats needs %d cards, deck has %d: %w",
			numSeats, cardsDealt(numSeats), len(deck), ErrDeckExhausted)
	}

	next := 0
	draw := func() poker.Card {
		c := deck[next]
		next++
		return c
	}

	deal := &Deal{Hole: make(map[int][2]poker.Card, numSeats)}

	deal.Burns[0] = draw()
	for round := 0; round < 2; round++ {
		for _, seat := range dealOrder(numSeats) {
			hole := deal.Hole[seat]
			hole[round] = draw()
			deal.Hole[seat] = hole
		}
	}

	deal.Burns[1] = draw()
	for i := range deal.Flop {
		deal.Flop[i] = draw()
	}

	deal.Burns[2] = draw()
	deal.Turn = draw()

	deal.Burns[3] = draw()
	deal.River = draw()

	return deal, nil
}
