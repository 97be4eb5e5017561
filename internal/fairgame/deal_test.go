package fairgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miacat/fairpoker/poker"
)

func TestSequenceLayout(t *testing.T) {
	t.Parallel()

	// An unshuffled deck makes every position checkable.
	deck := poker.CanonicalDeck()
	deal, err := Sequence(deck, 4)
	require.NoError(t, err)

	// burn, then hole round one to seats 2,3,4,1.
	assert.Equal(t, deck[0], deal.Burns[0])
	assert.Equal(t, deck[1], deal.Hole[2][0])
	assert.Equal(t, deck[2], deal.Hole[3][0])
	assert.Equal(t, deck[3], deal.Hole[4][0])
	assert.Equal(t, deck[4], deal.Hole[1][0], "seat 1 is the button and receives last")

	// hole round two.
	assert.Equal(t, deck[5], deal.Hole[2][1])
	assert.Equal(t, deck[8], deal.Hole[1][1])

	// burn, flop, burn, turn, burn, river.
	assert.Equal(t, deck[9], deal.Burns[1])
	assert.Equal(t, [3]poker.Card{deck[10], deck[11], deck[12]}, deal.Flop)
	assert.Equal(t, deck[13], deal.Burns[2])
	assert.Equal(t, deck[14], deal.Turn)
	assert.Equal(t, deck[15], deal.Burns[3])
	assert.Equal(t, deck[16], deal.River)
}

func TestSequenceConsumption(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 9; n++ {
		assert.Equal(t, 2*n+9, cardsDealt(n), "2 hole cards per seat, 4 burns, 5 community")
		assert.LessOrEqual(t, cardsDealt(n), 52)
	}
}

func TestSequenceBoard(t *testing.T) {
	t.Parallel()

	deck := poker.CanonicalDeck()
	deal, err := Sequence(deck, 2)
	require.NoError(t, err)

	board := deal.Board()
	assert.Equal(t, deal.Flop[0], board[0])
	assert.Equal(t, deal.Flop[2], board[2])
	assert.Equal(t, deal.Turn, board[3])
	assert.Equal(t, deal.River, board[4])
}

func TestSequenceDeckExhausted(t *testing.T) {
	t.Parallel()

	deck := poker.CanonicalDeck()
	_, err := Sequence(deck[:20], 6)
	assert.ErrorIs(t, err, ErrDeckExhausted)

	_, err = Sequence(deck, 0)
	assert.Error(t, err)
}

func TestDealOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{2, 3, 4, 5, 1}, dealOrder(5))
	assert.Equal(t, []int{2, 1}, dealOrder(2))
	assert.Equal(t, []int{1}, dealOrder(1))
}
