package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hand(hole [2]Card, community [5]Card) HandRank {
	return Evaluate(hole, community)
}

func TestEvaluateRoyalFlush(t *testing.T) {
	t.Parallel()

	rank := hand(
		[2]Card{NewCard(Ace, Spades), NewCard(King, Spades)},
		[5]Card{NewCard(Queen, Spades), NewCard(Jack, Spades), NewCard(Ten, Spades), NewCard(Two, Hearts), NewCard(Three, Diamonds)},
	)
	assert.Equal(t, RoyalFlush, rank.Category)
}

func TestEvaluateFourOfAKind(t *testing.T) {
	t.Parallel()

	rank := hand(
		[2]Card{NewCard(Two, Hearts), NewCard(Two, Diamonds)},
		[5]Card{NewCard(Two, Clubs), NewCard(Two, Spades), NewCard(Five, Hearts), NewCard(Nine, Diamonds), NewCard(King, Clubs)},
	)
	assert.Equal(t, FourOfAKind, rank.Category)
	assert.Equal(t, []int{2, 13}, rank.Tiebreaks, "quad value then best kicker")
}

func TestEvaluateFullHouseNotTrips(t *testing.T) {
	t.Parallel()

	// Trips plus a separate pair must rank as a full house, never as
	// mere three of a kind.
	rank := hand(
		[2]Card{NewCard(Three, Hearts), NewCard(Three, Diamonds)},
		[5]Card{NewCard(Three, Clubs), NewCard(Nine, Spades), NewCard(Nine, Hearts), NewCard(King, Diamonds), NewCard(Five, Clubs)},
	)
	assert.Equal(t, FullHouse, rank.Category)
	assert.Equal(t, []int{3, 9}, rank.Tiebreaks)
}

func TestEvaluateTripsWithoutPairIsNotFullHouse(t *testing.T) {
	t.Parallel()

	rank := hand(
		[2]Card{NewCard(Three, Hearts), NewCard(Three, Diamonds)},
		[5]Card{NewCard(Three, Clubs), NewCard(Nine, Spades), NewCard(Eight, Hearts), NewCard(King, Diamonds), NewCard(Five, Clubs)},
	)
	assert.Equal(t, ThreeOfAKind, rank.Category)
	assert.Equal(t, []int{3, 13, 9}, rank.Tiebreaks, "trips then top two kickers")
}

func TestEvaluateWheelStraight(t *testing.T) {
	t.Parallel()

	rank := hand(
		[2]Card{NewCard(Ace, Diamonds), NewCard(Two, Clubs)},
		[5]Card{NewCard(Three, Hearts), NewCard(Four, Spades), NewCard(Five, Diamonds), NewCard(Nine, Clubs), NewCard(King, Hearts)},
	)
	assert.Equal(t, Straight, rank.Category)
	assert.Equal(t, []int{5}, rank.Tiebreaks, "the wheel tops out at 5")
}

func TestEvaluateFlushWithOffsuitStraightIsFlush(t *testing.T) {
	t.Parallel()

	// A flush alongside a mixed-suit straight is a flush, not a
	// straight flush: the run must lie within the flush suit.
	rank := hand(
		[2]Card{NewCard(Two, Hearts), NewCard(Four, Hearts)},
		[5]Card{NewCard(Six, Hearts), NewCard(Eight, Hearts), NewCard(Ten, Hearts), NewCard(Seven, Spades), NewCard(Nine, Diamonds)},
	)
	assert.Equal(t, Flush, rank.Category)
	assert.Equal(t, []int{10, 8, 6, 4, 2}, rank.Tiebreaks)
}

func TestEvaluateStraightFlush(t *testing.T) {
	t.Parallel()

	rank := hand(
		[2]Card{NewCard(Five, Spades), NewCard(Six, Spades)},
		[5]Card{NewCard(Seven, Spades), NewCard(Eight, Spades), NewCard(Nine, Spades), NewCard(Ace, Hearts), NewCard(Ace, Diamonds)},
	)
	assert.Equal(t, StraightFlush, rank.Category)
	assert.Equal(t, []int{9}, rank.Tiebreaks)
}

func TestEvaluateTwoPairKicker(t *testing.T) {
	t.Parallel()

	// Three pairs: the best two count, and the third pair's value is
	// still eligible as the kicker.
	rank := hand(
		[2]Card{NewCard(Ace, Hearts), NewCard(Ace, Diamonds)},
		[5]Card{NewCard(King, Clubs), NewCard(King, Spades), NewCard(Queen, Hearts), NewCard(Queen, Diamonds), NewCard(Nine, Clubs)},
	)
	assert.Equal(t, TwoPair, rank.Category)
	assert.Equal(t, []int{14, 13, 12}, rank.Tiebreaks)
}

func TestEvaluateOnePairAndHighCard(t *testing.T) {
	t.Parallel()

	pair := hand(
		[2]Card{NewCard(Jack, Hearts), NewCard(Jack, Diamonds)},
		[5]Card{NewCard(Two, Clubs), NewCard(Five, Spades), NewCard(Eight, Hearts), NewCard(King, Diamonds), NewCard(Three, Clubs)},
	)
	assert.Equal(t, OnePair, pair.Category)
	assert.Equal(t, []int{11, 13, 8, 5}, pair.Tiebreaks)

	high := hand(
		[2]Card{NewCard(Ace, Spades), NewCard(King, Hearts)},
		[5]Card{NewCard(Queen, Diamonds), NewCard(Jack, Clubs), NewCard(Nine, Spades), NewCard(Seven, Hearts), NewCard(Five, Diamonds)},
	)
	assert.Equal(t, HighCard, high.Category)
	assert.Equal(t, []int{14, 13, 12, 11, 9}, high.Tiebreaks)
}

func TestHandRankCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b HandRank
		want int
	}{
		{
			name: "category decides",
			a:    HandRank{Category: Flush, Tiebreaks: []int{9, 7, 5, 4, 2}},
			b:    HandRank{Category: Straight, Tiebreaks: []int{14}},
			want: 1,
		},
		{
			name: "tiebreaks lexicographic",
			a:    HandRank{Category: TwoPair, Tiebreaks: []int{14, 13, 5}},
			b:    HandRank{Category: TwoPair, Tiebreaks: []int{14, 12, 11}},
			want: 1,
		},
		{
			name: "equal hands",
			a:    HandRank{Category: OnePair, Tiebreaks: []int{8, 14, 10, 6}},
			b:    HandRank{Category: OnePair, Tiebreaks: []int{8, 14, 10, 6}},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestCategoryRanks(t *testing.T) {
	t.Parallel()

	// Category ranks run 1..10 from High Card to Royal Flush.
	assert.Equal(t, 1, int(HighCard))
	assert.Equal(t, 10, int(RoyalFlush))
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "High Card", HighCard.String())
}
