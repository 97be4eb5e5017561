package poker

import (
	"fmt"
	"sort"
	"strings"
)

// Category enumerates the hand categories ordered from weakest to
// strongest. The numeric value is the category rank used for final
// standings (High Card = 1 .. Royal Flush = 10).
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the result of evaluating a seven-card hand. Tiebreaks
// holds the category-relevant card values in comparison order, e.g.
// the quad value then the kicker for Four of a Kind.
type HandRank struct {
	Category  Category
	Tiebreaks []int
}

// Compare returns 1 if h is stronger than other, -1 if weaker, 0 if
// equal. Hands compare by category rank, then lexicographically on the
// tiebreak values.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}
	n := min(len(h.Tiebreaks), len(other.Tiebreaks))
	for i := 0; i < n; i++ {
		if h.Tiebreaks[i] != other.Tiebreaks[i] {
			if h.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// String returns the category name with its tiebreak values
func (h HandRank) String() string {
	if len(h.Tiebreaks) == 0 {
		return h.Category.String()
	}
	parts := make([]string, len(h.Tiebreaks))
	for i, v := range h.Tiebreaks {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s (%s)", h.Category, strings.Join(parts, ","))
}

// Evaluate ranks the best five-card hand available from two hole cards
// and five community cards.
func Evaluate(hole [2]Card, community [5]Card) HandRank {
	cards := make([]Card, 0, 7)
	cards = append(cards, hole[:]...)
	cards = append(cards, community[:]...)
	return Evaluate7(cards)
}

// Evaluate7 ranks a seven-card set. Categories are tested strongest to
// weakest and the first match wins.
func Evaluate7(cards []Card) HandRank {
	counts := make(map[int]int, 7)
	bySuit := make(map[Suit][]int, 4)
	values := make([]int, 0, 7)
	for _, c := range cards {
		v := c.Value()
		counts[v]++
		bySuit[c.Suit] = append(bySuit[c.Suit], v)
		values = append(values, v)
	}

	// A flush suit holds at least 5 of the 7 cards, so there is at
	// most one.
	var flushVals []int
	for _, suited := range bySuit {
		if len(suited) >= 5 {
			flushVals = distinctDesc(suited)
		}
	}

	// Straight flushes must be consecutive within the flush suit, not
	// merely a flush plus an off-suit straight.
	if flushVals != nil {
		if top, ok := straightTop(flushVals); ok {
			if top == Ace.Value() {
				return HandRank{Category: RoyalFlush, Tiebreaks: []int{top}}
			}
			return HandRank{Category: StraightFlush, Tiebreaks: []int{top}}
		}
	}

	if quad, ok := valueWithCount(counts, 4); ok {
		kicker := bestExcluding(values, quad)
		return HandRank{Category: FourOfAKind, Tiebreaks: []int{quad, kicker}}
	}

	if trips, pair, ok := fullHouse(counts); ok {
		return HandRank{Category: FullHouse, Tiebreaks: []int{trips, pair}}
	}

	if flushVals != nil {
		return HandRank{Category: Flush, Tiebreaks: flushVals[:5]}
	}

	if top, ok := straightTop(distinctDesc(values)); ok {
		return HandRank{Category: Straight, Tiebreaks: []int{top}}
	}

	if trips, ok := valueWithCount(counts, 3); ok {
		kickers := topExcluding(values, 2, trips)
		return HandRank{Category: ThreeOfAKind, Tiebreaks: append([]int{trips}, kickers...)}
	}

	pairs := pairsDesc(counts)
	if len(pairs) >= 2 {
		kicker := bestExcluding(values, pairs[0], pairs[1])
		return HandRank{Category: TwoPair, Tiebreaks: []int{pairs[0], pairs[1], kicker}}
	}
	if len(pairs) == 1 {
		kickers := topExcluding(values, 3, pairs[0])
		return HandRank{Category: OnePair, Tiebreaks: append([]int{pairs[0]}, kickers...)}
	}

	return HandRank{Category: HighCard, Tiebreaks: distinctDesc(values)[:5]}
}

// straightTop returns the top card value of the best straight within
// the given distinct descending values, recognizing the wheel
// (A-2-3-4-5) with a top card of 5.
func straightTop(distinct []int) (int, bool) {
	for i := 0; i+4 < len(distinct); i++ {
		if distinct[i]-distinct[i+4] == 4 {
			return distinct[i], true
		}
	}
	if containsAll(distinct, 14, 5, 4, 3, 2) {
		return 5, true
	}
	return 0, false
}

// fullHouse requires trips plus a pair of a different value; a second
// set of trips qualifies as the pair. Trips alone never match.
func fullHouse(counts map[int]int) (trips, pair int, ok bool) {
	trips = -1
	for v, n := range counts {
		if n >= 3 && v > trips {
			trips = v
		}
	}
	if trips < 0 {
		return 0, 0, false
	}
	pair = -1
	for v, n := range counts {
		if v != trips && n >= 2 && v > pair {
			pair = v
		}
	}
	if pair < 0 {
		return 0, 0, false
	}
	return trips, pair, true
}

func valueWithCount(counts map[int]int, n int) (int, bool) {
	best := -1
	for v, c := range counts {
		if c >= n && v > best {
			best = v
		}
	}
	return best, best >= 0
}

func pairsDesc(counts map[int]int) []int {
	pairs := make([]int, 0, 3)
	for v, n := range counts {
		if n >= 2 {
			pairs = append(pairs, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	return pairs
}

func distinctDesc(values []int) []int {
	seen := make(map[int]bool, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func bestExcluding(values []int, excluded ...int) int {
	best := 0
	for _, v := range values {
		if v > best && !intIn(v, excluded) {
			best = v
		}
	}
	return best
}

func topExcluding(values []int, n int, excluded ...int) []int {
	out := make([]int, 0, n)
	for _, v := range distinctDesc(values) {
		if intIn(v, excluded) {
			continue
		}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

func intIn(v int, values []int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsAll(values []int, wanted ...int) bool {
	for _, w := range wanted {
		if !intIn(w, values) {
			return false
		}
	}
	return true
}
