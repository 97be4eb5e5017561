// Package poker provides the canonical 52-card identities and the
// seven-card hand evaluator used to adjudicate results.
package poker

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitNames = [...]string{"Hearts", "Diamonds", "Clubs", "Spades"}
var suitSymbols = [...]string{"♥", "♦", "♣", "♠"}

// Name returns the suit word ("Hearts")
func (s Suit) Name() string {
	if s < Hearts || s > Spades {
		return "?"
	}
	return suitNames[s]
}

// String returns the suit symbol ("♥")
func (s Suit) String() string {
	if s < Hearts || s > Spades {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit parses a suit word as it appears in exported records
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if n == name {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// Rank represents a card rank. The numeric value is the poker value:
// 2..10, Jack=11, Queen=12, King=13, Ace=14.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Value returns the numeric comparison value of the rank (Ace high)
func (r Rank) Value() int {
	return int(r)
}

// Label returns the rank label used in exported records ("Ace", "2", .., "King")
func (r Rank) Label() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		if r >= Two && r <= Ten {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// String returns the short rank form ("A", "2", .., "10", "J", "Q", "K")
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Ten {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// ParseRank parses a rank label as it appears in exported records
func ParseRank(label string) (Rank, error) {
	switch label {
	case "Jack":
		return Jack, nil
	case "Queen":
		return Queen, nil
	case "King":
		return King, nil
	case "Ace":
		return Ace, nil
	}
	n, err := strconv.Atoi(label)
	if err != nil || n < 2 || n > 10 {
		return 0, fmt.Errorf("unknown rank %q", label)
	}
	return Rank(n), nil
}

// Card is a single card identity
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the short form (e.g. "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Display returns the long form used in exported records ("Ace of Spades ♠")
func (c Card) Display() string {
	return fmt.Sprintf("%s of %s %s", c.Rank.Label(), c.Suit.Name(), c.Suit)
}

// Value returns the numeric value of the card for comparison
func (c Card) Value() int {
	return c.Rank.Value()
}

// cardJSON is the record encoding of a card identity. Field names are
// declared in sorted key order so the canonical serialization hashes
// identically however the value was built.
type cardJSON struct {
	Display string `json:"display"`
	Suit    string `json:"suit"`
	Value   string `json:"value"`
}

// MarshalJSON encodes the card as its record object form
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		Display: c.Display(),
		Suit:    c.Suit.Name(),
		Value:   c.Rank.Label(),
	})
}

// UnmarshalJSON decodes the record object form. The display field is
// redundant with suit+value; a display that disagrees with them is
// treated as corruption.
func (c *Card) UnmarshalJSON(data []byte) error {
	var cj cardJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	rank, err := ParseRank(cj.Value)
	if err != nil {
		return err
	}
	suit, err := ParseSuit(cj.Suit)
	if err != nil {
		return err
	}
	card := NewCard(rank, suit)
	if cj.Display != "" && cj.Display != card.Display() {
		return fmt.Errorf("card display %q does not match %q", cj.Display, card.Display())
	}
	*c = card
	return nil
}

// canonicalRanks is the rank order of the canonical deck listing,
// Ace first within each suit.
var canonicalRanks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// CanonicalDeck returns the 52 card identities in their fixed canonical
// order: suit-major (Hearts, Diamonds, Clubs, Spades), Ace first.
func CanonicalDeck() []Card {
	deck := make([]Card, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for _, rank := range canonicalRanks {
			deck = append(deck, NewCard(rank, suit))
		}
	}
	return deck
}

// ValidatePermutation reports whether cards is a permutation of the
// canonical 52-card deck: 52 entries, no duplicates, none missing.
func ValidatePermutation(cards []Card) error {
	if len(cards) != 52 {
		return fmt.Errorf("expected 52 cards, got %d", len(cards))
	}
	seen := make(map[Card]bool, 52)
	for _, c := range cards {
		if c.Rank < Two || c.Rank > Ace || c.Suit < Hearts || c.Suit > Spades {
			return fmt.Errorf("invalid card %v", c)
		}
		if seen[c] {
			return fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
	return nil
}
