package poker

import (
	"encoding/json"
	"testing"
)

func TestCardStringForms(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	if aceSpades.String() != "A♠" {
		t.Errorf("expected A♠, got %s", aceSpades.String())
	}
	if aceSpades.Display() != "Ace of Spades ♠" {
		t.Errorf("expected 'Ace of Spades ♠', got %s", aceSpades.Display())
	}
	if aceSpades.Value() != 14 {
		t.Errorf("expected value 14, got %d", aceSpades.Value())
	}

	tenHearts := NewCard(Ten, Hearts)
	if tenHearts.String() != "10♥" {
		t.Errorf("expected 10♥, got %s", tenHearts.String())
	}
	if tenHearts.Display() != "10 of Hearts ♥" {
		t.Errorf("expected '10 of Hearts ♥', got %s", tenHearts.Display())
	}
}

func TestParseRankSuit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label   string
		want    Rank
		wantErr bool
	}{
		{label: "Ace", want: Ace},
		{label: "2", want: Two},
		{label: "10", want: Ten},
		{label: "King", want: King},
		{label: "11", wantErr: true},
		{label: "ace", wantErr: true},
		{label: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRank(tt.label)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRank(%q): expected error", tt.label)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRank(%q): %v", tt.label, err)
		} else if got != tt.want {
			t.Errorf("ParseRank(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}

	if _, err := ParseSuit("Hearts"); err != nil {
		t.Errorf("ParseSuit(Hearts): %v", err)
	}
	if _, err := ParseSuit("hearts"); err == nil {
		t.Error("ParseSuit(hearts): expected error")
	}
}

func TestCardJSONRoundTrip(t *testing.T) {
	t.Parallel()

	card := NewCard(Queen, Diamonds)
	data, err := json.Marshal(card)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"display":"Queen of Diamonds ♦","suit":"Diamonds","value":"Queen"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var decoded Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != card {
		t.Errorf("round trip = %v, want %v", decoded, card)
	}
}

func TestCardJSONRejectsInconsistentDisplay(t *testing.T) {
	t.Parallel()

	var card Card
	corrupt := `{"display":"King of Diamonds ♦","suit":"Diamonds","value":"Queen"}`
	if err := json.Unmarshal([]byte(corrupt), &card); err == nil {
		t.Error("expected error for display that disagrees with suit+value")
	}
}

func TestCanonicalDeck(t *testing.T) {
	t.Parallel()

	deck := CanonicalDeck()
	if len(deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(deck))
	}
	if err := ValidatePermutation(deck); err != nil {
		t.Errorf("canonical deck invalid: %v", err)
	}
	if deck[0] != NewCard(Ace, Hearts) {
		t.Errorf("expected Ace of Hearts first, got %v", deck[0])
	}
	if deck[51] != NewCard(King, Spades) {
		t.Errorf("expected King of Spades last, got %v", deck[51])
	}
}

func TestValidatePermutation(t *testing.T) {
	t.Parallel()

	deck := CanonicalDeck()

	short := deck[:51]
	if err := ValidatePermutation(short); err == nil {
		t.Error("expected error for 51 cards")
	}

	dup := make([]Card, 52)
	copy(dup, deck)
	dup[51] = dup[0]
	if err := ValidatePermutation(dup); err == nil {
		t.Error("expected error for duplicate card")
	}
}
