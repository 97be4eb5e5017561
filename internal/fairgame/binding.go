package fairgame

import (
	"fmt"
	"sort"
	"strings"

	"github.com/miacat/fairpoker/internal/commit"
	"github.com/miacat/fairpoker/poker"
)

// Binding strings are the exact preimages of the published hashes. The
// verifier recomputes them from a revealed record, so both sides share
// these builders. The version is always the record's own, not the
// running configuration's.

// bindingPrefix returns "MiacatPoker_{version}:{gameId}"
func bindingPrefix(version, gameID string) string {
	return fmt.Sprintf("%s_%s:%s", ProtocolTag, version, gameID)
}

// HouseBinding builds the preimage of the house commit hash from the
// house seed and the canonical serialization of the card permutation.
func HouseBinding(version, gameID, houseSeed string, permutation []poker.Card) (string, error) {
	canonical, err := commit.CanonicalJSON(permutation)
	if err != nil {
		return "", fmt.Errorf("serializing card permutation: %w", err)
	}
	return fmt.Sprintf("%s:%s:%s", bindingPrefix(version, gameID), houseSeed, canonical), nil
}

// ParticipantBinding builds the preimage of one participant's commitment
func ParticipantBinding(version, gameID, privateSeed, salt string) string {
	return fmt.Sprintf("%s:%s:%s", bindingPrefix(version, gameID), privateSeed, salt)
}

// FinalBinding builds the preimage of the final binding digest: the
// house seed followed by every participant's "{seed}:{seat}" pair in
// seat order.
func FinalBinding(version, gameID, houseSeed string, seats map[string]int, secrets map[string]ParticipantSecret) string {
	type seated struct {
		id   string
		seat int
	}
	order := make([]seated, 0, len(seats))
	for id, seat := range seats {
		order = append(order, seated{id: id, seat: seat})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].seat < order[j].seat })

	parts := make([]string, 0, len(order))
	for _, s := range order {
		parts = append(parts, fmt.Sprintf("%s:%d", secrets[s.id].Seed, s.seat))
	}
	return fmt.Sprintf("%s:%s:%s", bindingPrefix(version, gameID), houseSeed, strings.Join(parts, ":"))
}
