package fairgame

import (
	"sort"
	"time"

	"github.com/miacat/fairpoker/internal/commit"
	"github.com/miacat/fairpoker/poker"
)

// ParticipantSecret holds a participant's revealed private seed and
// the salt that bound it into their commitment.
type ParticipantSecret struct {
	Seed string `json:"seed"`
	Salt string `json:"salt"`
}

// Record is the single unit of truth for one game: append-only while
// the game runs, exported verbatim (secrets included) once it ends.
// JSON field names follow the published record format.
type Record struct {
	GameID    string    `json:"gameId"`
	Version   string    `json:"gameVersion"`
	CreatedAt time.Time `json:"createdAt"`

	// HouseSeed stays empty until the game concludes, then is revealed
	// verbatim in the export.
	HouseSeed string `json:"serverSeed,omitempty"`

	// HouseCommitHash binds HouseSeed and CardPermutation; ChainHash
	// binds HouseCommitHash and is the only value published before any
	// reveal.
	HouseCommitHash commit.Digest `json:"serverHash,omitempty"`
	ChainHash       commit.Digest `json:"doubleHash,omitempty"`

	// CardPermutation is the committed ordering of the 52 canonical
	// card identities.
	CardPermutation []poker.Card `json:"cardMapping,omitempty"`

	// ParticipantSeeds and Commitments share an identical key set once
	// a participant's commit step completes. Entries are immutable.
	ParticipantSeeds map[string]ParticipantSecret `json:"clientSeeds"`
	Commitments      map[string]commit.Digest     `json:"commitments"`

	// Seats maps participant id to seat number, a bijection onto 1..N.
	Seats map[string]int `json:"positions,omitempty"`
}

// newRecord creates an empty record for a fresh game
func newRecord(gameID, version string, createdAt time.Time) *Record {
	return &Record{
		GameID:           gameID,
		Version:          version,
		CreatedAt:        createdAt,
		ParticipantSeeds: make(map[string]ParticipantSecret),
		Commitments:      make(map[string]commit.Digest),
	}
}

// Clone returns a deep copy. Exports and the verifier work on clones
// so the owning game's record is never shared or mutated.
func (r *Record) Clone() *Record {
	out := *r
	if r.CardPermutation != nil {
		out.CardPermutation = make([]poker.Card, len(r.CardPermutation))
		copy(out.CardPermutation, r.CardPermutation)
	}
	out.ParticipantSeeds = make(map[string]ParticipantSecret, len(r.ParticipantSeeds))
	for id, s := range r.ParticipantSeeds {
		out.ParticipantSeeds[id] = s
	}
	out.Commitments = make(map[string]commit.Digest, len(r.Commitments))
	for id, d := range r.Commitments {
		out.Commitments[id] = d
	}
	if r.Seats != nil {
		out.Seats = make(map[string]int, len(r.Seats))
		for id, seat := range r.Seats {
			out.Seats[id] = seat
		}
	}
	return &out
}

// ParticipantIDs returns the committed participant ids in
// lexicographic order.
func (r *Record) ParticipantIDs() []string {
	ids := make([]string, 0, len(r.ParticipantSeeds))
	for id := range r.ParticipantSeeds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
