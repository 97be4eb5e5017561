// Package recordio persists exported game records: written once after
// a game concludes, read-only afterwards, the verifier's sole input.
package recordio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/miacat/fairpoker/internal/fairgame"
	"github.com/miacat/fairpoker/poker"
)

var (
	// ErrRecordNotFound is returned when the record file does not exist
	ErrRecordNotFound = errors.New("game record not found")

	// ErrRecordMalformed is returned when the file content is not a
	// well-formed game record
	ErrRecordMalformed = errors.New("game record malformed")
)

// Save writes an exported record as indented JSON
func Save(path string, rec *fairgame.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding game record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing game record: %w", err)
	}
	return nil
}

// Load reads and validates a persisted record
func Load(path string) (*fairgame.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("reading game record %s: %w", path, err)
	}

	var rec fairgame.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrRecordMalformed)
	}
	if err := validate(&rec); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrRecordMalformed)
	}
	return &rec, nil
}

// validate performs shape checks on a loaded record. Verification
// proper belongs to the verifier; this only rejects records that are
// structurally unusable.
func validate(rec *fairgame.Record) error {
	if rec.GameID == "" {
		return fmt.Errorf("missing gameId")
	}
	if rec.Version == "" {
		return fmt.Errorf("missing gameVersion")
	}
	if rec.CardPermutation != nil {
		if err := poker.ValidatePermutation(rec.CardPermutation); err != nil {
			return fmt.Errorf("invalid card permutation: %w", err)
		}
	}
	for id := range rec.ParticipantSeeds {
		if _, ok := rec.Commitments[id]; !ok {
			return fmt.Errorf("participant %q has a seed but no commitment", id)
		}
	}
	for id := range rec.Commitments {
		if _, ok := rec.ParticipantSeeds[id]; !ok {
			return fmt.Errorf("participant %q has a commitment but no seed", id)
		}
	}
	return nil
}
