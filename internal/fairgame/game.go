// Package fairgame implements the commit-reveal state machine for one
// provably-fair hand: house seed commitment, participant commitments,
// seat assignment, and deck derivation. Stages are gated by
// precondition checks and fail fast; the package assumes single-writer
// access to a game (callers serialize concurrent commits).
package fairgame

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/miacat/fairpoker/internal/commit"
	"github.com/miacat/fairpoker/internal/gameid"
	"github.com/miacat/fairpoker/poker"
)

// Game owns the record for one hand and advances it through the
// protocol stages.
type Game struct {
	cfg    Config
	clock  quartz.Clock
	logger *log.Logger
	id     string
	rec    *Record
}

// Option configures a Game
type Option func(*Game)

// WithClock injects the clock used for record timestamps
func WithClock(clock quartz.Clock) Option {
	return func(g *Game) { g.clock = clock }
}

// WithLogger injects the stage-transition logger
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithGameID fixes the game id instead of generating one
func WithGameID(id string) Option {
	return func(g *Game) { g.id = id }
}

// New creates a game with an empty record
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	g := &Game{
		cfg:    cfg,
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == "" {
		g.id = gameid.New()
	}
	g.rec = newRecord(g.id, cfg.Version, g.clock.Now().UTC())
	return g, nil
}

// GameID returns the game's identifier
func (g *Game) GameID() string {
	return g.rec.GameID
}

// Export returns a deep copy of the record, including all secrets.
// Call it only once the game has concluded and reveal is intended.
func (g *Game) Export() *Record {
	return g.rec.Clone()
}

// HouseCommitment is the publishable result of the house commit stage.
// ChainHash is the only value safe to publish before any reveal.
type HouseCommitment struct {
	GameID     string
	Version    string
	CommitHash commit.Digest
	ChainHash  commit.Digest
}

// CommitHouse generates the house seed and the card-identity
// permutation and fixes them under a two-stage hash commitment.
// It runs exactly once per game.
//
// The commitment proves the published permutation and house seed were
// fixed before any participant seed arrived. It does not make the
// final dealt order reproducible from the seed; see DeriveDeck.
func (g *Game) CommitHouse() (HouseCommitment, error) {
	if g.rec.HouseSeed != "" {
		return HouseCommitment{}, fmt.Errorf("house already committed: %w", ErrPreconditionFailed)
	}

	houseSeed := randomHex(32)
	permutation := poker.CanonicalDeck()
	secureShuffle(permutation)

	binding, err := HouseBinding(g.rec.Version, g.rec.GameID, houseSeed, permutation)
	if err != nil {
		return HouseCommitment{}, err
	}
	commitHash := commit.SumString(binding)
	chainHash := commit.SumString(string(commitHash))

	g.rec.HouseSeed = houseSeed
	g.rec.CardPermutation = permutation
	g.rec.HouseCommitHash = commitHash
	g.rec.ChainHash = chainHash

	g.logger.Info("house committed",
		"gameId", g.rec.GameID,
		"chainHash", truncateDigest(chainHash))

	return HouseCommitment{
		GameID:     g.rec.GameID,
		Version:    g.rec.Version,
		CommitHash: commitHash,
		ChainHash:  chainHash,
	}, nil
}

// ParticipantReceipt is returned to a participant after their commit
type ParticipantReceipt struct {
	ParticipantID string
	Commitment    commit.Digest
	Salt          string
}

// CommitParticipant binds a participant's private seed with a fresh
// random salt into a published commitment. A committed id is immutable;
// re-committing it is rejected rather than silently overwritten.
func (g *Game) CommitParticipant(id, privateSeed string) (ParticipantReceipt, error) {
	if g.rec.HouseSeed == "" {
		return ParticipantReceipt{}, fmt.Errorf("house commitment must exist before participant commits: %w", ErrPreconditionFailed)
	}
	if len(g.rec.ParticipantSeeds) >= g.cfg.MaxPlayers {
		return ParticipantReceipt{}, fmt.Errorf("table holds %d participants: %w", g.cfg.MaxPlayers, ErrCapacityExceeded)
	}
	if len(privateSeed) > g.cfg.MaxSeedBytes {
		return ParticipantReceipt{}, fmt.Errorf("seed is %d bytes, limit %d: %w", len(privateSeed), g.cfg.MaxSeedBytes, ErrSeedTooLong)
	}
	if _, exists := g.rec.ParticipantSeeds[id]; exists {
		return ParticipantReceipt{}, fmt.Errorf("participant %q: %w", id, ErrDuplicateParticipant)
	}

	salt := randomHex(16)
	commitment := commit.SumString(ParticipantBinding(g.rec.Version, g.rec.GameID, privateSeed, salt))

	g.rec.ParticipantSeeds[id] = ParticipantSecret{Seed: privateSeed, Salt: salt}
	g.rec.Commitments[id] = commitment

	g.logger.Info("participant committed",
		"participant", id,
		"commitment", truncateDigest(commitment))

	return ParticipantReceipt{ParticipantID: id, Commitment: commitment, Salt: salt}, nil
}

// AssignSeats derives the bijection from participant ids to seat
// numbers 1..N. Participant ids are sorted lexicographically before
// being zipped with the shuffled seat numbers, removing insertion-order
// bias from the mapping.
func (g *Game) AssignSeats() (map[string]int, error) {
	if len(g.rec.ParticipantSeeds) == 0 || g.rec.ChainHash == "" {
		return nil, fmt.Errorf("need participant commitments and house chain hash before assigning seats: %w", ErrPreconditionFailed)
	}

	ids := g.rec.ParticipantIDs()
	seats := make([]int, len(ids))
	for i := range seats {
		seats[i] = i + 1
	}

	// An entropy value is derived from the chain hash but does not seed
	// the shuffle: seat assignment is fresh secure randomness and is
	// not reproducible from any published value.
	if entropy, err := strconv.ParseUint(string(g.rec.ChainHash[:16]), 16, 64); err == nil {
		g.logger.Debug("chain-hash entropy computed but unused by the seat shuffle", "entropy", entropy)
	}
	secureShuffle(seats)

	assignment := make(map[string]int, len(ids))
	for i, id := range ids {
		assignment[id] = seats[i]
	}
	g.rec.Seats = assignment

	g.logger.Info("seats assigned", "participants", len(ids))

	out := make(map[string]int, len(assignment))
	for id, seat := range assignment {
		out[id] = seat
	}
	return out, nil
}

// DeriveDeck produces the final dealt card order and the digest of the
// final binding string built from the house seed and every
// participant's seed and seat.
//
// The digest does not seed the shuffle: the dealt order is independent
// secure randomness, so it cannot be recomputed from the revealed
// values. The digest is returned so the boundary can display it, which
// is all the observed protocol supports.
func (g *Game) DeriveDeck() ([]poker.Card, commit.Digest, error) {
	if g.rec.HouseSeed == "" || g.rec.CardPermutation == nil || len(g.rec.Seats) == 0 || len(g.rec.ParticipantSeeds) == 0 {
		return nil, "", fmt.Errorf("deck derivation requires house seed, permutation, seats, and all participant seeds: %w", ErrIncompleteState)
	}

	binding := FinalBinding(g.rec.Version, g.rec.GameID, g.rec.HouseSeed, g.rec.Seats, g.rec.ParticipantSeeds)
	digest := commit.SumString(binding)

	indices := make([]int, 52)
	for i := range indices {
		indices[i] = i
	}
	secureShuffle(indices)

	deck := make([]poker.Card, 52)
	for i, idx := range indices {
		deck[i] = g.rec.CardPermutation[idx]
	}

	g.logger.Info("deck derived", "bindingDigest", truncateDigest(digest))
	return deck, digest, nil
}

func truncateDigest(d commit.Digest) string {
	if len(d) <= 20 {
		return string(d)
	}
	return string(d[:20]) + "..."
}
