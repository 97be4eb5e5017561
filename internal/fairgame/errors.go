package fairgame

import "errors"

// Protocol errors. All are immediate, synchronous, and terminal for
// the call that raised them; callers match with errors.Is.
var (
	// ErrCapacityExceeded is returned when a participant commit would
	// exceed the configured table capacity.
	ErrCapacityExceeded = errors.New("maximum participants reached")

	// ErrSeedTooLong is returned when a private seed exceeds the
	// configured byte limit when UTF-8 encoded.
	ErrSeedTooLong = errors.New("participant seed too long")

	// ErrDuplicateParticipant is returned when a participant id has
	// already committed. Committed entries are immutable.
	ErrDuplicateParticipant = errors.New("participant already committed")

	// ErrPreconditionFailed is returned when a stage runs before the
	// state it depends on exists.
	ErrPreconditionFailed = errors.New("prerequisite state missing")

	// ErrIncompleteState is returned by deck derivation when any of the
	// house seed, card permutation, seats, or participant seeds is absent.
	ErrIncompleteState = errors.New("incomplete game state")

	// ErrDeckExhausted is returned when the fixed burn/deal sequence
	// would consume more cards than the deck holds.
	ErrDeckExhausted = errors.New("deck exhausted")
)
