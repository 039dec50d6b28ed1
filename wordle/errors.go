package wordle

import "errors"

var (
	// ErrInvalidSecret is returned when a secret does not match the
	// configured word length
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrInvalidGuess is returned for malformed or out-of-vocabulary
	// guesses. The failed guess does not count against the budget.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrEpisodeTerminated is returned when a guess is made after the
	// episode ended
	ErrEpisodeTerminated = errors.New("episode already terminated")
	// ErrNoCandidates signals an empty consistent-word set. With a valid
	// secret this is unreachable, so it is never masked.
	ErrNoCandidates = errors.New("no candidate words remain")
)
