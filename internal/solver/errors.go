// internal/solver/errors.go
//
// Sentinel errors for the solver engine. Every condition here is local and
// recoverable; callers map them to user-facing messages. The engine itself
// never logs and never retries.

package solver

import "errors"

var (
	// ErrInvalidWordLength is returned when a guess is not WordLen
	// lowercase letters.
	ErrInvalidWordLength = errors.New("word must be 5 lowercase letters")

	// ErrInvalidPatternLength is returned when a feedback pattern has the
	// wrong length or a symbol outside {0,1,2}.
	ErrInvalidPatternLength = errors.New("pattern must be 5 symbols in {0,1,2}")

	// ErrUnknownGuessWord is returned when a guess is not in the allowed
	// guess dictionary. Unknown words are rejected even when suggestions
	// are drawn from the full dictionary.
	ErrUnknownGuessWord = errors.New("word not in guess dictionary")

	// ErrEmptyCandidateSet is returned when ranking is requested against a
	// candidate set that history has emptied out.
	ErrEmptyCandidateSet = errors.New("no candidates remain")

	// ErrInvalidAlpha is returned for alpha outside [0,1].
	ErrInvalidAlpha = errors.New("alpha must be in [0,1]")

	// ErrInvalidTopK is returned for topk <= 0.
	ErrInvalidTopK = errors.New("topk must be positive")

	// ErrNoWords is returned when a dictionary would be built with no
	// answer words.
	ErrNoWords = errors.New("dictionary has no answer words")
)
