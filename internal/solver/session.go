// internal/solver/session.go
//
// Stateful solver session: one shared read-only Dictionary, one mutable
// candidate set, one guess history.
//
// Lifecycle:
//   FRESH (no guesses) → IN_PROGRESS (history non-empty, >1 candidate)
//   → SOLVED (one candidate left, or an all-green pattern submitted).
//   Reset returns the session to FRESH with its original candidate pool.
//
// Running out of candidates is not a failure state; it is reported in the
// Result message because it means the feedback history is contradictory or
// mistyped.
//
// A Session is not safe for concurrent mutation; the hosting layer
// serializes calls per session (one lock per session id).

package solver

import (
	"fmt"
	"strings"
)

// Config controls how a session's initial candidate pool is built and the
// default ranking knobs.
type Config struct {
	// NTop keeps only the NTop most common answer words as the starting
	// pool. Zero or negative keeps all answers.
	NTop int

	// FilterPastAnswers removes Exclusions from the starting pool. It only
	// changes the pool; consistency checks are unaffected.
	FilterPastAnswers bool

	// Exclusions is the injectable "past answers" set. Ignored unless
	// FilterPastAnswers is set.
	Exclusions map[string]struct{}

	// Alpha blends entropy against frequency, in [0,1].
	Alpha float64

	// TopK is how many suggestions to return, > 0.
	TopK int

	// RestrictGuesses draws suggestions from the remaining candidates
	// only, instead of the full allowed dictionary.
	RestrictGuesses bool
}

// Validate checks the ranking knobs.
func (c Config) Validate() error {
	if c.Alpha < 0 || c.Alpha > 1 {
		return ErrInvalidAlpha
	}
	if c.TopK <= 0 {
		return ErrInvalidTopK
	}
	return nil
}

// Result is what a submitted guess produces.
type Result struct {
	Suggestions         []string
	CandidatesRemaining int
	Solved              bool
	Message             string
}

// Session holds solver state between guesses.
type Session struct {
	dict       *Dictionary
	cfg        Config
	initial    []string // pool after NTop + exclusions, before any history
	candidates []string
	history    []Record
	solved     bool
}

// NewSession builds a FRESH session. The initial candidate pool is the
// dictionary's answers, cut to cfg.NTop and minus cfg.Exclusions when
// requested.
func NewSession(dict *Dictionary, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := dict.Answers()
	if cfg.NTop > 0 && cfg.NTop < len(pool) {
		pool = pool[:cfg.NTop]
	}

	initial := make([]string, 0, len(pool))
	for _, w := range pool {
		if cfg.FilterPastAnswers {
			if _, out := cfg.Exclusions[w]; out {
				continue
			}
		}
		initial = append(initial, w)
	}
	if len(initial) == 0 {
		return nil, ErrNoWords
	}

	s := &Session{dict: dict, cfg: cfg, initial: initial}
	s.candidates = append([]string{}, initial...)
	return s, nil
}

// Suggest ranks the current guess pool against the current candidates.
// Used for the initial suggestions and again after every guess.
func (s *Session) Suggest(alpha float64, topk int, restrict bool) ([]string, error) {
	pool := s.candidates
	if !restrict {
		pool = s.dict.Allowed()
	}
	return Rank(pool, s.candidates, s.dict, alpha, topk)
}

// SubmitGuess validates the guess and pattern, appends the record, shrinks
// the candidate set, and re-ranks. An emptied candidate set comes back as a
// Result with a warning message, not an error.
func (s *Session) SubmitGuess(word string, pattern Pattern, alpha float64, topk int, restrict bool) (Result, error) {
	if alpha < 0 || alpha > 1 {
		return Result{}, ErrInvalidAlpha
	}
	if topk <= 0 {
		return Result{}, ErrInvalidTopK
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if err := checkWord(word); err != nil {
		return Result{}, err
	}
	if !s.dict.IsAllowed(word) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownGuessWord, word)
	}

	rec := Record{Word: word, Pattern: pattern}
	s.history = append(s.history, rec)
	s.candidates = Apply(s.candidates, rec)

	res := Result{CandidatesRemaining: len(s.candidates)}

	// An all-green pattern means the guess itself was the secret, even if
	// the word sat outside the starting pool.
	if pattern.AllGreen() {
		s.solved = true
		res.Solved = true
		res.Suggestions = []string{word}
		res.Message = fmt.Sprintf("solved: answer is %q", word)
		return res, nil
	}

	switch len(s.candidates) {
	case 0:
		res.Message = "no candidates remain - check your pattern"
		return res, nil
	case 1:
		s.solved = true
		res.Solved = true
		res.Suggestions = []string{s.candidates[0]}
		res.Message = fmt.Sprintf("solved: answer is %q", s.candidates[0])
		return res, nil
	}

	sugg, err := s.Suggest(alpha, topk, restrict)
	if err != nil {
		return Result{}, err
	}
	res.Suggestions = sugg
	return res, nil
}

// Reset clears history and restores the original candidate pool.
func (s *Session) Reset() {
	s.candidates = append(s.candidates[:0:0], s.initial...)
	s.history = nil
	s.solved = false
}

// Status reports remaining candidates and guesses made.
func (s *Session) Status() (candidates, guesses int) {
	return len(s.candidates), len(s.history)
}

// Solved reports whether the session has narrowed to the answer.
func (s *Session) Solved() bool { return s.solved }

// Candidates returns the remaining candidate words. Callers must not
// mutate the returned slice.
func (s *Session) Candidates() []string { return s.candidates }

// Config returns the configuration the session was created with.
func (s *Session) Config() Config { return s.cfg }
