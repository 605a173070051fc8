package solver

import (
	"errors"
	"testing"
)

func testSession(t *testing.T, cfg Config, answers ...string) *Session {
	t.Helper()
	if answers == nil {
		answers = []string{"abcde", "abcdf", "zzzzz"}
	}
	d := testDict(t, answers, nil)
	s, err := NewSession(d, cfg)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func defaultConfig() Config {
	return Config{Alpha: 0.7, TopK: 5, RestrictGuesses: true}
}

func TestNewSessionValidation(t *testing.T) {
	d := testDict(t, []string{"abcde"}, nil)

	testCases := []struct {
		cfg      Config
		expected error
	}{
		{Config{Alpha: -1, TopK: 5}, ErrInvalidAlpha},
		{Config{Alpha: 2, TopK: 5}, ErrInvalidAlpha},
		{Config{Alpha: 0.5, TopK: 0}, ErrInvalidTopK},
		{Config{Alpha: 0.5, TopK: 5}, nil},
	}

	for _, testCase := range testCases {
		_, err := NewSession(d, testCase.cfg)
		if !errors.Is(err, testCase.expected) {
			t.Errorf("ERROR: For %+v expected %v, got %v", testCase.cfg, testCase.expected, err)
		}
	}
}

func TestNewSessionNTop(t *testing.T) {
	weights := map[string]float64{"zzzzz": 10, "abcdf": 5, "abcde": 1}
	d, err := NewDictionary([]string{"abcde", "abcdf", "zzzzz"}, nil, weights)
	if err != nil {
		t.Fatalf("build dictionary: %v", err)
	}
	cfg := defaultConfig()
	cfg.NTop = 2
	s, err := NewSession(d, cfg)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	cand, _ := s.Status()
	if cand != 2 {
		t.Fatalf("expected 2 candidates, got %d", cand)
	}
	// The pool keeps the most common words.
	if !sameWords(s.Candidates(), []string{"zzzzz", "abcdf"}) {
		t.Fatalf("expected the two heaviest words, got %v", s.Candidates())
	}
}

func TestNewSessionExclusions(t *testing.T) {
	cfg := defaultConfig()
	cfg.FilterPastAnswers = true
	cfg.Exclusions = map[string]struct{}{"zzzzz": {}}
	s := testSession(t, cfg)
	if cand, _ := s.Status(); cand != 2 {
		t.Fatalf("expected 2 candidates after exclusion, got %d", cand)
	}

	// Without the flag the exclusion set is ignored.
	cfg.FilterPastAnswers = false
	s = testSession(t, cfg)
	if cand, _ := s.Status(); cand != 3 {
		t.Fatalf("expected 3 candidates without filtering, got %d", cand)
	}
}

func TestSubmitGuessValidation(t *testing.T) {
	testCases := []struct {
		word     string
		expected error
	}{
		{"abc", ErrInvalidWordLength},
		{"abcdef", ErrInvalidWordLength},
		{"abc1e", ErrInvalidWordLength},
		{"qqqqq", ErrUnknownGuessWord},
	}

	for _, testCase := range testCases {
		s := testSession(t, defaultConfig())
		_, err := s.SubmitGuess(testCase.word, Pattern{}, 0.7, 5, true)
		if !errors.Is(err, testCase.expected) {
			t.Errorf("ERROR: For %q expected %v, got %v", testCase.word, testCase.expected, err)
		}
	}

	s := testSession(t, defaultConfig())
	if _, err := s.SubmitGuess("abcde", Pattern{}, 5, 5, true); !errors.Is(err, ErrInvalidAlpha) {
		t.Errorf("expected ErrInvalidAlpha, got %v", err)
	}
	if _, err := s.SubmitGuess("abcde", Pattern{}, 0.7, 0, true); !errors.Is(err, ErrInvalidTopK) {
		t.Errorf("expected ErrInvalidTopK, got %v", err)
	}
	// Failed validation must not consume the guess.
	if _, guesses := s.Status(); guesses != 0 {
		t.Fatalf("invalid guesses should not enter history, got %d", guesses)
	}
}

func TestSubmitGuessNarrowsToSolved(t *testing.T) {
	// Dictionary {"abcde","abcdf","zzzzz"}: guessing "abcde" against the
	// secret "abcdf" produces [2,2,2,2,0] and leaves one candidate.
	s := testSession(t, defaultConfig())
	res, err := s.SubmitGuess("abcde", Pattern{2, 2, 2, 2, 0}, 0.7, 5, true)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Solved {
		t.Fatalf("expected solved, got %+v", res)
	}
	if res.CandidatesRemaining != 1 || len(res.Suggestions) != 1 || res.Suggestions[0] != "abcdf" {
		t.Fatalf("expected single suggestion abcdf, got %+v", res)
	}
	if !s.Solved() {
		t.Fatalf("session should report solved")
	}
}

func TestSubmitGuessAllGreenSolves(t *testing.T) {
	s := testSession(t, defaultConfig())
	res, err := s.SubmitGuess("zzzzz", Pattern{2, 2, 2, 2, 2}, 0.7, 5, true)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Solved || len(res.Suggestions) != 1 || res.Suggestions[0] != "zzzzz" {
		t.Fatalf("expected all-green solve on zzzzz, got %+v", res)
	}
}

func TestSubmitGuessEmptyCandidates(t *testing.T) {
	s := testSession(t, defaultConfig())

	// All-gray leaves only zzzzz; a following contradictory pattern
	// empties the set. That is reported, not thrown away.
	if _, err := s.SubmitGuess("abcde", Pattern{0, 0, 0, 0, 0}, 0.7, 5, true); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	res, err := s.SubmitGuess("abcde", Pattern{2, 2, 2, 2, 0}, 0.7, 5, true)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if res.CandidatesRemaining != 0 || res.Solved {
		t.Fatalf("expected empty unsolved result, got %+v", res)
	}
	if res.Message == "" {
		t.Fatalf("empty candidate set must carry a warning message")
	}
}

func TestSubmitGuessInProgressSuggestions(t *testing.T) {
	s := testSession(t, defaultConfig(), "abcde", "abcdf", "abcfe", "zzzzz")
	// All-gray on zzzzz keeps the three abc* words alive.
	res, err := s.SubmitGuess("zzzzz", Pattern{0, 0, 0, 0, 0}, 0.7, 2, true)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Solved {
		t.Fatalf("should not be solved yet: %+v", res)
	}
	if res.CandidatesRemaining != 3 {
		t.Fatalf("expected 3 candidates, got %d", res.CandidatesRemaining)
	}
	if len(res.Suggestions) != 2 {
		t.Fatalf("expected topk=2 suggestions, got %v", res.Suggestions)
	}
}

func TestResetRestoresInitialPool(t *testing.T) {
	cfg := defaultConfig()
	cfg.FilterPastAnswers = true
	cfg.Exclusions = map[string]struct{}{"zzzzz": {}}
	s := testSession(t, cfg)

	if _, err := s.SubmitGuess("abcde", Pattern{2, 2, 2, 2, 0}, 0.7, 5, true); err != nil {
		t.Fatalf("submit: %v", err)
	}
	s.Reset()

	cand, guesses := s.Status()
	if cand != 2 || guesses != 0 || s.Solved() {
		t.Fatalf("reset did not restore FRESH state: cand=%d guesses=%d solved=%t", cand, guesses, s.Solved())
	}
}

func TestSuggestUnrestrictedUsesFullDictionary(t *testing.T) {
	d, err := NewDictionary([]string{"abcde", "abcdf"}, []string{"fghij"}, nil)
	if err != nil {
		t.Fatalf("build dictionary: %v", err)
	}
	s, err := NewSession(d, defaultConfig())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	sugg, err := s.Suggest(0.7, 10, false)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(sugg) != 3 {
		t.Fatalf("expected suggestions drawn from the full allowed list, got %v", sugg)
	}
}
