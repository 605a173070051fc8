// internal/words/words.go
//
// Word list and frequency loading for the solver engine.
//
// Responsibilities:
//   - Load answer, allowed-guess, frequency, and past-answer lists from
//     environment-provided files or fall back to embedded defaults.
//   - Build the shared read-only solver.Dictionary.
//   - Expose the past-answer exclusion set and list stats.
//
// Word Lists:
//   - "answers": words the secret could be (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//   - "freqs":   "word count" pairs feeding the frequency prior.
//   - "past":    past puzzle answers, excluded from fresh pools on request.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//   WORDS_FREQ_FILE=/path/to/freqs.txt
//   PAST_ANSWERS_FILE=/path/to/past.txt
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); malformed lines are skipped.
//   • Lists are normalized to lowercase.
//   • Raw counts are damped with log10(1+count) before they become weights.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/solver-server/assets"
	"github.com/robalobadob/wordle/apps/solver-server/internal/solver"
)

var (
	initOnce   sync.Once
	dict       *solver.Dictionary
	past       map[string]struct{}
	answersN   int
	allowedN   int
	weightedN  int
	initialErr error
)

// Init loads word data exactly once and builds the shared dictionary.
func Init() error {
	initOnce.Do(func() {
		answers, err := listFromEnv("WORDS_ANSWERS_FILE", assets.AnswersList)
		if err != nil {
			initialErr = err
			return
		}
		allowed, err := listFromEnv("WORDS_ALLOWED_FILE", assets.AllowedList)
		if err != nil {
			initialErr = err
			return
		}
		freqLines, err := linesFromEnv("WORDS_FREQ_FILE", assets.FreqList)
		if err != nil {
			initialErr = err
			return
		}
		pastList, err := listFromEnv("PAST_ANSWERS_FILE", assets.PastAnswersList)
		if err != nil {
			initialErr = err
			return
		}

		if len(answers) == 0 {
			initialErr = errors.New("words: answers list is empty")
			return
		}

		weights := parseFreqs(freqLines)
		d, err := solver.NewDictionary(answers, allowed, weights)
		if err != nil {
			initialErr = err
			return
		}

		dict = d
		past = toSet(pastList)
		answersN = len(d.Answers())
		allowedN = len(d.Allowed())
		weightedN = len(weights)
	})
	return initialErr
}

// Dictionary returns the shared dictionary. Init must have succeeded.
func Dictionary() *solver.Dictionary { return dict }

// PastAnswers returns the exclusion set of past puzzle answers.
func PastAnswers() map[string]struct{} { return past }

// Stats returns counts of loaded words: (answers, allowed, weighted).
func Stats() (int, int, int) { return answersN, allowedN, weightedN }

// listFromEnv reads a word list from the file named by env var key, or from
// the embedded fallback when the var is unset.
func listFromEnv(key string, fallback func() ([]string, error)) ([]string, error) {
	if path := os.Getenv(key); path != "" {
		return readWordFile(path)
	}
	lines, err := fallback()
	if err != nil {
		return nil, err
	}
	return keepValid(lines), nil
}

// linesFromEnv is listFromEnv without word validation, for files whose
// lines carry more than a bare word.
func linesFromEnv(key string, fallback func() ([]string, error)) ([]string, error) {
	if path := os.Getenv(key); path != "" {
		return readLines(path)
	}
	return fallback()
}

// readWordFile loads one word per line from a file, lowercases, trims, and
// keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	return keepValid(lines), nil
}

// readLines loads non-empty, non-comment lines from a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(strings.ToLower(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// keepValid filters a line list down to valid 5-letter words.
func keepValid(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, w := range lines {
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// parseFreqs turns "word count" lines into damped prior weights.
// Malformed lines and words of the wrong shape are skipped.
func parseFreqs(lines []string) map[string]float64 {
	weights := make(map[string]float64, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		w := fields[0]
		if len(w) != 5 || !isAlpha(w) {
			continue
		}
		n, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || n <= 0 {
			continue
		}
		weights[w] = math.Log10(1 + n)
	}
	return weights
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
