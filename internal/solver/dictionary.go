// internal/solver/dictionary.go
//
// Immutable word dictionary shared by solver sessions.
//
// The dictionary is split the way the game splits its lists:
//   - answers: words the secret could be, ordered by descending prior
//     weight so an n_top subset keeps the most common words.
//   - allowed: every word a player may type (always a superset of answers).
//
// A Dictionary is read-only after construction and safe to share across
// goroutines without locking.

package solver

import (
	"fmt"
	"sort"
)

// minWeight is the prior weight assigned to words with no known frequency.
// Never zero, so a guess-legal word cannot degenerate the blended score.
const minWeight = 0.01

// Dictionary holds the answer list, the allowed-guess set, and the
// frequency prior.
type Dictionary struct {
	answers    []string
	allowed    []string
	allowedSet map[string]struct{}
	weights    map[string]float64
}

// NewDictionary builds a dictionary from answer words, allowed guess words,
// and prior weights. Answers are deduplicated, validated to WordLen
// lowercase letters, and sorted by descending weight (ties lexicographic).
// Allowed always includes the answers. Weights may be nil.
func NewDictionary(answers, allowed []string, weights map[string]float64) (*Dictionary, error) {
	d := &Dictionary{
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
		weights:    make(map[string]float64, len(weights)),
	}
	for w, f := range weights {
		if f > 0 {
			d.weights[w] = f
		}
	}

	seen := make(map[string]struct{}, len(answers))
	for _, w := range answers {
		if err := checkWord(w); err != nil {
			return nil, fmt.Errorf("answer %q: %w", w, err)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		d.answers = append(d.answers, w)
	}
	if len(d.answers) == 0 {
		return nil, ErrNoWords
	}

	// Most common answers first; n_top slices from the front.
	sort.Slice(d.answers, func(i, j int) bool {
		wi, wj := d.Weight(d.answers[i]), d.Weight(d.answers[j])
		if wi != wj {
			return wi > wj
		}
		return d.answers[i] < d.answers[j]
	})

	for _, w := range d.answers {
		d.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if err := checkWord(w); err != nil {
			return nil, fmt.Errorf("allowed %q: %w", w, err)
		}
		if _, ok := d.allowedSet[w]; !ok {
			d.allowedSet[w] = struct{}{}
			d.allowed = append(d.allowed, w)
		}
	}
	// Full guess list: answers plus the extras, stable order.
	d.allowed = append(append([]string{}, d.answers...), d.allowed...)

	return d, nil
}

// Answers returns the answer words, most common first. Callers must not
// mutate the returned slice.
func (d *Dictionary) Answers() []string { return d.answers }

// Allowed returns every legal guess word. Callers must not mutate the
// returned slice.
func (d *Dictionary) Allowed() []string { return d.allowed }

// IsAllowed reports whether w is a legal guess.
func (d *Dictionary) IsAllowed(w string) bool {
	_, ok := d.allowedSet[w]
	return ok
}

// Weight returns the prior weight for w, with a positive floor for words
// that have no known frequency.
func (d *Dictionary) Weight(w string) float64 {
	if f, ok := d.weights[w]; ok && f > minWeight {
		return f
	}
	return minWeight
}

// checkWord validates a dictionary entry: WordLen lowercase ASCII letters.
func checkWord(w string) error {
	if len(w) != WordLen {
		return ErrInvalidWordLength
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return ErrInvalidWordLength
		}
	}
	return nil
}
