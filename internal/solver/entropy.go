// internal/solver/entropy.go
//
// Expected information gain of a guess.
//
// Candidates are partitioned by the feedback pattern each would produce
// against the guess; the entropy of that distribution is the expected
// number of bits the guess reveals, assuming the secret is uniform over the
// candidate set. Patterns are counted in a flat 3^5 array via Pattern.Key.

package solver

import "math"

// Entropy returns the expected information gain, in bits, of guessing
// guess against the current candidate set. Zero when the set has size <= 1
// or when every candidate lands in the same pattern group.
func Entropy(guess string, candidates []string) float64 {
	n := len(candidates)
	if n <= 1 {
		return 0
	}

	var counts [numPatterns]int
	for _, c := range candidates {
		counts[Encode(guess, c).Key()]++
	}

	total := float64(n)
	bits := 0.0
	for _, k := range counts {
		if k == 0 {
			continue
		}
		p := float64(k) / total
		bits -= p * math.Log2(p)
	}
	return bits
}
