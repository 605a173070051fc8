// internal/solver/pattern.go
//
// Feedback pattern encoding for the solver engine.
// Defines:
//   - Mark: per-letter feedback value (gray/yellow/green).
//   - Pattern: fixed-length feedback for one guess.
//   - Encode: the two-pass scoring rule, repeated letters included.
//
// Notes:
//   - The integer values 0/1/2 are the wire representation used by callers;
//     PatternFromInts validates that boundary.
//   - Key() packs a pattern into a single base-3 byte so entropy partitions
//     can be counted in a flat array instead of a map.

package solver

import "fmt"

// WordLen is the fixed word length the engine operates on.
const WordLen = 5

// numPatterns is 3^WordLen, the number of distinct feedback patterns.
const numPatterns = 243

// Mark is the feedback for a single letter position.
//   - MarkGray:   letter not in the secret (or all occurrences spoken for).
//   - MarkYellow: letter in the secret, wrong position.
//   - MarkGreen:  letter in the correct position.
type Mark uint8

const (
	MarkGray   Mark = 0
	MarkYellow Mark = 1
	MarkGreen  Mark = 2
)

// Pattern is the per-position feedback for one guess, length WordLen.
type Pattern [WordLen]Mark

// Encode scores guess against secret using the standard two-pass rule.
//
// Pass 1:
//   - Mark exact matches green.
//   - Count the remaining (non-green) secret letters.
//
// Pass 2:
//   - For each non-green guess letter: if there is remaining count for that
//     letter, mark yellow and decrement; otherwise gray.
//
// The shared count table is what makes doubled letters come out right: a
// guess with two of a letter the secret holds once gets at most one
// non-gray mark for it.
//
// Both words must be WordLen lowercase a-z; callers validate.
func Encode(guess, secret string) Pattern {
	var p Pattern

	// Letter frequency for the non-green positions (a-z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == secret[i] {
			p[i] = MarkGreen
		} else {
			counts[secret[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] == MarkGreen {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			p[i] = MarkYellow
			counts[j]--
		}
	}
	return p
}

// Key packs the pattern into a base-3 value in [0, numPatterns).
// Position 0 is the lowest trit.
func (p Pattern) Key() uint8 {
	k := 0
	for i := WordLen - 1; i >= 0; i-- {
		k = k*3 + int(p[i])
	}
	return uint8(k)
}

// AllGreen reports whether every position is green.
func (p Pattern) AllGreen() bool {
	for _, m := range p {
		if m != MarkGreen {
			return false
		}
	}
	return true
}

// Ints returns the wire representation: one int in {0,1,2} per position.
func (p Pattern) Ints() []int {
	out := make([]int, WordLen)
	for i, m := range p {
		out[i] = int(m)
	}
	return out
}

// PatternFromInts converts the wire representation into a Pattern.
// Returns ErrInvalidPatternLength if the slice is not WordLen long or any
// symbol is outside {0,1,2}.
func PatternFromInts(vals []int) (Pattern, error) {
	var p Pattern
	if len(vals) != WordLen {
		return p, fmt.Errorf("%w: got %d symbols, want %d", ErrInvalidPatternLength, len(vals), WordLen)
	}
	for i, v := range vals {
		if v < 0 || v > 2 {
			return p, fmt.Errorf("%w: symbol %d at position %d", ErrInvalidPatternLength, v, i)
		}
		p[i] = Mark(v)
	}
	return p, nil
}
