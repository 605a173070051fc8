// internal/solver/filter.go
//
// Candidate filtering against observed feedback.
//
// A word stays a candidate iff, had it been the secret, every recorded
// guess would have produced exactly the recorded pattern. Filtering can be
// applied one record at a time (Apply) or replayed from scratch (Filter);
// the two are equivalent and that equivalence is covered by tests.

package solver

// Record is one observed (guess, pattern) pair. Append-only once produced.
type Record struct {
	Word    string
	Pattern Pattern
}

// Consistent reports whether word could be the secret given the full
// history.
func Consistent(word string, history []Record) bool {
	for _, r := range history {
		if Encode(r.Word, word) != r.Pattern {
			return false
		}
	}
	return true
}

// Filter returns the subset of candidates consistent with every record in
// history. The input slice is not modified.
func Filter(candidates []string, history []Record) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if Consistent(w, history) {
			out = append(out, w)
		}
	}
	return out
}

// Apply returns the subset of candidates consistent with a single new
// record. Applying records one at a time yields the same set as a full
// Filter over the whole history.
func Apply(candidates []string, r Record) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if Encode(r.Word, w) == r.Pattern {
			out = append(out, w)
		}
	}
	return out
}
