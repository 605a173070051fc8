package solver

import "testing"

func sameWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	candidates := []string{"abcde", "abcdf", "zzzzz"}

	testCases := []struct {
		history  []Record
		expected []string
	}{
		{nil, []string{"abcde", "abcdf", "zzzzz"}},
		{[]Record{{"abcde", Pattern{2, 2, 2, 2, 0}}}, []string{"abcdf"}},
		{[]Record{{"abcde", Pattern{0, 0, 0, 0, 0}}}, []string{"zzzzz"}},
		{[]Record{{"abcde", Pattern{2, 2, 2, 2, 2}}}, []string{"abcde"}},
		// Contradictory history empties the set.
		{[]Record{
			{"abcde", Pattern{0, 0, 0, 0, 0}},
			{"abcde", Pattern{2, 2, 2, 2, 0}},
		}, []string{}},
	}

	for _, testCase := range testCases {
		answer := Filter(candidates, testCase.history)
		if !sameWords(answer, testCase.expected) {
			t.Errorf("ERROR: For history %v expected %v, got %v", testCase.history, testCase.expected, answer)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	candidates := []string{"crane", "caner", "crate", "trace", "react"}
	history := []Record{{"crane", Encode("crane", "trace")}}

	once := Filter(candidates, history)
	twice := Filter(once, history)
	if !sameWords(once, twice) {
		t.Fatalf("filter not idempotent: %v vs %v", once, twice)
	}
}

func TestIncrementalEqualsReplay(t *testing.T) {
	candidates := []string{"crane", "caner", "crate", "trace", "react", "cater", "carte", "zzzzz"}
	records := []Record{
		{"crane", Encode("crane", "cater")},
		{"trace", Encode("trace", "cater")},
	}

	// Full replay of the whole history.
	replay := Filter(candidates, records)

	// Incremental: apply each record to the previous survivor set.
	incremental := candidates
	for _, r := range records {
		incremental = Apply(incremental, r)
	}

	if !sameWords(replay, incremental) {
		t.Fatalf("replay %v != incremental %v", replay, incremental)
	}
	for _, w := range replay {
		if !Consistent(w, records) {
			t.Errorf("survivor %q not consistent with history", w)
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	candidates := []string{"abcde", "abcdf", "zzzzz"}
	_ = Filter(candidates, []Record{{"abcde", Pattern{2, 2, 2, 2, 0}}})
	if !sameWords(candidates, []string{"abcde", "abcdf", "zzzzz"}) {
		t.Fatalf("input slice was mutated: %v", candidates)
	}
}
