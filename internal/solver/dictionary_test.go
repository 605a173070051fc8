package solver

import (
	"errors"
	"testing"
)

func TestNewDictionaryValidation(t *testing.T) {
	testCases := []struct {
		answers     []string
		allowed     []string
		expectError bool
	}{
		{[]string{"abcde"}, nil, false},
		{[]string{"abcde"}, []string{"fghij"}, false},
		{nil, nil, true},                       // no answers
		{[]string{"abcd"}, nil, true},          // too short
		{[]string{"abcdef"}, nil, true},        // too long
		{[]string{"abc1e"}, nil, true},         // non-letter
		{[]string{"ABCDE"}, nil, true},         // not lowercase
		{[]string{"abcde"}, []string{"x"}, true},
	}

	for _, testCase := range testCases {
		_, err := NewDictionary(testCase.answers, testCase.allowed, nil)
		if testCase.expectError && err == nil {
			t.Errorf("ERROR: For %v/%v expected error, got nil", testCase.answers, testCase.allowed)
		}
		if !testCase.expectError && err != nil {
			t.Errorf("ERROR: For %v/%v expected error:nil, got error:%v", testCase.answers, testCase.allowed, err)
		}
	}

	if _, err := NewDictionary(nil, nil, nil); !errors.Is(err, ErrNoWords) {
		t.Errorf("expected ErrNoWords for empty answers, got %v", err)
	}
}

func TestDictionaryOrdersAnswersByWeight(t *testing.T) {
	weights := map[string]float64{"zzzzz": 10, "abcde": 1, "abcdf": 5}
	d, err := NewDictionary([]string{"abcde", "abcdf", "zzzzz"}, nil, weights)
	if err != nil {
		t.Fatalf("build dictionary: %v", err)
	}
	want := []string{"zzzzz", "abcdf", "abcde"}
	if !sameWords(d.Answers(), want) {
		t.Fatalf("expected %v, got %v", want, d.Answers())
	}
}

func TestDictionaryDeduplicatesAnswers(t *testing.T) {
	d, err := NewDictionary([]string{"abcde", "abcde", "abcdf"}, nil, nil)
	if err != nil {
		t.Fatalf("build dictionary: %v", err)
	}
	if len(d.Answers()) != 2 {
		t.Fatalf("expected 2 answers, got %v", d.Answers())
	}
}

func TestDictionaryAllowedSuperset(t *testing.T) {
	d, err := NewDictionary([]string{"abcde"}, []string{"fghij", "abcde"}, nil)
	if err != nil {
		t.Fatalf("build dictionary: %v", err)
	}
	for _, w := range []string{"abcde", "fghij"} {
		if !d.IsAllowed(w) {
			t.Errorf("expected %q to be allowed", w)
		}
	}
	if d.IsAllowed("zzzzz") {
		t.Errorf("zzzzz should not be allowed")
	}
	if len(d.Allowed()) != 2 {
		t.Fatalf("expected 2 allowed words, got %v", d.Allowed())
	}
}

func TestDictionaryWeightFloor(t *testing.T) {
	d, err := NewDictionary([]string{"abcde"}, nil, map[string]float64{"abcde": 3})
	if err != nil {
		t.Fatalf("build dictionary: %v", err)
	}
	if w := d.Weight("abcde"); w != 3 {
		t.Errorf("expected weight 3, got %f", w)
	}
	if w := d.Weight("qqqqq"); w <= 0 {
		t.Errorf("unknown word weight must be positive, got %f", w)
	}
}
