package words

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestKeepValid(t *testing.T) {
	testCases := []struct {
		lines    []string
		expected []string
	}{
		{[]string{"crane", "slate"}, []string{"crane", "slate"}},
		{[]string{"crane", "toolong", "abc", "ab1de", ""}, []string{"crane"}},
		{nil, []string{}},
	}

	for _, testCase := range testCases {
		answer := keepValid(testCase.lines)
		if len(answer) != len(testCase.expected) {
			t.Errorf("ERROR: For %v expected %v, got %v", testCase.lines, testCase.expected, answer)
			continue
		}
		for i := range answer {
			if answer[i] != testCase.expected[i] {
				t.Errorf("ERROR: For %v expected %v, got %v", testCase.lines, testCase.expected, answer)
			}
		}
	}
}

func TestParseFreqs(t *testing.T) {
	lines := []string{
		"crane 1000",
		"slate 10",
		"toolong 5",  // wrong length
		"abcde",      // missing count
		"trace zero", // unparsable count
		"stare -3",   // non-positive
	}
	weights := parseFreqs(lines)
	if len(weights) != 2 {
		t.Fatalf("expected 2 weights, got %v", weights)
	}
	if weights["crane"] <= weights["slate"] {
		t.Fatalf("heavier count must produce heavier weight: %v", weights)
	}
	for w, f := range weights {
		if f <= 0 {
			t.Errorf("weight for %q must be positive, got %f", w, f)
		}
	}
}

func TestReadLinesSkipsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.txt", "# header\n\nCRANE\n  slate  \n")
	got, err := readLines(path)
	if err != nil {
		t.Fatalf("readLines: %v", err)
	}
	if len(got) != 2 || got[0] != "crane" || got[1] != "slate" {
		t.Fatalf("expected [crane slate], got %v", got)
	}
}

func TestInitFromEnvFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORDS_ANSWERS_FILE", writeFile(t, dir, "answers.txt", "crane\nslate\nbadword\n"))
	t.Setenv("WORDS_ALLOWED_FILE", writeFile(t, dir, "allowed.txt", "soare\n"))
	t.Setenv("WORDS_FREQ_FILE", writeFile(t, dir, "freqs.txt", "crane 100\nslate 10\n"))
	t.Setenv("PAST_ANSWERS_FILE", writeFile(t, dir, "past.txt", "slate\n"))

	if err := Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	answers, allowed, weighted := Stats()
	if answers != 2 {
		t.Fatalf("expected 2 answers, got %d", answers)
	}
	if allowed != 3 {
		t.Fatalf("expected 3 allowed words, got %d", allowed)
	}
	if weighted != 2 {
		t.Fatalf("expected 2 weighted words, got %d", weighted)
	}

	d := Dictionary()
	if d == nil {
		t.Fatal("dictionary not built")
	}
	// crane has the heavier count, so it leads the answers.
	if d.Answers()[0] != "crane" {
		t.Fatalf("expected crane first, got %v", d.Answers())
	}
	if !d.IsAllowed("soare") {
		t.Fatalf("soare should be allowed")
	}

	if _, ok := PastAnswers()["slate"]; !ok {
		t.Fatalf("expected slate in past answers, got %v", PastAnswers())
	}
}
