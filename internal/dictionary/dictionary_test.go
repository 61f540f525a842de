package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWordList(t *testing.T, words ...string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create word list: %v", err)
	}
	defer f.Close()
	for _, w := range words {
		f.WriteString(w + "\n")
	}
	return path
}

func TestLoadSortsDescendingLength(t *testing.T) {
	path := writeWordList(t, "CAT", "ELEPHANT", "DOG", "ANT")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 1; i < len(d.words); i++ {
		if len(d.words[i-1]) < len(d.words[i]) {
			t.Fatalf("words not sorted descending by length: %v", d.words)
		}
	}
}

func TestFindWordsCountsOverlaps(t *testing.T) {
	path := writeWordList(t, "CAT", "ATE")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// "CATE" contains both "CAT" (0:3) and "ATE" (1:4), overlapping at "AT".
	matches := d.FindWords("CATE")
	if len(matches) != 2 {
		t.Fatalf("FindWords(\"CATE\") = %v, want 2 overlapping matches", matches)
	}
}

func TestFindWordsIgnoresShortFragments(t *testing.T) {
	path := writeWordList(t, "AT", "GO")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Both dictionary words are shorter than minWordLen (3), so nothing
	// should ever match regardless of what plaintext is scanned.
	if matches := d.FindWords("ATGOATGO"); len(matches) != 0 {
		t.Errorf("FindWords with sub-minWordLen dictionary words = %v, want none", matches)
	}
}

func TestFindWordsNoMatches(t *testing.T) {
	path := writeWordList(t, "ZEBRA")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if matches := d.FindWords("QQQQQQ"); len(matches) != 0 {
		t.Errorf("FindWords(no overlap) = %v, want none", matches)
	}
}

func TestScoreWeightsLongerMatchesMoreHeavily(t *testing.T) {
	d := &Dictionary{}
	short := d.Score([]string{"CAT"})
	long := d.Score([]string{"ELEPHANT"})
	if long <= short {
		t.Errorf("Score(%q) = %v, want > Score(%q) = %v", "ELEPHANT", long, "CAT", short)
	}
	if got := d.Score(nil); got != 0 {
		t.Errorf("Score(nil) = %v, want 0", got)
	}
}

func TestExists(t *testing.T) {
	path := writeWordList(t, "WORD")
	if !Exists(path) {
		t.Errorf("Exists(%q) = false, want true", path)
	}
	if Exists(filepath.Join(t.TempDir(), "does-not-exist.txt")) {
		t.Error("Exists(missing path) = true, want false")
	}
}
