package fitness

import (
	"strings"
	"testing"

	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/ngram"
)

func sampleTable(t *testing.T) *ngram.Table {
	tbl, err := ngram.Load(strings.NewReader("TH\t1000\nHE\t800\nIN\t500\n"), 2)
	if err != nil {
		t.Fatalf("ngram.Load: %v", err)
	}
	return tbl
}

func TestScoreZeroWeightsFallsBackToNgram(t *testing.T) {
	tbl := sampleTable(t)
	decrypted, _ := alphabet.TextToIndices("THETHETHE")
	got := Score(decrypted, tbl, nil, nil, Weights{})
	want := tbl.Score(decrypted)
	if got != want {
		t.Errorf("Score with zero weights = %v, want ngram-only score %v", got, want)
	}
}

func TestScoreNoCribDoesNotPanic(t *testing.T) {
	tbl := sampleTable(t)
	decrypted, _ := alphabet.TextToIndices("HELLOWORLD")
	Score(decrypted, tbl, nil, nil, Weights{Ngram: 1, Crib: 1})
}

func TestCribMatchCount(t *testing.T) {
	decrypted, _ := alphabet.TextToIndices("HELLO")
	positions := []int{0, 1, 4}
	values := []int{'H' - 'A', 'X' - 'A', 'O' - 'A'} // position 1 deliberately wrong
	got := CribMatchCount(decrypted, positions, values)
	if got != 2 {
		t.Errorf("CribMatchCount = %d, want 2", got)
	}
}

func TestScoreHigherForFullCribMatch(t *testing.T) {
	tbl := sampleTable(t)
	decrypted, _ := alphabet.TextToIndices("HELLO")
	positions := []int{0, 1, 2, 3, 4}
	correctValues := decrypted
	wrongValues := []int{25, 25, 25, 25, 25}

	w := Weights{Ngram: 1, Crib: 10}
	good := Score(decrypted, tbl, positions, correctValues, w)
	bad := Score(decrypted, tbl, positions, wrongValues, w)
	if good <= bad {
		t.Errorf("Score with full crib match (%v) should exceed Score with no crib match (%v)", good, bad)
	}
}
