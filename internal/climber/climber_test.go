package climber

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/ciphertype"
	"github.com/stblake/polyalphabetic/internal/fitness"
	"github.com/stblake/polyalphabetic/internal/ngram"
	"github.com/stblake/polyalphabetic/internal/tableau"
)

func TestRunRecoversVigenereKeyWithOptimalCycle(t *testing.T) {
	plain := "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGANDCONTINUESONFORQUITESOMEWHILELONGERTOGIVEENOUGHLETTERS"
	pt, _ := alphabet.TextToIndices(plain)
	key, _ := alphabet.TextToIndices("KEY")
	straight := alphabet.Straight()
	ct := tableau.Encrypt(pt, tableau.State{Type: ciphertype.Vigenere, PT: straight, CT: straight, Cycleword: key})

	table, err := ngram.Load(strings.NewReader("TH\t1000\nHE\t800\nIN\t500\n"), 2)
	if err != nil {
		t.Fatalf("ngram.Load: %v", err)
	}

	cfg := Config{
		Type:         ciphertype.Vigenere,
		Period:       len(key),
		NHillClimbs:  1,
		NRestarts:    1,
		OptimalCycle: true,
		Weights:      fitness.Weights{Ngram: 1},
	}
	rng := rand.New(rand.NewSource(1))
	result := Run(ct, nil, nil, table, cfg, rng, nil)
	if !equalInts(result.Best.Cycleword, key) {
		t.Errorf("recovered cycleword = %v, want %v", result.Best.Cycleword, key)
	}
}

func equalInts(a, b []int) bool {
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
