package perturb

import (
	"math/rand"
	"testing"

	"github.com/stblake/polyalphabetic/internal/alphabet"
)

func TestKeywordPreservesPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	kw, _ := alphabet.TextToIndices("CIPHER")
	perm, prefixLen := alphabet.Keyed(kw)
	for i := 0; i < 200; i++ {
		Keyword(rng, &perm, prefixLen, i%2 == 0)
		if !alphabet.IsPermutation(perm) {
			t.Fatalf("iteration %d: Keyword produced a non-permutation: %v", i, perm)
		}
	}
}

func TestSwapOutsidePreservesSortedSuffix(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	kw, _ := alphabet.TextToIndices("CIPHER")
	perm, prefixLen := alphabet.Keyed(kw)
	for i := 0; i < 200; i++ {
		swapOutside(rng, &perm, prefixLen, false)
		for j := prefixLen + 1; j < alphabet.Size; j++ {
			if perm[j-1] >= perm[j] {
				t.Fatalf("iteration %d: suffix not sorted after swapOutside: %v", i, perm)
			}
		}
	}
}

func TestRandomKeywordIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		perm := RandomKeyword(rng, 6)
		if !alphabet.IsPermutation(perm) {
			t.Fatalf("RandomKeyword produced a non-permutation: %v", perm)
		}
	}
}

func TestRandomCyclewordLength(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	cw := RandomCycleword(rng, 7)
	if len(cw) != 7 {
		t.Errorf("RandomCycleword(7) has length %d, want 7", len(cw))
	}
	for _, v := range cw {
		if v < 0 || v >= alphabet.Size {
			t.Errorf("RandomCycleword produced out-of-range letter %d", v)
		}
	}
}

func TestCyclewordMutatesOneSlot(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cw := []int{1, 2, 3, 4, 5}
	before := append([]int(nil), cw...)
	Cycleword(rng, cw)
	diff := 0
	for i := range cw {
		if cw[i] != before[i] {
			diff++
		}
	}
	if diff > 1 {
		t.Errorf("Cycleword mutated %d slots, want at most 1", diff)
	}
}
