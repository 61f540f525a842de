// Package perturb implements the keyword and cycleword mutation moves the
// hill-climber applies on each inner iteration, plus the random initializers used
// to seed a fresh search state.
package perturb

import (
	"math/rand"

	"github.com/stblake/polyalphabetic/internal/alphabet"
)

// swapWithinProbability is the Bernoulli weight favoring the swap-within
// move over swap-outside, per §4.6.
const swapWithinProbability = 0.8

// Keyword perturbs a keyed alphabet in place, selecting swap-within (80%)
// or swap-outside (20%). When weighted is true (the default), the acted-on
// index within each region is drawn with probability proportional to
// EnglishMonograms[perm[index]] rather than uniformly.
func Keyword(rng *rand.Rand, perm *[alphabet.Size]int, prefixLen int, weighted bool) {
	if prefixLen <= 0 {
		return
	}
	if rng.Float64() < swapWithinProbability {
		swapWithin(rng, perm, prefixLen, weighted)
	} else {
		swapOutside(rng, perm, prefixLen, weighted)
	}
}

// swapWithin swaps two positions within [0, prefixLen).
func swapWithin(rng *rand.Rand, perm *[alphabet.Size]int, prefixLen int, weighted bool) {
	if prefixLen < 2 {
		return
	}
	i := pickIndex(rng, perm, 0, prefixLen, weighted)
	j := pickIndex(rng, perm, 0, prefixLen, weighted)
	if i == j {
		j = (j + 1) % prefixLen
	}
	perm[i], perm[j] = perm[j], perm[i]
}

// swapOutside moves a prefix value out into the sorted suffix region and
// re-inserts the displaced suffix value at its correct sorted position,
// preserving the invariant that perm[prefixLen:] stays sorted.
func swapOutside(rng *rand.Rand, perm *[alphabet.Size]int, prefixLen int, weighted bool) {
	if prefixLen >= alphabet.Size {
		return
	}
	i := pickIndex(rng, perm, 0, prefixLen, weighted)
	j := pickIndex(rng, perm, prefixLen, alphabet.Size, weighted)

	displaced := perm[i]
	incoming := perm[j]
	perm[i] = incoming

	// Remove position j from the suffix and re-insert `displaced` at its
	// sorted position within [prefixLen, Size).
	suffix := make([]int, 0, alphabet.Size-prefixLen-1)
	for k := prefixLen; k < alphabet.Size; k++ {
		if k == j {
			continue
		}
		suffix = append(suffix, perm[k])
	}
	insertAt := 0
	for insertAt < len(suffix) && suffix[insertAt] < displaced {
		insertAt++
	}
	suffix = append(suffix[:insertAt], append([]int{displaced}, suffix[insertAt:]...)...)
	for k := 0; k < len(suffix); k++ {
		perm[prefixLen+k] = suffix[k]
	}
}

// pickIndex draws an index in [lo,hi) from perm, uniformly or (when
// weighted) proportional to EnglishMonograms[perm[index]] via cumulative-sum
// sampling.
func pickIndex(rng *rand.Rand, perm *[alphabet.Size]int, lo, hi int, weighted bool) int {
	if !weighted || hi <= lo {
		return lo + rng.Intn(hi-lo)
	}
	var total float64
	for k := lo; k < hi; k++ {
		total += alphabet.EnglishMonograms[perm[k]]
	}
	if total <= 0 {
		return lo + rng.Intn(hi-lo)
	}
	target := rng.Float64() * total
	var cum float64
	for k := lo; k < hi; k++ {
		cum += alphabet.EnglishMonograms[perm[k]]
		if cum >= target {
			return k
		}
	}
	return hi - 1
}

// Cycleword overwrites one uniformly random slot of cycleword with a
// uniformly random letter.
func Cycleword(rng *rand.Rand, cycleword []int) {
	if len(cycleword) == 0 {
		return
	}
	slot := rng.Intn(len(cycleword))
	cycleword[slot] = rng.Intn(alphabet.Size)
}

// RandomKeyword draws a fresh keyed alphabet with the given prefix length:
// prefixLen distinct random letters, followed by the rest in sorted order.
func RandomKeyword(rng *rand.Rand, prefixLen int) [alphabet.Size]int {
	if prefixLen > alphabet.Size {
		prefixLen = alphabet.Size
	}
	letters := rng.Perm(alphabet.Size)
	keyword := letters[:prefixLen]
	perm, _ := alphabet.Keyed(keyword)
	return perm
}

// RandomCycleword draws a uniformly random cycleword of the given length.
func RandomCycleword(rng *rand.Rand, length int) []int {
	out := make([]int, length)
	for i := range out {
		out[i] = rng.Intn(alphabet.Size)
	}
	return out
}
