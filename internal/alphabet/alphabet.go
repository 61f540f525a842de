// Package alphabet provides the index/char conversions, keyed-alphabet
// construction, and the statistical primitives (IoC, entropy, chi-squared)
// shared across the rest of the solver. Every symbol here is an int in
// [0,25]; A=0 .. Z=25, matching the convention the rest of the engine uses
// so that decrypted buffers never need to round-trip through runes.
package alphabet

import (
	"math"

	"github.com/pkg/errors"
)

// Size is the size of the Latin alphabet this engine operates over.
const Size = 26

// EnglishMonograms are the reference single-letter frequencies used by the
// fitness function, the optimal cycleword deriver, and the frequency-weighted
// perturbators. They sum to ~1 and must never be renormalized at runtime —
// callers treat them as fixed constants.
var EnglishMonograms = [Size]float64{
	0.085517, 0.016048, 0.031644, 0.038712, 0.120965, 0.021815, 0.020863,
	0.049557, 0.073251, 0.002198, 0.008087, 0.042065, 0.025263, 0.071722,
	0.074673, 0.020662, 0.001040, 0.063327, 0.067282, 0.089381, 0.026816,
	0.010593, 0.018254, 0.001914, 0.017214, 0.001138,
}

// EnglishWordLengthFrequencies gives the relative frequency of English words
// of length 1..25, used by the dictionary matcher's scoring heuristics.
var EnglishWordLengthFrequencies = [25]float64{
	0.03160, 0.20377, 0.14798, 0.14025, 0.10470, 0.08952, 0.07409, 0.05454,
	0.04020, 0.02835, 0.01926, 0.01267, 0.00847, 0.00484, 0.00294, 0.00173,
	0.00104, 0.00052, 0.00028, 0.00015, 0.00008, 0.00004, 0.00002, 0.00001,
	0.00001,
}

// ReferenceEnglishIoC is the expected Index of Coincidence of running English
// text (scaled by 26), used as the target in the fitness function's IoC term.
const ReferenceEnglishIoC = 1.742

// ReferenceEnglishEntropy is the expected Shannon entropy (nats) of running
// English text, used as the target in the fitness function's entropy term.
const ReferenceEnglishEntropy = 2.85

// Index converts an uppercase ASCII letter to its [0,25] index.
func Index(c byte) (int, error) {
	if c < 'A' || c > 'Z' {
		return 0, errors.Errorf("not an uppercase letter: %q", c)
	}
	return int(c - 'A'), nil
}

// Char converts a [0,25] index back to its uppercase ASCII letter.
func Char(i int) byte {
	return byte('A' + i%Size)
}

// TextToIndices converts an uppercase A-Z string to its index sequence.
func TextToIndices(s string) ([]int, error) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		idx, err := Index(s[i])
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", i)
		}
		out[i] = idx
	}
	return out, nil
}

// IndicesToText converts an index sequence back to an uppercase string.
func IndicesToText(idx []int) string {
	buf := make([]byte, len(idx))
	for i, v := range idx {
		buf[i] = Char(v)
	}
	return string(buf)
}

// Straight returns the identity permutation [0,1,...,25], used as the PT/CT
// alphabet for Vigenere, Beaufort, and Porta, and as the starting point for
// every keyed alphabet before a keyword is applied.
func Straight() [Size]int {
	var a [Size]int
	for i := range a {
		a[i] = i
	}
	return a
}

// Keyed builds a keyed alphabet from a keyword given as a sequence of
// letter indices: the keyword's distinct letters in first-occurrence order,
// followed by the remaining letters in ascending order. Returns the
// permutation and the keyword's "prefix length" (count of distinct letters).
func Keyed(keyword []int) (perm [Size]int, prefixLen int) {
	var used [Size]bool
	n := 0
	for _, k := range keyword {
		if k < 0 || k >= Size {
			continue
		}
		if !used[k] {
			used[k] = true
			perm[n] = k
			n++
		}
	}
	for letter := 0; letter < Size; letter++ {
		if !used[letter] {
			perm[n] = letter
			n++
		}
	}
	return perm, len(uniqueInOrder(keyword))
}

func uniqueInOrder(keyword []int) []int {
	var used [Size]bool
	out := make([]int, 0, len(keyword))
	for _, k := range keyword {
		if k < 0 || k >= Size || used[k] {
			continue
		}
		used[k] = true
		out = append(out, k)
	}
	return out
}

// PositionOf returns the index j such that perm[j] == value; perm must be a
// permutation of [0,25] (every keyed/straight alphabet produced by this
// package satisfies that), so the search always succeeds.
func PositionOf(perm [Size]int, value int) int {
	for j, v := range perm {
		if v == value {
			return j
		}
	}
	// Unreachable for any well-formed permutation; fall back rather than
	// index out of range if a caller ever hands in a corrupt buffer.
	return 0
}

// IsPermutation reports whether perm contains each value in [0,25] exactly
// once. Used by property tests and by defensive checks after perturbation.
func IsPermutation(perm [Size]int) bool {
	var seen [Size]bool
	for _, v := range perm {
		if v < 0 || v >= Size || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Tally counts letter occurrences in idx into a length-26 histogram.
func Tally(idx []int) [Size]int {
	var counts [Size]int
	for _, v := range idx {
		if v >= 0 && v < Size {
			counts[v]++
		}
	}
	return counts
}

// IndexOfCoincidence computes the unbiased Index of Coincidence
// Σ fᵢ(fᵢ-1) / (n(n-1)) of idx. Degenerate inputs (n<2) return 0.
func IndexOfCoincidence(idx []int) float64 {
	n := len(idx)
	if n < 2 {
		return 0
	}
	counts := Tally(idx)
	var sum float64
	for _, f := range counts {
		sum += float64(f) * float64(f-1)
	}
	return sum / (float64(n) * float64(n-1))
}

// Entropy computes the Shannon entropy (in nats) H = -Σ pᵢ ln(pᵢ) of idx's
// letter distribution.
func Entropy(idx []int) float64 {
	n := len(idx)
	if n == 0 {
		return 0
	}
	counts := Tally(idx)
	var h float64
	for _, f := range counts {
		if f == 0 {
			continue
		}
		p := float64(f) / float64(n)
		h -= p * math.Log(p)
	}
	return h
}

// ChiSquared computes the chi-squared statistic of observed against
// expected, skipping any bucket whose expected frequency is zero.
func ChiSquared(observed, expected [Size]float64) float64 {
	var chi float64
	for i := range observed {
		if expected[i] != 0 {
			d := observed[i] - expected[i]
			chi += d * d / expected[i]
		}
	}
	return chi
}
