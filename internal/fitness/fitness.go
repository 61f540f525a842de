// Package fitness scores a decrypted candidate plaintext against the
// n-gram model, a crib (if any), and two English-likeness reference
// statistics, combining them into a single weighted score the climber
// maximizes.
package fitness

import (
	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/ngram"
)

// Weights are the four term weights from `-weightngram`/`-weightcrib`/
// `-weightioc`/`-weightentropy`. Defaults per the CLI are (12, 36, 0, 0).
type Weights struct {
	Ngram   float64
	Crib    float64
	IoC     float64
	Entropy float64
}

// Sum returns the denominator w_n+w_c+w_i+w_e.
func (w Weights) Sum() float64 {
	return w.Ngram + w.Crib + w.IoC + w.Entropy
}

// Score evaluates the four-term fitness formula (§4.7) against a decrypted
// buffer. crib may be nil/empty (K=0), in which case crib_match is 0 and
// its term drops out of the weighted sum on its own since w_c·0=0 — no
// special-casing of the denominator is required. ioc_score and
// entropy_score are always computed from the same decrypted buffer; when
// their weights default to 0 this is observationally identical to a
// two-term ngram+crib score, but keeps -weightioc/-weightentropy load
// bearing for callers who set them.
func Score(decrypted []int, table *ngram.Table, cribPositions, cribValues []int, w Weights) float64 {
	ngramScore := table.Score(decrypted)

	var cribMatch float64
	if k := len(cribPositions); k > 0 {
		matches := 0
		for i, pos := range cribPositions {
			if pos >= 0 && pos < len(decrypted) && decrypted[pos] == cribValues[i] {
				matches++
			}
		}
		cribMatch = float64(matches) / float64(k)
	}

	ioc := alphabet.IndexOfCoincidence(decrypted)
	iocDelta := float64(alphabet.Size)*ioc - alphabet.ReferenceEnglishIoC
	iocScore := 1 / (1 + iocDelta*iocDelta)

	h := alphabet.Entropy(decrypted)
	entropyDelta := h - alphabet.ReferenceEnglishEntropy
	entropyScore := 1 / (1 + entropyDelta*entropyDelta)

	denom := w.Sum()
	if denom == 0 {
		return ngramScore
	}
	num := w.Ngram*ngramScore + w.Crib*cribMatch + w.IoC*iocScore + w.Entropy*entropyScore
	return num / denom
}

// CribMatchCount returns the number of crib positions the decrypted buffer
// currently satisfies, for reporting (not used in the score itself beyond
// what Score already folds in).
func CribMatchCount(decrypted []int, cribPositions, cribValues []int) int {
	matches := 0
	for i, pos := range cribPositions {
		if pos >= 0 && pos < len(decrypted) && decrypted[pos] == cribValues[i] {
			matches++
		}
	}
	return matches
}
