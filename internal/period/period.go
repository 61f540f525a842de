// Package period estimates the cycleword length of a periodic polyalphabetic
// ciphertext via a columnar Index of Coincidence scan with z-score
// normalization and a dual threshold, following Friedman's classical test.
package period

import (
	"math"
	"sort"

	"github.com/stblake/polyalphabetic/internal/alphabet"
)

// Candidate is one accepted period length with its raw columnar IoC score,
// used to order results by plausibility.
type Candidate struct {
	Length int
	IoC    float64
}

// Config bundles the estimator's tunable thresholds.
type Config struct {
	MaxLength    int
	NSigmaThresh float64
	IoCThresh    float64
}

// Estimate scans periods 1..cfg.MaxLength and returns the ones whose
// z-score and raw IoC both clear their thresholds, sorted by descending raw
// IoC (ties broken by ascending length). If none clear the thresholds, the
// caller (the orchestrator) is responsible for falling back to 1..15 — this
// function only ever returns what the statistics actually support.
func Estimate(cipher []int, cfg Config) []Candidate {
	if cfg.MaxLength < 1 {
		return nil
	}
	scores := make([]float64, cfg.MaxLength)
	for l := 1; l <= cfg.MaxLength; l++ {
		scores[l-1] = meanColumnarIoC(cipher, l)
	}

	mu, sigma := meanStddev(scores)

	var out []Candidate
	for l := 1; l <= cfg.MaxLength; l++ {
		score := scores[l-1]
		var z float64
		if sigma > 0 {
			z = (score - mu) / sigma
		}
		if z >= cfg.NSigmaThresh && score >= cfg.IoCThresh {
			out = append(out, Candidate{Length: l, IoC: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IoC != out[j].IoC {
			return out[i].IoC > out[j].IoC
		}
		return out[i].Length < out[j].Length
	})
	return out
}

// FullRange returns periods 1..max verbatim, bypassing estimation — the
// range that applies to autokey attacks, where the Friedman test does not
// apply because the key stream is not periodic over the ciphertext. The
// orchestrator builds that range itself and does not call FullRange.
func FullRange(max int) []Candidate {
	out := make([]Candidate, max)
	for i := 0; i < max; i++ {
		out[i] = Candidate{Length: i + 1}
	}
	return out
}

func meanColumnarIoC(cipher []int, l int) float64 {
	var sum float64
	for k := 0; k < l; k++ {
		column := make([]int, 0, len(cipher)/l+1)
		for j := k; j < len(cipher); j += l {
			column = append(column, cipher[j])
		}
		sum += alphabet.IndexOfCoincidence(column)
	}
	return sum / float64(l)
}

// meanStddev returns the population (biased) mean and standard deviation of
// xs. A degenerate (all-equal) input yields sigma=0, which Estimate treats
// as "no period clears the sigma threshold".
func meanStddev(xs []float64) (mean, stddev float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / n
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	stddev = math.Sqrt(sumSq / n)
	return mean, stddev
}
