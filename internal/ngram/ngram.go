// Package ngram loads and scores n-gram frequency tables. A table is a flat
// array of length 26^n holding log-scaled, sum-normalized frequencies; an
// n-gram (g0..g_{n-1}) indexes into it as Σ gi·26^i — the first character of
// the gram is the least significant digit.
package ngram

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/stblake/polyalphabetic/internal/alphabet"
)

// Table is a loaded, normalized n-gram frequency model.
type Table struct {
	N      int
	counts []float64 // log(1+rawcount), normalized by Load to sum to 1
}

// Size returns 26^n, the table's length.
func (t *Table) Size() int {
	return len(t.counts)
}

// Counts returns the table's normalized entries, for serialization by
// callers that cache a loaded table (internal/corpus).
func (t *Table) Counts() []float64 {
	return t.counts
}

// FromCounts reconstructs a Table from already-normalized entries, as
// produced by a prior Load call's Counts(). Used to deserialize a cached
// table without re-parsing its source file.
func FromCounts(n int, counts []float64) *Table {
	return &Table{N: n, counts: counts}
}

// Index computes the table index of an n-gram given as letter indices,
// low-index-first (g[0] is the least significant digit).
func Index(g []int) int {
	idx := 0
	pow := 1
	for _, v := range g {
		idx += v * pow
		pow *= alphabet.Size
	}
	return idx
}

// Load parses a tab-separated "GRAM\tCOUNT" n-gram file into a normalized
// Table of the given order n. Each line's count is folded with log(1+count)
// before the whole table is scaled so its entries sum to 1.
func Load(r io.Reader, n int) (*Table, error) {
	if n <= 0 || n > 8 {
		return nil, errors.Errorf("invalid ngram size %d", n)
	}
	size := intPow(alphabet.Size, n)
	t := &Table{N: n, counts: make([]float64, size)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("ngram file line %d: expected GRAM\\tCOUNT, got %q", lineNo, line)
		}
		gram := strings.ToUpper(fields[0])
		if len(gram) != n {
			return nil, errors.Errorf("ngram file line %d: gram %q has length %d, want %d", lineNo, gram, len(gram), n)
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ngram file line %d: bad count", lineNo)
		}
		idx, err := gramIndexStr(gram)
		if err != nil {
			return nil, errors.Wrapf(err, "ngram file line %d", lineNo)
		}
		t.counts[idx] = math.Log(1 + count)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading ngram file")
	}

	var sum float64
	for _, c := range t.counts {
		sum += c
	}
	if sum > 0 {
		for i := range t.counts {
			t.counts[i] /= sum
		}
	}
	return t, nil
}

func gramIndexStr(gram string) (int, error) {
	idx := 0
	pow := 1
	for i := 0; i < len(gram); i++ {
		v, err := alphabet.Index(gram[i])
		if err != nil {
			return 0, err
		}
		idx += v * pow
		pow *= alphabet.Size
	}
	return idx, nil
}

func intPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// Score computes the average log-frequency of every overlapping n-gram in
// decrypted, scaled by 26^n: the sum is divided by the number of windows,
// N-n+1. Sequences shorter than n score 0.
func (t *Table) Score(decrypted []int) float64 {
	n := t.N
	if len(decrypted) < n {
		return 0
	}
	scale := math.Pow(float64(alphabet.Size), float64(n))
	var sum float64
	count := 0
	for i := 0; i+n <= len(decrypted); i++ {
		idx := Index(decrypted[i : i+n])
		sum += t.counts[idx] * scale
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Sum returns the table's total mass, which should be ≈1 after Load.
func (t *Table) Sum() float64 {
	var s float64
	for _, c := range t.counts {
		s += c
	}
	return s
}
