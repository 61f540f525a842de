// Package crib implements the two crib-driven checks the solver uses to
// prune the search: a per-period feasibility precheck, and per-candidate
// cycleword constraint propagation with contradiction detection.
package crib

import (
	"github.com/stblake/polyalphabetic/internal/alphabet"
)

// Crib is a partial known-plaintext mask aligned to the ciphertext:
// Positions[i] is a strictly increasing index into the ciphertext and
// Values[i] is the known plaintext letter at that position. An empty Crib
// (K=0) means "no crib" and both checks below are vacuously satisfied.
type Crib struct {
	Positions []int
	Values    []int
}

// Len returns the number of known plaintext letters, K.
func (c Crib) Len() int {
	return len(c.Positions)
}

// SatisfiedForPeriod is the precheck: for each column of period L, build a
// bipartite mark {plaintext letter -> ciphertext letter} from the cribs
// landing in that column. If any plaintext letter would need to map to two
// distinct ciphertext letters within the column (or vice versa), the period
// is incompatible with the crib and the caller should skip this period
// entirely rather than invoke the climber.
func SatisfiedForPeriod(cipher []int, c Crib, period int) bool {
	if c.Len() == 0 {
		return true
	}
	// One bipartite mark per column: mark[column][plainLetter][cipherLetter].
	marks := make([][alphabet.Size][alphabet.Size]bool, period)
	for i, pos := range c.Positions {
		if pos < 0 || pos >= len(cipher) {
			continue
		}
		col := pos % period
		plainLetter := c.Values[i]
		cipherLetter := cipher[pos]
		marks[col][plainLetter][cipherLetter] = true

		// Row/column sum check: count positive entries touching this
		// plaintext letter's row and this ciphertext letter's column in
		// this column's mark.
		rowCount := 0
		for _, v := range marks[col][plainLetter] {
			if v {
				rowCount++
			}
		}
		if rowCount > 1 {
			return false
		}
		colCount := 0
		for p := 0; p < alphabet.Size; p++ {
			if marks[col][p][cipherLetter] {
				colCount++
			}
		}
		if colCount > 1 {
			return false
		}
	}
	return true
}

// ConstrainResult is the outcome of Constrain: either the cycleword slots
// implied by the cribs (which are written into the candidate state), or a
// contradiction signal telling the climber to perturb the keyword instead.
type ConstrainResult struct {
	Contradiction bool
}

// Constrain propagates each crib (pos, plain) into the implied cycleword
// slot, given candidate PT/CT alphabets: p = position of ciphertext[pos] in
// CT, q = position of plain in PT, rot = (variant ? q-p : p-q) mod 26, and
// the slot pos%L must hold CT[rot]. Slots set twice with conflicting values
// are a contradiction. Cycleword slots not touched by any crib are left
// unchanged by this call.
func Constrain(cipher []int, c Crib, pt, ct [alphabet.Size]int, variant bool, cycleword []int) ConstrainResult {
	l := len(cycleword)
	if l == 0 {
		return ConstrainResult{}
	}
	set := make([]bool, l)
	for i, pos := range c.Positions {
		if pos < 0 || pos >= len(cipher) {
			continue
		}
		p := alphabet.PositionOf(ct, cipher[pos])
		q := alphabet.PositionOf(pt, c.Values[i])
		var rot int
		if variant {
			rot = mod26(q - p)
		} else {
			rot = mod26(p - q)
		}
		slot := pos % l
		want := ct[rot]
		if set[slot] && cycleword[slot] != want {
			return ConstrainResult{Contradiction: true}
		}
		cycleword[slot] = want
		set[slot] = true
	}
	return ConstrainResult{}
}

func mod26(v int) int {
	v %= alphabet.Size
	if v < 0 {
		v += alphabet.Size
	}
	return v
}
