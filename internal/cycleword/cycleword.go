// Package cycleword implements the optimal cycleword deriver: for a fixed
// pair of keyed alphabets, each cycleword column is a simple substitution,
// and the key character that makes its decrypted letter distribution most
// English-like is found by exhaustive search over the 26 candidates rather
// than by stochastic mutation. This removes an entire search dimension from
// the climber whenever `-optimalcycle` is active (the default).
package cycleword

import (
	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/ciphertype"
)

// DeriveOptimal computes, for each of the `period` columns of cipher, the
// candidate key character s in [0,26) whose decrypted-column letter counts
// have the highest dot product with EnglishMonograms (divided by the column
// length), and returns the resulting cycleword. Only meaningful for periodic
// (non-autokey) ciphers — autokey key streams are not periodic over the
// ciphertext.
func DeriveOptimal(cipher []int, pt, ct [alphabet.Size]int, period int, cipherType ciphertype.Type, variant bool) []int {
	out := make([]int, period)
	for col := 0; col < period; col++ {
		best := -1
		bestScore := -1.0
		var counts [alphabet.Size]float64
		for s := 0; s < alphabet.Size; s++ {
			for i := range counts {
				counts[i] = 0
			}
			total := 0.0
			for i := col; i < len(cipher); i += period {
				p := decryptColumnChar(cipherType, variant, pt, ct, cipher[i], s)
				counts[p]++
				total++
			}
			if total == 0 {
				continue
			}
			var dot float64
			for i, f := range alphabet.EnglishMonograms {
				dot += counts[i] * f
			}
			score := dot / total
			if score > bestScore {
				bestScore = score
				best = s
			}
		}
		if best < 0 {
			best = 0
		}
		if cipherType.IsQuagmire() {
			out[col] = ct[best]
		} else {
			out[col] = best
		}
	}
	return out
}

// decryptColumnChar decrypts a single ciphertext letter with candidate key
// position/letter s, mirroring each cipher's single-character tableau rule
// directly (rather than routing through the keyed-alphabet indirection the
// tableau package uses for a *stored* cycleword letter) — here s is tried
// as the rotation amount itself, and the caller maps the winning s back to
// a stored letter afterward.
func decryptColumnChar(t ciphertype.Type, variant bool, pt, ct [alphabet.Size]int, cipherChar, s int) int {
	switch t {
	case ciphertype.Beaufort:
		return mod26(s - cipherChar)
	case ciphertype.Porta:
		shift := s / 2
		if cipherChar < 13 {
			return mod13(cipherChar+shift) + 13
		}
		return mod13(cipherChar - 13 - shift)
	case ciphertype.Vigenere:
		if variant {
			return mod26(cipherChar + s)
		}
		return mod26(cipherChar - s)
	default: // Quagmire I-IV
		p := alphabet.PositionOf(ct, cipherChar)
		var d int
		if variant {
			d = mod26(p + s)
		} else {
			d = mod26(p - s)
		}
		return pt[d]
	}
}

func mod26(v int) int {
	v %= alphabet.Size
	if v < 0 {
		v += alphabet.Size
	}
	return v
}

func mod13(v int) int {
	const n = 13
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
