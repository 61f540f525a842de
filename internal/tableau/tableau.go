// Package tableau implements the single decrypt/encrypt primitive that
// unifies Vigenere, Beaufort, Porta, and the four Quagmire ciphers. Autokey
// running-key decryption (internal/autokey) builds its key stream on top of
// this package's per-character rules rather than duplicating them.
package tableau

import (
	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/ciphertype"
)

// State is the search element the climber mutates: two keyed alphabets and
// a periodic cycleword, tagged with which cipher they belong to. It is POD
// — copied by value, never aliased across restarts.
type State struct {
	Type      ciphertype.Type
	Variant   bool // reciprocal direction, for Quagmire/Vigenere
	PT        [alphabet.Size]int
	CT        [alphabet.Size]int
	Cycleword []int
}

// Period returns the cycleword's length, i.e. the cipher's period.
func (s State) Period() int {
	return len(s.Cycleword)
}

// usesStraightAlphabets reports whether a cipher ignores PT/CT and keys
// purely off the cycleword (Vigenere, Beaufort, Porta).
func usesStraightAlphabets(t ciphertype.Type) bool {
	return t == ciphertype.Vigenere || t == ciphertype.Beaufort || t == ciphertype.Porta
}

// Decrypt runs the tableau rule over ciphertext and returns the recovered
// plaintext indices. Vigenere and the four Quagmire ciphers share the
// general rule (§4.1); Beaufort and Porta are self-inverse special cases.
func Decrypt(cipher []int, s State) []int {
	switch s.Type {
	case ciphertype.Beaufort:
		return beaufortCore(cipher, s.Cycleword)
	case ciphertype.Porta:
		return portaCore(cipher, s.Cycleword)
	default:
		return quagmireDecrypt(cipher, s)
	}
}

// Encrypt is Decrypt's inverse.
func Encrypt(plaintext []int, s State) []int {
	switch s.Type {
	case ciphertype.Beaufort:
		return beaufortCore(plaintext, s.Cycleword) // self-inverse
	case ciphertype.Porta:
		return portaCore(plaintext, s.Cycleword) // self-inverse
	default:
		return quagmireEncrypt(plaintext, s)
	}
}

// quagmireDecrypt implements the general rule for Vigenere and Quagmire
// I-IV: for each position i, p = position of the ciphertext letter in CT,
// q = position of the cycleword letter in CT, d = p±q mod 26 (sign chosen
// by Variant), and the plaintext letter is PT[d]. Vigenere collapses to
// PT=CT=straight, so p and q are just the letter values themselves.
func quagmireDecrypt(cipher []int, s State) []int {
	l := s.Period()
	out := make([]int, len(cipher))
	for i, x := range cipher {
		var p, q int
		if usesStraightAlphabets(s.Type) {
			p, q = x, s.Cycleword[i%l]
		} else {
			p = alphabet.PositionOf(s.CT, x)
			q = alphabet.PositionOf(s.CT, s.Cycleword[i%l])
		}
		var d int
		if s.Variant {
			d = mod26(p + q)
		} else {
			d = mod26(p - q)
		}
		if usesStraightAlphabets(s.Type) {
			out[i] = d
		} else {
			out[i] = s.PT[d]
		}
	}
	return out
}

// quagmireEncrypt is quagmireDecrypt's inverse: locate the plaintext
// letter's position in PT, the cycleword letter's position in CT, and
// recombine with the opposite sign.
func quagmireEncrypt(plaintext []int, s State) []int {
	l := s.Period()
	out := make([]int, len(plaintext))
	for i, m := range plaintext {
		var p, q int
		if usesStraightAlphabets(s.Type) {
			p, q = m, s.Cycleword[i%l]
		} else {
			p = alphabet.PositionOf(s.PT, m)
			q = alphabet.PositionOf(s.CT, s.Cycleword[i%l])
		}
		var c int
		if s.Variant {
			c = mod26(p - q)
		} else {
			c = mod26(p + q)
		}
		if usesStraightAlphabets(s.Type) {
			out[i] = c
		} else {
			out[i] = s.CT[c]
		}
	}
	return out
}

// beaufortCore implements Beaufort's self-inverse rule: output = key - input
// (mod 26). Beaufort always operates on the straight alphabet.
func beaufortCore(input []int, cycleword []int) []int {
	l := len(cycleword)
	out := make([]int, len(input))
	for i, v := range input {
		out[i] = mod26(cycleword[i%l] - v)
	}
	return out
}

// portaCore implements Porta's self-inverse halves rule. s = key/2 selects
// one of 13 reciprocal substitution tables; the alphabet is split into
// [0,13) and [13,26) halves that map onto each other.
func portaCore(input []int, cycleword []int) []int {
	l := len(cycleword)
	out := make([]int, len(input))
	for i, v := range input {
		shift := cycleword[i%l] / 2
		if v < 13 {
			out[i] = mod13(v+shift) + 13
		} else {
			out[i] = mod13(v - 13 - shift)
		}
	}
	return out
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
