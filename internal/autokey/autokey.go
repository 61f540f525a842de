// Package autokey implements running-key decryption for the five autokey
// variants: the key stream starts with a primer and is then extended with
// the plaintext as it is recovered, one letter at a time, never repeating.
package autokey

import (
	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/ciphertype"
	"github.com/stblake/polyalphabetic/internal/tableau"
)

// BaseType maps an autokey variant to the base cipher whose single-letter
// tableau rule supplies its key stream arithmetic (Straight -> Vigenere,
// Quagmire N sub -> Quagmire N).
func BaseType(t ciphertype.Type) ciphertype.Type {
	switch t {
	case ciphertype.Autokey1:
		return ciphertype.Quagmire1
	case ciphertype.Autokey2:
		return ciphertype.Quagmire2
	case ciphertype.Autokey3:
		return ciphertype.Quagmire3
	case ciphertype.Autokey4:
		return ciphertype.Quagmire4
	default: // Autokey0 and anything else falls back to the straight rule
		return ciphertype.Vigenere
	}
}

// Decrypt recovers plaintext from an autokey ciphertext. autokeyType
// selects the sub-tableau (§4.2); primer is the cycleword — its length L is
// the primer length, not a repeating period. The key stream has length
// L+N and is built incrementally as each plaintext letter is recovered.
func Decrypt(autokeyType ciphertype.Type, cipher []int, variant bool, pt, ct [alphabet.Size]int, primer []int) []int {
	sub := BaseType(autokeyType)
	n := len(cipher)
	l := len(primer)
	keyStream := make([]int, l+n)
	copy(keyStream, primer)

	out := make([]int, n)
	for i := 0; i < n; i++ {
		state := tableau.State{Type: sub, Variant: variant, PT: pt, CT: ct, Cycleword: []int{keyStream[i]}}
		out[i] = tableau.Decrypt([]int{cipher[i]}, state)[0]
		keyStream[l+i] = out[i]
	}
	return out
}

// Encrypt is Decrypt's inverse: the key stream is built the same way, but
// each new key-stream letter is the plaintext already known up front
// rather than recovered as the loop progresses.
func Encrypt(autokeyType ciphertype.Type, plaintext []int, variant bool, pt, ct [alphabet.Size]int, primer []int) []int {
	sub := BaseType(autokeyType)
	n := len(plaintext)
	l := len(primer)
	keyStream := make([]int, l+n)
	copy(keyStream, primer)

	out := make([]int, n)
	for i := 0; i < n; i++ {
		state := tableau.State{Type: sub, Variant: variant, PT: pt, CT: ct, Cycleword: []int{keyStream[i]}}
		out[i] = tableau.Encrypt([]int{plaintext[i]}, state)[0]
		keyStream[l+i] = plaintext[i]
	}
	return out
}
