// Package dictionary loads a plain word list and reports which of its
// words appear as substrings of a recovered plaintext, used only for the
// informational word-count report — it has no influence on the search.
package dictionary

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/stblake/polyalphabetic/internal/alphabet"
)

const minWordLen = 3

// Dictionary holds the loaded word list sorted by descending length, the
// order find_dictionary_words-style scanning relies on to stop early.
type Dictionary struct {
	words      []string
	maxWordLen int
}

// Load reads one uppercase word per line from path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dictionary file %q", path)
	}
	defer f.Close()

	var words []string
	maxLen := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
		if len(w) > maxLen {
			maxLen = len(w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading dictionary file")
	}

	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return &Dictionary{words: words, maxWordLen: maxLen}, nil
}

// Exists reports whether the default dictionary path exists in the working
// directory, for the CLI's "default to OxfordEnglishWords.txt if present"
// fallback (§6).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FindWords slides a window of every length in [minWordLen, maxWordLen]
// across plaintext, reporting each fragment that exactly matches a
// dictionary word. This mirrors the reference dictionary scanner's
// sliding-window/sorted-by-length algorithm exactly, including that
// overlapping matches (e.g. "CAT" and "ATE" sharing letters) are each
// counted independently — it is a descriptive word-count report, not a
// non-overlapping tokenizer.
func (d *Dictionary) FindWords(plaintext string) []string {
	var matches []string
	n := len(plaintext)
	maxLen := d.maxWordLen
	if maxLen > n {
		maxLen = n
	}
	for i := 0; i <= n-minWordLen; i++ {
		limit := maxLen
		if n-i < limit {
			limit = n - i
		}
		for wordLen := minWordLen; wordLen <= limit; wordLen++ {
			fragment := plaintext[i : i+wordLen]
			if d.contains(fragment, wordLen) {
				matches = append(matches, fragment)
			}
		}
	}
	return matches
}

// Score weights matches by how rare their length is in running English,
// via EnglishWordLengthFrequencies: a long match is much stronger evidence
// of a correct decryption than an equally long run of short, overlapping
// three-letter matches, which occur by chance even in random letter soup.
func (d *Dictionary) Score(matches []string) float64 {
	var score float64
	for _, w := range matches {
		n := len(w)
		if n < 1 || n > len(alphabet.EnglishWordLengthFrequencies) {
			continue
		}
		freq := alphabet.EnglishWordLengthFrequencies[n-1]
		if freq <= 0 {
			continue
		}
		score += 1 / freq
	}
	return score
}

// contains performs the sorted-by-descending-length scan: words longer
// than wordLen are skipped, and the scan stops as soon as it reaches a
// word shorter than wordLen, since none of the remaining (shorter) words
// can match.
func (d *Dictionary) contains(fragment string, wordLen int) bool {
	for _, w := range d.words {
		if len(w) > wordLen {
			continue
		}
		if len(w) < wordLen {
			break
		}
		if w == fragment {
			return true
		}
	}
	return false
}
