// Package corpus loads the plain-ASCII ciphertext, crib, n-gram, and
// dictionary files the CLI accepts, validating each against the formats
// described in the specification this engine implements (§6).
package corpus

import (
	"bufio"
	"encoding/gob"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/ngram"
)

// LoadCiphertext reads the first whitespace-delimited uppercase A-Z token
// from path and returns it as letter indices, matching the reference
// tool's own "scan, keep letters, uppercase" file-reading convention.
func LoadCiphertext(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening ciphertext file %q", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "reading ciphertext file")
		}
		return nil, errors.Errorf("ciphertext file %q is empty", path)
	}
	token := strings.ToUpper(scanner.Text())

	idx := make([]int, 0, len(token))
	for _, c := range token {
		if !unicode.IsLetter(c) {
			continue
		}
		i, err := alphabet.Index(byte(unicode.ToUpper(c)))
		if err != nil {
			return nil, errors.Wrapf(err, "ciphertext file %q", path)
		}
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return nil, errors.Errorf("ciphertext file %q contains no letters", path)
	}
	return idx, nil
}

// LoadBatch reads one ciphertext per line from path, skipping blank lines.
func LoadBatch(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening batch file %q", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading batch file")
	}
	return lines, nil
}

// ParseCiphertextLine converts one already-read batch line into letter
// indices, applying the same letters-only/uppercase normalization as
// LoadCiphertext.
func ParseCiphertextLine(line string) ([]int, error) {
	idx := make([]int, 0, len(line))
	for _, c := range line {
		if !unicode.IsLetter(c) {
			continue
		}
		i, err := alphabet.Index(byte(unicode.ToUpper(c)))
		if err != nil {
			return nil, err
		}
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return nil, errors.New("line contains no letters")
	}
	return idx, nil
}

// LoadCrib reads a crib file of exactly cipherLen characters: A-Z for a
// known plaintext letter at that position, `_` for unknown. It returns
// parallel Positions/Values arrays (§3's Crib data model) holding only the
// known positions.
func LoadCrib(path string, cipherLen int) (positions, values []int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening crib file %q", path)
	}
	line := strings.TrimSpace(string(data))
	if len(line) != cipherLen {
		return nil, nil, errors.Errorf("crib file %q has length %d, want %d (ciphertext length)", path, len(line), cipherLen)
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '_' {
			continue
		}
		v, err := alphabet.Index(byte(unicode.ToUpper(rune(c))))
		if err != nil {
			return nil, nil, errors.Wrapf(err, "crib file %q position %d", path, i)
		}
		positions = append(positions, i)
		values = append(values, v)
	}
	return positions, values, nil
}

// LoadNgramTable loads path as an order-n n-gram table (internal/ngram),
// transparently caching the parsed, normalized table on disk keyed by a
// content hash of the input file so repeated invocations against the same
// corpus skip the log+normalize pass.
func LoadNgramTable(path string, n int) (*ngram.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening ngram file %q", path)
	}

	if cached, ok := readCache(data, n); ok {
		return cached, nil
	}

	table, err := ngram.Load(strings.NewReader(string(data)), n)
	if err != nil {
		return nil, err
	}

	writeCache(data, n, table)
	return table, nil
}

// cacheEntry is the gob-encoded payload stored on disk, keyed by the
// content hash. It mirrors ngram.Table's exported shape closely enough to
// reconstruct a Table without re-parsing the source file.
type cacheEntry struct {
	N      int
	Counts []float64
}

func cachePath(data []byte, n int) string {
	keyed := make([]byte, len(data)+1)
	copy(keyed, data)
	keyed[len(data)] = byte(n)
	sum := blake2b.Sum256(keyed)
	name := "polyalphabetic-ngram-" + hexEncode(sum[:]) + ".cache"
	return filepath.Join(os.TempDir(), name)
}

func readCache(data []byte, n int) (*ngram.Table, bool) {
	path := cachePath(data, n)
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var entry cacheEntry
	if err := gob.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false
	}
	if entry.N != n {
		return nil, false
	}
	return ngram.FromCounts(entry.N, entry.Counts), true
}

func writeCache(data []byte, n int, table *ngram.Table) {
	path := cachePath(data, n)
	f, err := os.Create(path)
	if err != nil {
		return // best-effort: caching is a performance optimization only
	}
	defer f.Close()
	_ = gob.NewEncoder(f).Encode(cacheEntry{N: n, Counts: table.Counts()})
}

const hexDigits = "0123456789abcdef"

func hexEncode(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexDigits[v>>4]
		out[i*2+1] = hexDigits[v&0x0f]
	}
	return string(out)
}

// SizeHint returns the alphabet size (alphabet.Size), a small convenience
// re-export so callers outside this package don't need to import
// internal/alphabet just for this.
func SizeHint() int {
	return alphabet.Size
}
