// Package report renders a solve's result as the human-readable summary
// the CLI prints, and wires the optional -verbose progress bar around a
// running search.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/autokey"
	"github.com/stblake/polyalphabetic/internal/ciphertype"
	"github.com/stblake/polyalphabetic/internal/dictionary"
	"github.com/stblake/polyalphabetic/internal/orchestrator"
)

// Progress wraps a progressbar.ProgressBar so the orchestrator's
// triple-completion callback can redraw a single line instead of emitting
// one log line per triple. The bar is created lazily on the first Update,
// once the orchestrator has enumerated its triples and knows the total.
type Progress struct {
	bar  *progressbar.ProgressBar
	w    io.Writer
	seen int
}

// NewProgress returns a Progress that will render to w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

// Update is passed directly as an orchestrator.Config.Progress callback.
func (p *Progress) Update(done, total int, bestScore float64) {
	if p == nil {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription("solving"),
			progressbar.OptionShowCount(),
		)
	}
	p.bar.Describe(fmt.Sprintf("solving (best=%.4f)", bestScore))
	_ = p.bar.Add(done - p.seen)
	p.seen = done
}

// Finish closes out the progress bar's line.
func (p *Progress) Finish() {
	if p == nil || p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	fmt.Fprintln(p.w)
}

// Summary renders one solve's result: score, cipher parameters, best
// alphabets and cycleword, the recovered plaintext, and — if a dictionary
// was loaded — the matched-word listing and count.
func Summary(w io.Writer, t ciphertype.Type, result orchestrator.Result, dict *dictionary.Dictionary) {
	if !result.Found {
		fmt.Fprintln(w, "no feasible (period, keyword-length) combination was found")
		return
	}

	fmt.Fprintf(w, "cipher:    %s\n", t)
	fmt.Fprintf(w, "score:     %.6f\n", result.Score)
	fmt.Fprintf(w, "period:    %d\n", result.Period)
	fmt.Fprintf(w, "pt-prefix: %d\n", result.PTPrefix)
	fmt.Fprintf(w, "ct-prefix: %d\n", result.CTPrefix)

	if requiresKeyword(t) {
		fmt.Fprintf(w, "pt-alphabet: %s\n", permString(result.State.PT))
		fmt.Fprintf(w, "ct-alphabet: %s\n", permString(result.State.CT))
	}
	fmt.Fprintf(w, "cycleword: %s\n", alphabet.IndicesToText(result.State.Cycleword))

	plaintext := alphabet.IndicesToText(result.Plaintext)
	fmt.Fprintf(w, "plaintext: %s\n", plaintext)

	if dict != nil {
		matches := dict.FindWords(plaintext)
		fmt.Fprintf(w, "dictionary matches: %d (score %.2f)\n", len(matches), dict.Score(matches))
		if len(matches) > 0 {
			fmt.Fprintln(w, strings.Join(matches, ", "))
		}
	}
}

func requiresKeyword(t ciphertype.Type) bool {
	if t.IsAutokey() {
		return autokey.BaseType(t).IsQuagmire()
	}
	return t.IsQuagmire()
}

func permString(p [alphabet.Size]int) string {
	return alphabet.IndicesToText(p[:])
}
