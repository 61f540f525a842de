// Package batch drives the orchestrator once per line of a multi-ciphertext
// input file, collecting per-line results without letting one malformed
// line abort the rest of the run.
package batch

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/stblake/polyalphabetic/internal/corpus"
	"github.com/stblake/polyalphabetic/internal/orchestrator"
)

// Line is one batch entry's outcome: either a solved Result, or the error
// that kept it from being solved (a malformed line never reaches the
// orchestrator).
type Line struct {
	Index  int
	Raw    string
	Err    error
	Result orchestrator.Result
}

// Run is stamped with a UUID so repeated batch invocations against the
// same input file can be told apart in logs and saved reports.
type Run struct {
	ID    string
	Lines []Line
}

// Solver builds an orchestrator.Config for one ciphertext and invokes
// orchestrator.Run; the caller (cmd/polyalphabetic) supplies it so batch
// doesn't need to know about flag parsing or file loading.
type Solver func(ctx context.Context, cipher []int) orchestrator.Result

// Execute solves every line of path independently, in order. A line that fails
// to parse into letter indices is recorded with its error and skipped —
// the rest of the batch still runs.
func Execute(ctx context.Context, path string, solve Solver) (Run, error) {
	lines, err := corpus.LoadBatch(path)
	if err != nil {
		return Run{}, err
	}

	run := Run{ID: uuid.NewString(), Lines: make([]Line, len(lines))}
	for i, raw := range lines {
		cipher, err := corpus.ParseCiphertextLine(raw)
		if err != nil {
			run.Lines[i] = Line{Index: i, Raw: raw, Err: err}
			continue
		}
		run.Lines[i] = Line{Index: i, Raw: raw, Result: solve(ctx, cipher)}
	}
	return run, nil
}

// SortedByScore ranks a batch's lines best-first by recovered score, with
// lines that failed to parse (no Result to rank) pushed to the end. Each
// Line keeps its original Index, so the caller's report can still label
// every entry by its position in the input file.
func SortedByScore(lines []Line) []Line {
	out := append([]Line(nil), lines...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Err != nil {
			return false
		}
		if out[j].Err != nil {
			return true
		}
		return out[i].Result.Score > out[j].Result.Score
	})
	return out
}
