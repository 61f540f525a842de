// Package climber implements the "slippery shotgun" stochastic hill
// climber: an outer restart/backtrack loop around an inner mutate, score,
// and accept-or-slip loop, with best-of bookkeeping across the whole run.
package climber

import (
	"math/rand"

	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/autokey"
	"github.com/stblake/polyalphabetic/internal/ciphertype"
	"github.com/stblake/polyalphabetic/internal/crib"
	"github.com/stblake/polyalphabetic/internal/cycleword"
	"github.com/stblake/polyalphabetic/internal/fitness"
	"github.com/stblake/polyalphabetic/internal/ngram"
	"github.com/stblake/polyalphabetic/internal/perturb"
	"github.com/stblake/polyalphabetic/internal/tableau"
)

// Config bundles every tunable the climber needs for one (period, W_pt,
// W_ct) triple. A Config and its *rand.Rand are owned by a single caller —
// Run holds no package-level mutable state, so distinct goroutines may call
// Run concurrently on distinct Configs/Rands without synchronization.
type Config struct {
	Type     ciphertype.Type
	Variant  bool
	Period   int
	PTPrefix int
	CTPrefix int
	FixedPT  *[alphabet.Size]int // non-nil if -plaintextkeyword was given
	FixedCT  *[alphabet.Size]int // non-nil if -ciphertextkeyword was given
	SameKey  bool                // -samekey: force PT=CT=cycleword alphabet

	NHillClimbs     int
	NRestarts       int
	PBacktrack      float64
	PKeywordPerm    float64
	PSlip           float64
	OptimalCycle    bool
	WeightedPerturb bool

	Weights fitness.Weights
}

// Result is the best state the climber found across every restart.
type Result struct {
	Best  tableau.State
	Score float64
}

// ProgressFunc is called once per restart when Run is given a non-nil
// callback; it never affects the search itself.
type ProgressFunc func(restart int, bestScore float64)

// run carries the per-call state (cipher, crib, config, rng) through the
// climber's helper functions without resorting to package-level globals,
// so concurrent Run calls from the orchestrator's worker pool never share
// mutable state.
type run struct {
	cipher        []int
	cribPositions []int
	cribValues    []int
	table         *ngram.Table
	cfg           Config
	rng           *rand.Rand
}

func keyworded(t ciphertype.Type) bool {
	switch t {
	case ciphertype.Quagmire1, ciphertype.Quagmire2, ciphertype.Quagmire3, ciphertype.Quagmire4,
		ciphertype.Autokey1, ciphertype.Autokey2, ciphertype.Autokey3, ciphertype.Autokey4:
		return true
	default:
		return false
	}
}

// Run executes NRestarts restarts of up to NHillClimbs inner iterations
// each and returns the best state found. cipher is the ciphertext as
// letter indices; cribPositions/cribValues may be nil for no crib.
func Run(cipher []int, cribPositions, cribValues []int, table *ngram.Table, cfg Config, rng *rand.Rand, progress ProgressFunc) Result {
	r := &run{cipher: cipher, cribPositions: cribPositions, cribValues: cribValues, table: table, cfg: cfg, rng: rng}

	var best tableau.State
	bestScore := -1.0
	haveBest := false

	for restart := 0; restart < cfg.NRestarts; restart++ {
		current, mustPerturbKeyword := r.initState(best, haveBest)
		currentScore := r.score(current)

		for iter := 0; iter < cfg.NHillClimbs; iter++ {
			local := cloneState(current)
			if !r.mutate(&local, &mustPerturbKeyword) {
				// A crib contradiction vetoed this iteration entirely:
				// the mutation is discarded, current is unchanged.
				continue
			}

			localScore := r.score(local)
			if localScore > currentScore || rng.Float64() < cfg.PSlip {
				current = local
				currentScore = localScore
			}
			if currentScore > bestScore || !haveBest {
				best = current
				bestScore = currentScore
				haveBest = true
			}
		}

		if progress != nil {
			progress(restart, bestScore)
		}
	}

	return Result{Best: best, Score: bestScore}
}

func cloneState(s tableau.State) tableau.State {
	out := s
	out.Cycleword = append([]int(nil), s.Cycleword...)
	return out
}

// initState draws the starting state for one restart: a backtrack to best
// (with probability PBacktrack, only once a best exists), or a fresh random
// draw respecting fixed alphabets and the cipher's constraints.
func (r *run) initState(best tableau.State, haveBest bool) (tableau.State, bool) {
	cfg := r.cfg
	if haveBest && r.rng.Float64() < cfg.PBacktrack {
		return cloneState(best), false
	}

	s := tableau.State{Type: cfg.Type, Variant: cfg.Variant}
	switch {
	case cfg.FixedPT != nil:
		s.PT = *cfg.FixedPT
	case keyworded(cfg.Type):
		s.PT = perturb.RandomKeyword(r.rng, cfg.PTPrefix)
	default:
		s.PT = alphabet.Straight()
	}
	switch {
	case cfg.FixedCT != nil:
		s.CT = *cfg.FixedCT
	case cfg.SameKey:
		s.CT = s.PT
	case keyworded(cfg.Type):
		s.CT = perturb.RandomKeyword(r.rng, cfg.CTPrefix)
	default:
		s.CT = alphabet.Straight()
	}
	s.Cycleword = perturb.RandomCycleword(r.rng, cfg.Period)

	if cfg.OptimalCycle && !cfg.Type.IsAutokey() {
		s.Cycleword = cycleword.DeriveOptimal(r.cipher, s.PT, s.CT, cfg.Period, cfg.Type, cfg.Variant)
	}
	return s, false
}

// mutate applies one iteration's mutation to local in place. It returns
// false when a crib contradiction vetoed the iteration (local must be
// discarded without scoring).
func (r *run) mutate(local *tableau.State, mustPerturbKeyword *bool) bool {
	cfg := r.cfg
	kw := keyworded(cfg.Type)
	mutatedKeyword := false

	if kw {
		if r.rng.Float64() < cfg.PKeywordPerm || *mustPerturbKeyword {
			mutateKeywordForType(cfg, r.rng, local)
			mutatedKeyword = true
			*mustPerturbKeyword = false
		}
	}

	periodic := !cfg.Type.IsAutokey()
	switch {
	case periodic && cfg.OptimalCycle:
		// Always redrive the cycleword from the (possibly just
		// perturbed) keyword.
		local.Cycleword = cycleword.DeriveOptimal(r.cipher, local.PT, local.CT, cfg.Period, cfg.Type, cfg.Variant)
	case !mutatedKeyword:
		perturb.Cycleword(r.rng, local.Cycleword)
	}

	if kw && !cfg.OptimalCycle && len(r.cribPositions) > 0 {
		res := crib.Constrain(r.cipher, crib.Crib{Positions: r.cribPositions, Values: r.cribValues}, local.PT, local.CT, cfg.Variant, local.Cycleword)
		if res.Contradiction {
			*mustPerturbKeyword = true
			return false
		}
	}
	return true
}

func mutateKeywordForType(cfg Config, rng *rand.Rand, local *tableau.State) {
	switch cfg.Type {
	case ciphertype.Quagmire1, ciphertype.Autokey1:
		if cfg.FixedPT == nil {
			perturb.Keyword(rng, &local.PT, cfg.PTPrefix, cfg.WeightedPerturb)
		}
	case ciphertype.Quagmire2, ciphertype.Autokey2:
		if cfg.FixedCT == nil {
			perturb.Keyword(rng, &local.CT, cfg.CTPrefix, cfg.WeightedPerturb)
		}
	case ciphertype.Quagmire3, ciphertype.Autokey3:
		if cfg.FixedPT == nil {
			perturb.Keyword(rng, &local.PT, cfg.PTPrefix, cfg.WeightedPerturb)
		}
		local.CT = local.PT
	case ciphertype.Quagmire4, ciphertype.Autokey4:
		mutatePT := cfg.FixedPT == nil
		mutateCT := cfg.FixedCT == nil
		if mutatePT && mutateCT {
			if rng.Float64() < 0.5 {
				mutateCT = false
			} else {
				mutatePT = false
			}
		}
		if mutatePT {
			perturb.Keyword(rng, &local.PT, cfg.PTPrefix, cfg.WeightedPerturb)
		}
		if mutateCT {
			perturb.Keyword(rng, &local.CT, cfg.CTPrefix, cfg.WeightedPerturb)
		}
	}
}

func (r *run) score(s tableau.State) float64 {
	decrypted := r.decrypt(s)
	return fitness.Score(decrypted, r.table, r.cribPositions, r.cribValues, r.cfg.Weights)
}

func (r *run) decrypt(s tableau.State) []int {
	if r.cfg.Type.IsAutokey() {
		return autokey.Decrypt(r.cfg.Type, r.cipher, r.cfg.Variant, s.PT, s.CT, s.Cycleword)
	}
	return tableau.Decrypt(r.cipher, s)
}
