// Package orchestrator drives the outer search: for every plausible
// (period, PT-keyword-length, CT-keyword-length) triple it applies the
// cipher's alphabet constraints, runs the crib precheck, invokes the
// climber, and keeps the best result seen across every triple. Independent
// triples are sharded across a bounded worker pool.
package orchestrator

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/autokey"
	"github.com/stblake/polyalphabetic/internal/ciphertype"
	"github.com/stblake/polyalphabetic/internal/climber"
	"github.com/stblake/polyalphabetic/internal/crib"
	"github.com/stblake/polyalphabetic/internal/fitness"
	"github.com/stblake/polyalphabetic/internal/ngram"
	"github.com/stblake/polyalphabetic/internal/period"
	"github.com/stblake/polyalphabetic/internal/tableau"
)

// Config is the full set of tunables for one solve, mapping close to 1:1
// with the CLI flags in cmd/polyalphabetic.
type Config struct {
	Type    ciphertype.Type
	Variant bool
	SameKey bool

	Cipher        []int
	CribPositions []int
	CribValues    []int
	Table         *ngram.Table

	// Period selection: if PeriodFixed > 0, only that period is tried.
	// Otherwise the period estimator is consulted (bypassed entirely for
	// autokey types, which sweep 1..MaxPeriod directly).
	PeriodFixed  int
	MaxPeriod    int
	NSigmaThresh float64
	IoCThresh    float64

	// Keyword length selection: PTKeywordLen/CTKeywordLen > 0 fixes that
	// alphabet's prefix length; 0 sweeps [1, MaxKeywordLen].
	PTKeywordLen  int
	CTKeywordLen  int
	MaxKeywordLen int

	FixedPTKeyword []int // nil unless -plaintextkeyword was given
	FixedCTKeyword []int // nil unless -ciphertextkeyword was given

	NHillClimbs     int
	NRestarts       int
	PBacktrack      float64
	PKeywordPerm    float64
	PSlip           float64
	OptimalCycle    bool
	WeightedPerturb bool

	Weights Weights

	Seed    int64
	Workers int

	// Progress, called once per completed triple with the running global
	// best; never affects the search.
	Progress func(triplesDone, triplesTotal int, bestScore float64)
}

// Weights mirrors fitness.Weights to avoid importing the fitness package's
// exact type name at this layer's call sites; orchestrator.Run converts it.
type Weights struct {
	Ngram, Crib, IoC, Entropy float64
}

// Result is the best (score, period, PT-length, CT-length, state) found
// across every triple the orchestrator visited.
type Result struct {
	Found     bool
	Score     float64
	Period    int
	PTPrefix  int
	CTPrefix  int
	State     tableau.State
	Plaintext []int
}

type triple struct {
	period, ptLen, ctLen int
}

// seedFor derives a triple's PRNG seed from its own identity rather than
// from which worker happens to dequeue it, so a fixed -seed reproduces the
// same result regardless of how the runtime schedules the worker pool.
func seedFor(base int64, t triple) int64 {
	h := uint64(base)
	h = h*31 + uint64(t.period)
	h = h*31 + uint64(t.ptLen)
	h = h*31 + uint64(t.ctLen)
	return int64(h)
}

// Run executes the full search and returns the global best. ctx is checked
// between triples (§5) — cancellation never preempts a triple mid-flight.
func Run(ctx context.Context, cfg Config) Result {
	triples := enumerateTriples(cfg)
	if len(triples) == 0 {
		return Result{}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(triples) {
		workers = len(triples)
	}

	var mu sync.Mutex
	var best Result
	done := 0

	jobs := make(chan triple)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				rng := rand.New(rand.NewSource(seedFor(cfg.Seed, t)))
				r, ok := evaluateTriple(cfg, t, rng)
				mu.Lock()
				done++
				if ok && (!best.Found || r.Score > best.Score) {
					best = r
				}
				if cfg.Progress != nil {
					cfg.Progress(done, len(triples), best.Score)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, t := range triples {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- t:
		}
	}
	close(jobs)
	wg.Wait()

	return best
}

// enumerateTriples builds the (L, W_pt, W_ct) triples to visit, applying
// §4.9's per-cipher-type pruning before the crib precheck even runs.
func enumerateTriples(cfg Config) []triple {
	periods := resolvePeriods(cfg)
	ptLens, ctLens := resolveKeywordLens(cfg)

	var out []triple
	for _, l := range periods {
		for _, wpt := range ptLens {
			for _, wct := range ctLens {
				if !constraintsSatisfied(cfg.Type, wpt, wct) {
					continue
				}
				out = append(out, triple{period: l, ptLen: wpt, ctLen: wct})
			}
		}
	}
	return out
}

func constraintsSatisfied(t ciphertype.Type, wpt, wct int) bool {
	switch t {
	case ciphertype.Vigenere, ciphertype.Porta, ciphertype.Beaufort, ciphertype.Autokey0:
		return wpt == 1 && wct == 1
	case ciphertype.Quagmire1, ciphertype.Autokey1:
		return wct == 1
	case ciphertype.Quagmire2, ciphertype.Autokey2:
		return wpt == 1
	case ciphertype.Quagmire3, ciphertype.Autokey3:
		return wpt == wct
	case ciphertype.Quagmire4, ciphertype.Autokey4:
		return true
	default:
		return true
	}
}

func resolvePeriods(cfg Config) []int {
	if cfg.PeriodFixed > 0 {
		return []int{cfg.PeriodFixed}
	}
	if cfg.Type.IsAutokey() {
		return rangeInts(1, cfg.MaxPeriod)
	}
	cands := period.Estimate(cfg.Cipher, period.Config{
		MaxLength:    cfg.MaxPeriod,
		NSigmaThresh: cfg.NSigmaThresh,
		IoCThresh:    cfg.IoCThresh,
	})
	if len(cands) == 0 {
		max := cfg.MaxPeriod
		if max > 15 {
			max = 15
		}
		return rangeInts(1, max)
	}
	lens := make([]int, len(cands))
	for i, c := range cands {
		lens[i] = c.Length
	}
	return lens
}

func resolveKeywordLens(cfg Config) (pt, ct []int) {
	switch cfg.Type {
	case ciphertype.Vigenere, ciphertype.Porta, ciphertype.Beaufort, ciphertype.Autokey0:
		return []int{1}, []int{1}
	}
	if cfg.PTKeywordLen > 0 {
		pt = []int{cfg.PTKeywordLen}
	} else {
		pt = rangeInts(1, cfg.MaxKeywordLen)
	}
	if cfg.CTKeywordLen > 0 {
		ct = []int{cfg.CTKeywordLen}
	} else {
		ct = rangeInts(1, cfg.MaxKeywordLen)
	}
	return pt, ct
}

func rangeInts(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, hi-lo+1)
	for i := range out {
		out[i] = lo + i
	}
	return out
}

func evaluateTriple(cfg Config, t triple, rng *rand.Rand) (Result, bool) {
	if !cfg.Type.IsAutokey() && len(cfg.CribPositions) > 0 {
		if !crib.SatisfiedForPeriod(cfg.Cipher, crib.Crib{Positions: cfg.CribPositions, Values: cfg.CribValues}, t.period) {
			return Result{}, false
		}
	}

	var fixedPT, fixedCT *[alphabet.Size]int
	if cfg.FixedPTKeyword != nil {
		p, _ := alphabet.Keyed(cfg.FixedPTKeyword)
		fixedPT = &p
	}
	if cfg.FixedCTKeyword != nil {
		c, _ := alphabet.Keyed(cfg.FixedCTKeyword)
		fixedCT = &c
	}

	climberCfg := climber.Config{
		Type:            cfg.Type,
		Variant:         cfg.Variant,
		Period:          t.period,
		PTPrefix:        t.ptLen,
		CTPrefix:        t.ctLen,
		FixedPT:         fixedPT,
		FixedCT:         fixedCT,
		SameKey:         cfg.SameKey,
		NHillClimbs:     cfg.NHillClimbs,
		NRestarts:       cfg.NRestarts,
		PBacktrack:      cfg.PBacktrack,
		PKeywordPerm:    cfg.PKeywordPerm,
		PSlip:           cfg.PSlip,
		OptimalCycle:    cfg.OptimalCycle,
		WeightedPerturb: cfg.WeightedPerturb,
		Weights: weightsOf(cfg.Weights),
	}

	res := climber.Run(cfg.Cipher, cfg.CribPositions, cfg.CribValues, cfg.Table, climberCfg, rng, nil)

	plaintext := decryptBest(cfg, res.Best)
	return Result{
		Found:     true,
		Score:     res.Score,
		Period:    t.period,
		PTPrefix:  t.ptLen,
		CTPrefix:  t.ctLen,
		State:     res.Best,
		Plaintext: plaintext,
	}, true
}

func decryptBest(cfg Config, s tableau.State) []int {
	if cfg.Type.IsAutokey() {
		return autokey.Decrypt(cfg.Type, cfg.Cipher, cfg.Variant, s.PT, s.CT, s.Cycleword)
	}
	return tableau.Decrypt(cfg.Cipher, s)
}

func weightsOf(w Weights) fitness.Weights {
	return fitness.Weights{Ngram: w.Ngram, Crib: w.Crib, IoC: w.IoC, Entropy: w.Entropy}
}
