// Command polyalphabetic automates cryptanalysis of Vigenere, Beaufort,
// Porta, Quagmire I-IV, and the five Autokey variants: it estimates the
// period, derives or searches for the cycleword and keyed alphabets, and
// reports the highest-scoring plaintext it finds.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/batch"
	"github.com/stblake/polyalphabetic/internal/config"
	"github.com/stblake/polyalphabetic/internal/corpus"
	"github.com/stblake/polyalphabetic/internal/dictionary"
	"github.com/stblake/polyalphabetic/internal/logging"
	"github.com/stblake/polyalphabetic/internal/ngram"
	"github.com/stblake/polyalphabetic/internal/orchestrator"
	"github.com/stblake/polyalphabetic/internal/report"
)

const defaultDictionaryPath = "OxfordEnglishWords.txt"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyalphabetic:", err)
		return 2
	}

	log := logging.New(cfg.Verbose)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		log.Warn("interrupted, finishing the in-flight triple")
		cancel()
	}()

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			fmt.Fprintln(os.Stderr, "polyalphabetic: bad -timeout:", err)
			return 2
		}
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, d)
		defer timeoutCancel()
	}

	table, err := corpus.LoadNgramTable(cfg.NgramFile, cfg.NgramSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyalphabetic:", err)
		return 1
	}

	dictPath := cfg.DictionaryPath
	if dictPath == "" && dictionary.Exists(defaultDictionaryPath) {
		dictPath = defaultDictionaryPath
	}
	var dict *dictionary.Dictionary
	if dictPath != "" {
		dict, err = dictionary.Load(dictPath)
		if err != nil {
			log.Warnf("dictionary not loaded: %v", err)
			dict = nil
		}
	}

	var prog *report.Progress
	if cfg.Verbose {
		prog = report.NewProgress(os.Stderr)
		defer prog.Finish()
	}

	solve := func(ctx context.Context, cipher []int) orchestrator.Result {
		orchCfg, err := buildOrchestratorConfig(cfg, cipher, table, prog)
		if err != nil {
			log.Errorf("%v", err)
			return orchestrator.Result{}
		}
		return orchestrator.Run(ctx, orchCfg)
	}

	if cfg.BatchPath != "" {
		b, err := batch.Execute(ctx, cfg.BatchPath, solve)
		if err != nil {
			fmt.Fprintln(os.Stderr, "polyalphabetic:", err)
			return 1
		}
		fmt.Printf("batch run %s: %d ciphertexts\n", b.ID, len(b.Lines))
		anyFailed := false
		for _, line := range batch.SortedByScore(b.Lines) {
			fmt.Printf("\n--- line %d ---\n", line.Index+1)
			if line.Err != nil {
				fmt.Printf("error: %v\n", line.Err)
				anyFailed = true
				continue
			}
			report.Summary(os.Stdout, cfg.Type, line.Result, dict)
		}
		if anyFailed {
			return 1
		}
		return 0
	}

	cipher, err := corpus.LoadCiphertext(cfg.CipherPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyalphabetic:", err)
		return 1
	}

	orchCfg, err := buildOrchestratorConfig(cfg, cipher, table, prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyalphabetic:", err)
		return 1
	}

	result := orchestrator.Run(ctx, orchCfg)
	report.Summary(os.Stdout, cfg.Type, result, dict)
	if !result.Found {
		return 1
	}
	return 0
}

// buildOrchestratorConfig maps the flat CLI config onto orchestrator.Config,
// loading the optional crib file and fixed-keyword flags along the way.
func buildOrchestratorConfig(cfg *config.Config, cipher []int, table *ngram.Table, prog *report.Progress) (orchestrator.Config, error) {
	var cribPositions, cribValues []int
	if cfg.CribPath != "" {
		p, v, err := corpus.LoadCrib(cfg.CribPath, len(cipher))
		if err != nil {
			return orchestrator.Config{}, err
		}
		cribPositions, cribValues = p, v
	}

	var fixedPT, fixedCT []int
	if cfg.PlaintextKeyword != "" {
		idx, err := alphabet.TextToIndices(cfg.PlaintextKeyword)
		if err != nil {
			return orchestrator.Config{}, err
		}
		fixedPT = idx
	}
	if cfg.CiphertextKeyword != "" {
		idx, err := alphabet.TextToIndices(cfg.CiphertextKeyword)
		if err != nil {
			return orchestrator.Config{}, err
		}
		fixedCT = idx
	}

	orchCfg := orchestrator.Config{
		Type:    cfg.Type,
		Variant: cfg.Variant,
		SameKey: cfg.SameKey,

		Cipher:        cipher,
		CribPositions: cribPositions,
		CribValues:    cribValues,
		Table:         table,

		PeriodFixed:  cfg.CyclewordLen,
		MaxPeriod:    cfg.MaxCyclewordLen,
		NSigmaThresh: cfg.NSigmaThreshold,
		IoCThresh:    cfg.IoCThreshold,

		PTKeywordLen:  cfg.PlaintextKeywordLen,
		CTKeywordLen:  cfg.CiphertextKeywordLen,
		MaxKeywordLen: cfg.MaxKeywordLen,

		FixedPTKeyword: fixedPT,
		FixedCTKeyword: fixedCT,

		NHillClimbs:     cfg.NHillClimbs,
		NRestarts:       cfg.NRestarts,
		PBacktrack:      cfg.BacktrackProb,
		PKeywordPerm:    cfg.KeywordPermProb,
		PSlip:           cfg.SlipProb,
		OptimalCycle:    cfg.OptimalCycle,
		WeightedPerturb: !cfg.WeightedUniform,

		Weights: orchestrator.Weights{
			Ngram:   cfg.WeightNgram,
			Crib:    cfg.WeightCrib,
			IoC:     cfg.WeightIoC,
			Entropy: cfg.WeightEntropy,
		},

		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	}

	if prog != nil {
		orchCfg.Progress = prog.Update
	}

	return orchCfg, nil
}
