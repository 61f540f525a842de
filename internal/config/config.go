// Package config parses the CLI flags and, optionally, a YAML tuning file
// into one flat struct. The YAML file (when given via -config) is loaded
// first to seed defaults; flags registered afterward carry those YAML
// values as their own defaults, so an explicit flag on the command line
// always wins over the YAML overlay, and the overlay always wins over the
// hard-coded defaults below.
package config

import (
	"flag"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/stblake/polyalphabetic/internal/ciphertype"
)

// Config is the full set of tuning knobs exposed by the CLI (§6 of the
// specification this engine implements).
type Config struct {
	TypeArg string `yaml:"type"`
	Type    ciphertype.Type `yaml:"-"`

	CipherPath string `yaml:"cipher"`
	BatchPath  string `yaml:"batch"`
	CribPath   string `yaml:"crib"`

	NgramFile string `yaml:"ngramfile"`
	NgramSize int    `yaml:"ngramsize"`

	DictionaryPath string `yaml:"dictionary"`

	KeywordLen            int `yaml:"keywordlen"`
	PlaintextKeywordLen   int `yaml:"plaintextkeywordlen"`
	CiphertextKeywordLen  int `yaml:"ciphertextkeywordlen"`
	MaxKeywordLen         int `yaml:"maxkeywordlen"`

	CyclewordLen    int `yaml:"cyclewordlen"`
	MaxCyclewordLen int `yaml:"maxcyclewordlen"`

	PlaintextKeyword  string `yaml:"plaintextkeyword"`
	CiphertextKeyword string `yaml:"ciphertextkeyword"`

	NHillClimbs int `yaml:"nhillclimbs"`
	NRestarts   int `yaml:"nrestarts"`

	BacktrackProb   float64 `yaml:"backtrackprob"`
	KeywordPermProb float64 `yaml:"keywordpermprob"`
	SlipProb        float64 `yaml:"slipprob"`

	NSigmaThreshold float64 `yaml:"nsigmathreshold"`
	IoCThreshold    float64 `yaml:"iocthreshold"`

	WeightNgram   float64 `yaml:"weightngram"`
	WeightCrib    float64 `yaml:"weightcrib"`
	WeightIoC     float64 `yaml:"weightioc"`
	WeightEntropy float64 `yaml:"weightentropy"`

	OptimalCycle    bool `yaml:"optimalcycle"`
	StochasticCycle bool `yaml:"stochasticcycle"`
	WeightedUniform bool `yaml:"weighteduniform"`

	Variant bool `yaml:"variant"`
	SameKey bool `yaml:"samekey"`
	Verbose bool `yaml:"verbose"`

	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`

	Timeout string `yaml:"timeout"`

	ConfigPath string `yaml:"-"`
}

// defaults returns the hard-coded defaults from §6's CLI flag table.
func defaults() *Config {
	return &Config{
		MaxKeywordLen:         12,
		PlaintextKeywordLen:   5,
		CiphertextKeywordLen:  5,
		MaxCyclewordLen:       20,
		NHillClimbs:           1000,
		NRestarts:             1,
		BacktrackProb:         0.15,
		KeywordPermProb:       0.95,
		SlipProb:              0.01,
		NSigmaThreshold:       1.0,
		IoCThreshold:          0.047,
		WeightNgram:           12,
		WeightCrib:            36,
		WeightIoC:             0,
		WeightEntropy:         0,
		OptimalCycle:          true,
		Seed:                  1,
	}
}

// Parse builds a Config from argv, applying the YAML-overlay-then-flags
// precedence described above.
func Parse(args []string) (*Config, error) {
	cfg := defaults()

	if path := peekConfigFlag(args); path != "" {
		if err := overlayYAML(cfg, path); err != nil {
			return nil, err
		}
		cfg.ConfigPath = path
	}

	fs := flag.NewFlagSet("polyalphabetic", flag.ContinueOnError)
	fs.StringVar(&cfg.TypeArg, "type", cfg.TypeArg, "cipher type (int or alias)")
	fs.StringVar(&cfg.CipherPath, "cipher", cfg.CipherPath, "ciphertext file path")
	fs.StringVar(&cfg.BatchPath, "batch", cfg.BatchPath, "batch ciphertext file (one per line)")
	fs.StringVar(&cfg.CribPath, "crib", cfg.CribPath, "crib file path")
	fs.StringVar(&cfg.NgramFile, "ngramfile", cfg.NgramFile, "n-gram table file path")
	fs.IntVar(&cfg.NgramSize, "ngramsize", cfg.NgramSize, "n-gram order")
	fs.StringVar(&cfg.DictionaryPath, "dictionary", cfg.DictionaryPath, "dictionary word list path")

	fs.IntVar(&cfg.KeywordLen, "keywordlen", cfg.KeywordLen, "fixed PT and CT keyword length shorthand")
	fs.IntVar(&cfg.PlaintextKeywordLen, "plaintextkeywordlen", cfg.PlaintextKeywordLen, "fixed PT keyword length")
	fs.IntVar(&cfg.CiphertextKeywordLen, "ciphertextkeywordlen", cfg.CiphertextKeywordLen, "fixed CT keyword length")
	fs.IntVar(&cfg.MaxKeywordLen, "maxkeywordlen", cfg.MaxKeywordLen, "upper bound on keyword length when not fixed")

	fs.IntVar(&cfg.CyclewordLen, "cyclewordlen", cfg.CyclewordLen, "fixed cycleword length (period)")
	fs.IntVar(&cfg.MaxCyclewordLen, "maxcyclewordlen", cfg.MaxCyclewordLen, "upper bound on period when not fixed")

	fs.StringVar(&cfg.PlaintextKeyword, "plaintextkeyword", cfg.PlaintextKeyword, "fixes the PT keyed alphabet")
	fs.StringVar(&cfg.CiphertextKeyword, "ciphertextkeyword", cfg.CiphertextKeyword, "fixes the CT keyed alphabet")

	fs.IntVar(&cfg.NHillClimbs, "nhillclimbs", cfg.NHillClimbs, "inner iterations per restart")
	fs.IntVar(&cfg.NRestarts, "nrestarts", cfg.NRestarts, "restarts per triple")

	fs.Float64Var(&cfg.BacktrackProb, "backtrackprob", cfg.BacktrackProb, "probability of backtracking to best at restart")
	fs.Float64Var(&cfg.KeywordPermProb, "keywordpermprob", cfg.KeywordPermProb, "probability of mutating the keyword over the cycleword")
	fs.Float64Var(&cfg.SlipProb, "slipprob", cfg.SlipProb, "probability of accepting a worse candidate")

	fs.Float64Var(&cfg.NSigmaThreshold, "nsigmathreshold", cfg.NSigmaThreshold, "period z-score threshold")
	fs.Float64Var(&cfg.IoCThreshold, "iocthreshold", cfg.IoCThreshold, "period raw IoC threshold")

	fs.Float64Var(&cfg.WeightNgram, "weightngram", cfg.WeightNgram, "fitness n-gram weight")
	fs.Float64Var(&cfg.WeightCrib, "weightcrib", cfg.WeightCrib, "fitness crib-match weight")
	fs.Float64Var(&cfg.WeightIoC, "weightioc", cfg.WeightIoC, "fitness IoC-distance weight")
	fs.Float64Var(&cfg.WeightEntropy, "weightentropy", cfg.WeightEntropy, "fitness entropy-distance weight")

	fs.BoolVar(&cfg.OptimalCycle, "optimalcycle", cfg.OptimalCycle, "derive the cycleword deterministically (default)")
	fs.BoolVar(&cfg.StochasticCycle, "stochasticcycle", cfg.StochasticCycle, "mutate the cycleword stochastically instead")
	fs.BoolVar(&cfg.WeightedUniform, "weighteduniform", cfg.WeightedUniform, "use uniform instead of frequency-weighted perturbator selection")

	fs.BoolVar(&cfg.Variant, "variant", cfg.Variant, "reciprocal direction")
	fs.BoolVar(&cfg.SameKey, "samekey", cfg.SameKey, "force PT=CT=cycleword alphabet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "human-readable progress")

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "PRNG seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker pool size (default GOMAXPROCS)")
	fs.StringVar(&cfg.Timeout, "timeout", cfg.Timeout, "wall-clock budget, e.g. 30s")
	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "YAML tuning-overlay file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.StochasticCycle {
		cfg.OptimalCycle = false
	}
	if cfg.KeywordLen > 0 {
		if cfg.PlaintextKeywordLen == defaults().PlaintextKeywordLen {
			cfg.PlaintextKeywordLen = cfg.KeywordLen
		}
		if cfg.CiphertextKeywordLen == defaults().CiphertextKeywordLen {
			cfg.CiphertextKeywordLen = cfg.KeywordLen
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	t, err := ciphertype.Parse(cfg.TypeArg)
	if err != nil {
		return nil, err
	}
	cfg.Type = t

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.TypeArg == "" {
		return errors.New("-type is required")
	}
	if cfg.NgramFile == "" {
		return errors.New("-ngramfile is required")
	}
	if cfg.NgramSize <= 0 {
		return errors.New("-ngramsize is required and must be positive")
	}
	if cfg.CipherPath == "" && cfg.BatchPath == "" {
		return errors.New("one of -cipher or -batch is required")
	}
	return nil
}

func peekConfigFlag(args []string) string {
	for i, a := range args {
		if a == "-config" || a == "--config" {
			if i+1 < len(args) {
				return args[i+1]
			}
		}
		if v, ok := strings.CutPrefix(a, "-config="); ok {
			return v
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
	}
	return ""
}

func overlayYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config file %q", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parsing config file %q", path)
	}
	return nil
}
