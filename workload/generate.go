package workload

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// ErrInvalidConfig signals an unusable generator configuration.
var ErrInvalidConfig = errors.New("workload: invalid configuration")

// Config configures the random generation of workloads.
type Config struct {
	Commands    int    // number of commands to generate
	MaxValue    int64  // values are drawn from [0, MaxValue]
	MaxElements uint64 // cap on the sequence length, 0 for no cap
	Kinds       []Kind // kinds to draw from, uniformly
}

// DefaultConfig mirrors the classic check: 1000 commands of inserts and
// permutations with values up to 1000.
func DefaultConfig() Config {
	return Config{
		Commands: 1000,
		MaxValue: 1000,
		Kinds:    []Kind{Insert, Permute},
	}
}

// Validate checks a configuration for consistency.
func (cfg Config) Validate() error {
	if cfg.Commands < 0 {
		return fmt.Errorf("%w: negative command count", ErrInvalidConfig)
	}
	if cfg.MaxValue < 0 || cfg.MaxValue == math.MaxInt64 {
		return fmt.Errorf("%w: maximum value out of range", ErrInvalidConfig)
	}
	if len(cfg.Kinds) == 0 {
		return fmt.Errorf("%w: no command kinds", ErrInvalidConfig)
	}
	for _, k := range cfg.Kinds {
		if k < Insert || k > Permute {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, k)
		}
	}
	if cfg.MaxElements > 0 && !slices.ContainsFunc(cfg.Kinds, func(k Kind) bool { return k != Insert }) {
		return fmt.Errorf("%w: element cap needs a command kind other than insert", ErrInvalidConfig)
	}
	return nil
}

// Generate creates a random, valid workload: every command respects the
// bounds of the sequence it will be applied to, assuming an initially
// empty sequence. Equal seeds and configurations generate equal workloads.
func Generate(cfg Config, seed uint64) ([]Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rnd := rand.New(rand.NewPCG(seed, seed+1))
	var others []Kind
	for _, k := range cfg.Kinds {
		if k != Insert {
			others = append(others, k)
		}
	}
	cmds := make([]Command, 0, cfg.Commands)
	var n uint64 // current sequence length
	for range cfg.Commands {
		kind := cfg.Kinds[rnd.IntN(len(cfg.Kinds))]
		if cfg.MaxElements > 0 && n >= cfg.MaxElements && kind == Insert {
			kind = others[rnd.IntN(len(others))]
		}
		if n == 0 {
			kind = Insert
		}
		value := rnd.Int64N(cfg.MaxValue + 1)
		switch kind {
		case Insert:
			cmds = append(cmds, InsertCmd(value, rnd.Uint64N(n+1)))
			n++
		case Update:
			cmds = append(cmds, UpdateCmd(value, rnd.Uint64N(n)))
		default:
			left := rnd.Uint64N(n)
			right := left + 1 + rnd.Uint64N(n-left)
			cmds = append(cmds, Command{Kind: kind, Left: left, Right: right})
		}
	}
	tracer().Debugf("generated %d commands, final length %d", len(cmds), n)
	return cmds, nil
}
