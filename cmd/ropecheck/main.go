/*
Command ropecheck checks ropes against a plain slice implementation.

Usage:

	ropecheck [-trace level] [-trace-to dest] check [flags]
	ropecheck [-trace level] [-trace-to dest] replay [-seed n] script
	ropecheck [-trace level] [-trace-to dest] dot [-seed n] [-o file] script

check generates random workloads, replays each of them on a rope and on a
reference slice, and reports every round in which the two disagree. replay
does the same for a workload loaded from a script file. dot replays a
script on a rope and writes the resulting tree in Graphviz DOT format.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/permrope"
	"github.com/npillmayer/permrope/reference"
	"github.com/npillmayer/permrope/report"
	"github.com/npillmayer/permrope/scriptfile"
	"github.com/npillmayer/permrope/workload"
	"github.com/npillmayer/schuko/tracing"
)

// errFailed signals that a check found differences; it has been reported
// already.
var errFailed = errors.New("check failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "ropecheck: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	conf := flagConfig{}
	global := flag.NewFlagSet("ropecheck", flag.ContinueOnError)
	trace := global.String("trace", "error", "trace level (error, info, debug)")
	global.Func("trace-to", "trace destination: stdout, stderr or file://name", func(v string) error {
		conf["tracing.destination"] = v
		return nil
	})
	if err := global.Parse(args); err != nil {
		return err
	}
	level := tracing.TraceLevelFromString(*trace).String()
	conf["tracelevel.root"] = level
	conf["tracelevel.permrope"] = level
	if global.NArg() == 0 {
		return errors.New("missing sub-command: check, replay or dot")
	}
	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "check":
		return check(ctx, conf, rest)
	case "replay":
		return replay(ctx, conf, rest)
	case "dot":
		return dot(conf, rest)
	}
	return fmt.Errorf("unknown sub-command %q", cmd)
}

// --- check -----------------------------------------------------------------

func check(ctx context.Context, conf flagConfig, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	set := func(key, name, usage string) {
		fs.Func(name, usage, func(v string) error {
			conf[key] = v
			return nil
		})
	}
	set("seed", "seed", "seed of the first round (default 42)")
	set("check.rounds", "rounds", "number of rounds (default 10)")
	set("check.commands", "commands", "commands per round (default 1000)")
	set("check.maxvalue", "max-value", "largest generated value (default 1000)")
	set("check.maxelements", "max-elements", "cap on the sequence length, 0 for none")
	set("check.mix", "mix", "comma separated command kinds (default insert,permute)")
	set("check.html", "html", "write an HTML report to this file")
	set("check.failures", "save-failures", "save failing workloads as scripts into this directory")
	verify := fs.Bool("verify", false, "check tree invariants after every round")
	if err := fs.Parse(args); err != nil {
		return err
	}
	conf.InitDefaults()
	if err := setupTracing(conf); err != nil {
		return err
	}
	cfg, err := generatorConfig(conf)
	if err != nil {
		return err
	}
	seed, err := conf.seed()
	if err != nil {
		return err
	}
	n, err := conf.number("check.rounds", "rounds")
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("rounds must be positive, have %q", conf.GetString("check.rounds"))
	}
	console := report.ConsoleFromTerminal()
	rounds := make([]report.Round, 0, n)
	for i := range n {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r := checkRound(ctx, cfg, seed+uint64(i), *verify)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !r.Passed() && conf.IsSet("check.failures") {
			saveFailure(conf.GetString("check.failures"), cfg, r.Seed)
		}
		rounds = append(rounds, r)
	}
	console.Summary(rounds)
	if conf.IsSet("check.html") {
		if err := writeHTML(conf.GetString("check.html"), rounds); err != nil {
			return err
		}
	}
	if report.Failures(rounds) > 0 {
		return errFailed
	}
	return nil
}

func generatorConfig(conf flagConfig) (workload.Config, error) {
	var cfg workload.Config
	var err error
	if cfg.Commands, err = conf.number("check.commands", "commands"); err != nil {
		return cfg, err
	}
	maxValue, err := strconv.ParseInt(conf.GetString("check.maxvalue"), 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("-max-value: %w", err)
	}
	cfg.MaxValue = maxValue
	maxElements, err := strconv.ParseUint(conf.GetString("check.maxelements"), 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("-max-elements: %w", err)
	}
	cfg.MaxElements = maxElements
	for _, name := range splitList(conf.GetString("check.mix")) {
		k, err := workload.ParseKind(name)
		if err != nil {
			return cfg, err
		}
		cfg.Kinds = append(cfg.Kinds, k)
	}
	return cfg, cfg.Validate()
}

func checkRound(ctx context.Context, cfg workload.Config, seed uint64, verify bool) report.Round {
	r := report.Round{Seed: seed, Commands: cfg.Commands}
	cmds, err := workload.Generate(cfg, seed)
	if err != nil {
		r.Err = err
		return r
	}
	rope := permrope.New(seed)
	results, err := workload.Replay(ctx, cmds, reference.New(), rope)
	if err != nil {
		r.Err = err
		return r
	}
	r.Length = len(results[0].Final)
	r.Err = workload.Diff(results[0], results[1])
	if r.Err == nil && verify {
		r.Err = rope.Check()
	}
	return r
}

func saveFailure(dir string, cfg workload.Config, seed uint64) {
	cmds, err := workload.Generate(cfg, seed)
	if err == nil {
		name := filepath.Join(dir, "failure-"+strconv.FormatUint(seed, 10)+".txt")
		err = scriptfile.Save(name, cmds)
	}
	if err != nil {
		tracing.Select("permrope").Errorf("cannot save failing workload: %v", err)
	}
}

func writeHTML(name string, rounds []report.Round) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := report.WriteHTML(f, "permrope check", rounds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// --- replay ----------------------------------------------------------------

func replay(ctx context.Context, conf flagConfig, args []string) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.Func("seed", "seed of the rope (default 42)", func(v string) error {
		conf["seed"] = v
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}
	conf.InitDefaults()
	if err := setupTracing(conf); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("replay needs exactly one script file")
	}
	seed, err := conf.seed()
	if err != nil {
		return err
	}
	cmds, err := scriptfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	results, err := workload.Replay(ctx, cmds, reference.New(), permrope.New(seed))
	if err != nil {
		return err
	}
	want, got := results[0], results[1]
	console := report.ConsoleFromTerminal()
	console.Line("%d commands, %d sums, %d permutations", len(cmds), len(got.Sums), len(got.Permutations))
	var highlight []int
	for i := range min(len(want.Final), len(got.Final)) {
		if want.Final[i] != got.Final[i] {
			highlight = append(highlight, i)
		}
	}
	console.Sequence("sums", got.Sums)
	console.Sequence("final", got.Final, highlight...)
	err = workload.Diff(want, got)
	console.Round(report.Round{Seed: seed, Commands: len(cmds), Length: len(got.Final), Err: err})
	if err != nil {
		console.Sequence("expected", want.Final, highlight...)
		return errFailed
	}
	return nil
}

// --- dot -------------------------------------------------------------------

func dot(conf flagConfig, args []string) error {
	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	fs.Func("seed", "seed of the rope (default 42)", func(v string) error {
		conf["seed"] = v
		return nil
	})
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	conf.InitDefaults()
	if err := setupTracing(conf); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("dot needs exactly one script file")
	}
	seed, err := conf.seed()
	if err != nil {
		return err
	}
	cmds, err := scriptfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	rope := permrope.New(seed)
	if _, err := workload.Run(rope, cmds); err != nil {
		return err
	}
	if *out == "" {
		return permrope.Rope2Dot(rope, os.Stdout)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := permrope.Rope2Dot(rope, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
