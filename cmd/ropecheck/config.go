package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// flagConfig is a configuration collected from command line flags.
// It implements schuko.Configuration.
type flagConfig map[string]string

var _ schuko.Configuration = flagConfig{}

// InitDefaults sets defaults for all keys not set by flags.
func (c flagConfig) InitDefaults() {
	defaults := map[string]string{
		"tracing.adapter":     "go",
		"tracelevel.root":     "Error",
		"tracelevel.permrope": "Error",
		"seed":                "42",
		"check.rounds":        "10",
		"check.commands":      "1000",
		"check.maxvalue":      "1000",
		"check.maxelements":   "0",
		"check.mix":           "insert,permute",
	}
	for k, v := range defaults {
		if _, ok := c[k]; !ok {
			c[k] = v
		}
	}
}

// IsSet is part of interface schuko.Configuration.
func (c flagConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c flagConfig) GetString(key string) string {
	return c[key]
}

// GetInt is part of interface schuko.Configuration.
func (c flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

// GetBool is part of interface schuko.Configuration.
func (c flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

// IsInteractive is part of interface schuko.Configuration.
func (c flagConfig) IsInteractive() bool {
	return false
}

// number reads an integer setting, naming the flag it came from on error.
func (c flagConfig) number(key, flag string) (int, error) {
	n, err := strconv.Atoi(c[key])
	if err != nil {
		return 0, fmt.Errorf("-%s: %w", flag, err)
	}
	return n, nil
}

func (c flagConfig) seed() (uint64, error) {
	seed, err := strconv.ParseUint(c["seed"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return seed, nil
}

// setupTracing routes all tracers to the Go standard logger, with levels
// taken from conf.
func setupTracing(conf flagConfig) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
