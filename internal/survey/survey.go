// Package survey runs many rules from the same starting soup and reports how
// each one settles.
package survey

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"sparse-life/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// Options describes one survey.
type Options struct {
	// Rules lists names or rulestrings; empty means every registered rule.
	Rules []string
	Steps int
	Seed  int64
	// Size is the side of the square random soup centered on the origin.
	Size    int
	Noise   bool
	Pattern string
	// Workers bounds concurrent simulations; zero uses GOMAXPROCS.
	Workers int
}

// DefaultOptions returns a survey of every rule over 200 generations.
func DefaultOptions() Options {
	return Options{Steps: 200, Seed: 42, Size: 32}
}

// Result summarises one rule's run.
type Result struct {
	Rule       string
	RuleString string
	// Generations is how many ticks ran before the run ended.
	Generations int
	Stable      bool
	Extinct     bool
	Live        int
	Tracked     int
	// Peak is the largest live population seen.
	Peak int
}

// Outcome is a short word for how the run ended.
func (r Result) Outcome() string {
	switch {
	case r.Extinct:
		return "extinct"
	case r.Stable:
		return "stable"
	}
	return "active"
}

func (r Result) String() string {
	return fmt.Sprintf("%-24s %-14s %-8s gen=%-5d live=%-6d tracked=%-6d peak=%d",
		r.Rule, r.RuleString, r.Outcome(), r.Generations, r.Live, r.Tracked, r.Peak)
}

// Run surveys the requested rules concurrently, one simulation per rule.
// Results are sorted by rule name. Unknown rules fail before anything runs.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	names := opts.Rules
	if len(names) == 0 {
		names = life.Names()
	}
	rules := make([]life.RuleSet, len(names))
	for i, name := range names {
		r, err := life.Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		rules[i] = r
	}
	if opts.Pattern != "" {
		if _, err := life.LookupPattern(opts.Pattern); err != nil {
			return nil, err
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(rules))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, rule := range rules {
		eg.Go(func() error {
			res, err := runRule(ctx, rule, opts)
			if err != nil {
				return fmt.Errorf("rule %q: %w", rule.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(results, func(a, b Result) int { return strings.Compare(a.Rule, b.Rule) })
	return results, nil
}

func runRule(ctx context.Context, rule life.RuleSet, opts Options) (Result, error) {
	cfg := life.DefaultConfig()
	cfg.Rule = rule.Name
	cfg.Seed = opts.Seed
	cfg.SeedX, cfg.SeedY = -(opts.Size / 2), -(opts.Size / 2)
	cfg.SeedW, cfg.SeedH = opts.Size, opts.Size
	cfg.Noise = opts.Noise
	cfg.Pattern = opts.Pattern
	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		return Result{}, err
	}
	sim.Reset(opts.Seed)

	res := Result{Rule: rule.Name, RuleString: rule.String(), Peak: sim.LiveCells()}
	for step := 0; step < opts.Steps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		tick := sim.Tick()
		res.Generations = tick.Generation
		res.Peak = max(res.Peak, tick.Live)
		if tick.Extinct || tick.Stable {
			res.Extinct, res.Stable = tick.Extinct, tick.Stable
			break
		}
	}
	res.Live = sim.LiveCells()
	res.Tracked = sim.Tracked()
	return res, nil
}
