package survey

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"sparse-life/pkg/sims/life"
)

func TestRunSortsByName(t *testing.T) {
	opts := DefaultOptions()
	opts.Rules = []string{"Seeds", "B36/S23", "Conway's Game of Life", "Maze"}
	opts.Steps = 20
	opts.Size = 12
	results, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(opts.Rules) {
		t.Fatalf("got %d results, expected %d", len(results), len(opts.Rules))
	}
	if !slices.IsSortedFunc(results, func(a, b Result) int { return strings.Compare(a.Rule, b.Rule) }) {
		t.Fatalf("results not sorted: %v", results)
	}
	for _, r := range results {
		if r.Generations <= 0 || r.Generations > opts.Steps {
			t.Fatalf("%s ran %d generations", r.Rule, r.Generations)
		}
		if r.Peak < r.Live {
			t.Fatalf("%s peak %d below final live %d", r.Rule, r.Peak, r.Live)
		}
	}
}

func TestRunAllRulesByDefault(t *testing.T) {
	opts := DefaultOptions()
	opts.Steps = 3
	opts.Size = 8
	results, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(life.Names()) {
		t.Fatalf("got %d results, expected one per registered rule", len(results))
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Rules = []string{"High Life", "Day & Night"}
	opts.Steps = 40
	opts.Size = 16
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Fatalf("runs differ:\n%v\n%v", a, b)
	}
}

func TestBlockSettlesStable(t *testing.T) {
	opts := DefaultOptions()
	opts.Rules = []string{"Conway's Game of Life"}
	opts.Size = 0
	opts.Pattern = "block"
	results, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r := results[0]
	if !r.Stable || r.Extinct || r.Generations != 1 || r.Live != 4 {
		t.Fatalf("block result = %+v", r)
	}
	if r.Outcome() != "stable" {
		t.Fatalf("Outcome() = %q", r.Outcome())
	}
}

func TestEmptySoupGoesExtinct(t *testing.T) {
	opts := DefaultOptions()
	opts.Rules = []string{"Seeds"}
	opts.Size = 0
	results, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r := results[0]; !r.Extinct || r.Outcome() != "extinct" {
		t.Fatalf("empty soup result = %+v", r)
	}
}

func TestRunRejectsUnknownRule(t *testing.T) {
	opts := DefaultOptions()
	opts.Rules = []string{"Conway's Game of Life", "no such rule"}
	_, err := Run(context.Background(), opts)
	if !errors.Is(err, life.ErrUnknownRule) {
		t.Fatalf("Run = %v, expected ErrUnknownRule", err)
	}
	var cfgErr *life.ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Name != "no such rule" {
		t.Fatalf("expected ConfigurationError naming the rule, got %v", err)
	}
}

func TestRunHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := DefaultOptions()
	opts.Rules = []string{"Maze"}
	if _, err := Run(ctx, opts); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, expected context.Canceled", err)
	}
}
