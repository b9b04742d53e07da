package life

import (
	"slices"

	"sparse-life/pkg/core"
)

// Renderer is notified whenever a cell changes state.
type Renderer interface {
	Draw(x, y int, state uint8)
}

// IntSource supplies uniformly distributed integers in [lo, hi).
type IntSource interface {
	UniformInt(lo, hi int) int
}

// TickResult summarizes one generation.
type TickResult struct {
	Updated    int
	Live       int
	Generation int
	Stable     bool
	Extinct    bool
}

// Simulation is a sparse, incremental life engine on an unbounded plane.
// It tracks live cells plus the dead cells adjacent to them and keeps each
// tracked cell's live neighbor count up to date as cells change.
type Simulation struct {
	cfg  Config
	rule RuleSet

	cells    *Store
	pending  []Loc
	removals map[Loc]struct{}

	live       int
	generation int

	renderer Renderer
	rng      *core.RNG
	src      IntSource
}

// New returns an empty simulation under the default rule.
func New() *Simulation {
	s, _ := NewWithConfig(Config{Rule: DefaultRule})
	return s
}

// NewWithConfig returns an empty simulation configured from cfg. It fails
// with a ConfigurationError when cfg.Rule or cfg.Pattern is unknown. Call
// Reset to apply the configured seeding.
func NewWithConfig(cfg Config) (*Simulation, error) {
	if cfg.Rule == "" {
		cfg.Rule = DefaultRule
	}
	rule, err := Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	if cfg.Pattern != "" {
		if _, err := LookupPattern(cfg.Pattern); err != nil {
			return nil, err
		}
	}
	rng := core.NewRNG(cfg.Seed)
	return &Simulation{
		cfg:      cfg,
		rule:     rule,
		cells:    NewStore(),
		removals: make(map[Loc]struct{}),
		rng:      rng,
		src:      rng,
	}, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "life" }

// SetRenderer attaches the collaborator notified of every state change. A
// nil renderer disables notification.
func (s *Simulation) SetRenderer(r Renderer) { s.renderer = r }

// SetIntSource replaces the random source used by SeedRandom. Passing nil
// restores the seeded RNG.
func (s *Simulation) SetIntSource(src IntSource) {
	if src == nil {
		s.src = s.rng
		return
	}
	s.src = src
}

// Rule returns the active rule set.
func (s *Simulation) Rule() RuleSet { return s.rule }

// SelectRuleSet makes the named rule active for subsequent ticks. Cells and
// counters are untouched.
func (s *Simulation) SelectRuleSet(name string) error {
	rule, err := Lookup(name)
	if err != nil {
		return err
	}
	s.rule = rule
	return nil
}

// CellState returns 1 if (x, y) is alive and 0 otherwise.
func (s *Simulation) CellState(x, y int) uint8 {
	return s.cells.Get(Loc{X: x, Y: y}).Curr
}

// Cell returns the record for (x, y), or the zero Cell when untracked.
func (s *Simulation) Cell(x, y int) Cell { return s.cells.Get(Loc{X: x, Y: y}) }

// LiveCells reports the number of live cells.
func (s *Simulation) LiveCells() int { return s.live }

// Tracked reports the number of stored cells, live and boundary.
func (s *Simulation) Tracked() int { return s.cells.Len() }

// Generation reports how many ticks have run since the last Clear.
func (s *Simulation) Generation() int { return s.generation }

// Each calls fn for every tracked cell. fn must not mutate the simulation.
func (s *Simulation) Each(fn func(Loc, Cell)) { s.cells.Each(fn) }

// LiveLocs returns the live coordinates in row-major order.
func (s *Simulation) LiveLocs() []Loc {
	out := make([]Loc, 0, s.live)
	s.cells.Each(func(l Loc, c Cell) {
		if c.Curr == 1 {
			out = append(out, l)
		}
	})
	slices.SortFunc(out, CompareLocs)
	return out
}

// Bounds returns the inclusive bounding box of the live cells. ok is false
// when nothing is alive.
func (s *Simulation) Bounds() (lo, hi Loc, ok bool) {
	s.cells.Each(func(l Loc, c Cell) {
		if c.Curr != 1 {
			return
		}
		if !ok {
			lo, hi, ok = l, l, true
			return
		}
		lo.X = min(lo.X, l.X)
		lo.Y = min(lo.Y, l.Y)
		hi.X = max(hi.X, l.X)
		hi.Y = max(hi.Y, l.Y)
	})
	return lo, hi, ok
}

// Evaluate computes Next for every tracked cell and replaces the pending
// queue with the cells whose state would change. It does not alter Curr,
// counts, or store membership.
func (s *Simulation) Evaluate() {
	s.pending = s.pending[:0]
	s.cells.each(func(l Loc, c *Cell) {
		c.Next = s.rule.NextState(c.Curr, c.Neighbors)
		if c.Next != c.Curr {
			s.pending = append(s.pending, l)
		}
	})
}

// Pending returns the coordinates queued by the last Evaluate, sorted.
func (s *Simulation) Pending() []Loc {
	out := slices.Clone(s.pending)
	slices.SortFunc(out, CompareLocs)
	return out
}

// ApplyPending commits every queued transition. Cells that are gone or
// already in their Next state are skipped, so applying twice is harmless.
func (s *Simulation) ApplyPending() {
	slices.SortFunc(s.pending, CompareLocs)
	for _, l := range s.pending {
		if c, ok := s.cells.Lookup(l); ok && c.Next != c.Curr {
			s.transition(l)
		}
	}
}

// CollectGarbage erases scheduled cells that are still dead and isolated.
func (s *Simulation) CollectGarbage() {
	for l := range s.removals {
		if c, ok := s.cells.Lookup(l); ok && c.Curr == 0 && c.Neighbors == 0 {
			s.cells.Erase(l)
		}
	}
	clear(s.removals)
}

// Tick advances the simulation by one generation.
func (s *Simulation) Tick() TickResult {
	clear(s.removals)
	s.generation++

	s.Evaluate()
	res := TickResult{Updated: len(s.pending), Generation: s.generation}
	if len(s.pending) == 0 {
		res.Stable = true
	} else {
		s.ApplyPending()
		s.CollectGarbage()
	}
	res.Live = s.live
	res.Extinct = s.live == 0
	return res
}

// Step advances one generation, discarding the result.
func (s *Simulation) Step() { s.Tick() }

// Toggle flips (x, y) immediately, outside the generation loop.
func (s *Simulation) Toggle(x, y int) {
	l := Loc{X: x, Y: y}
	c := s.cells.Ensure(l)
	c.Next = 1 - c.Curr
	clear(s.removals)
	s.transition(l)
	s.CollectGarbage()
}

// Set forces (x, y) to state, toggling only when it differs.
func (s *Simulation) Set(x, y int, state uint8) {
	if state > 1 {
		state = 1
	}
	if s.CellState(x, y) != state {
		s.Toggle(x, y)
	}
}

// SeedRandom visits each coordinate of the w×h region with top-left (x, y)
// once, toggling it with probability one half.
func (s *Simulation) SeedRandom(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if s.src.UniformInt(0, 2) == 1 {
				s.Toggle(col, row)
			}
		}
	}
}

// Clear drops every cell and resets the counters. The active rule is kept.
func (s *Simulation) Clear() {
	s.cells.Reset()
	s.pending = s.pending[:0]
	clear(s.removals)
	s.live = 0
	s.generation = 0
}

// Reset clears the plane and applies the configured seeding. A zero seed
// reuses the configured one.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.cfg.Seed = seed
	s.rng.Seed(seed)
	s.Clear()
	cfg := s.cfg
	if cfg.Noise {
		s.SeedNoise(cfg.SeedX, cfg.SeedY, cfg.SeedW, cfg.SeedH, cfg.NoiseThreshold)
	} else {
		s.SeedRandom(cfg.SeedX, cfg.SeedY, cfg.SeedW, cfg.SeedH)
	}
	if cfg.Pattern != "" {
		// NewWithConfig rejected unknown patterns.
		_ = s.PlacePatternCentered(cfg.Pattern, 0, 0)
	}
}

// Config returns the configuration Reset applies.
func (s *Simulation) Config() Config {
	cfg := s.cfg
	cfg.Rule = s.rule.Name
	return cfg
}

func (s *Simulation) transition(l Loc) {
	c, _ := s.cells.Lookup(l)
	c.Curr = c.Next
	if c.Curr == 1 {
		for _, n := range NeighborsOf(l) {
			if nc, ok := s.cells.Lookup(n); ok {
				nc.Neighbors++
				continue
			}
			s.cells.Ensure(n).Neighbors = 1
		}
		s.live++
	} else {
		for _, n := range NeighborsOf(l) {
			nc, ok := s.cells.Lookup(n)
			if !ok {
				continue
			}
			nc.Neighbors--
			if nc.Curr == 0 && nc.Neighbors == 0 {
				s.removals[n] = struct{}{}
			}
		}
		if c.Neighbors == 0 {
			s.removals[l] = struct{}{}
		}
		s.live--
	}
	if s.renderer != nil {
		s.renderer.Draw(l.X, l.Y, c.Curr)
	}
}
