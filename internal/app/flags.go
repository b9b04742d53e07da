package app

import (
	"flag"
	"fmt"
	"strings"

	"sparse-life/internal/viewport"
	"sparse-life/pkg/sims/life"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Rule    string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Pattern string
	Noise   bool
	Empty   bool
	Paused  bool
	Bell    bool

	// Set holds engine overrides given as -set key=value, applied last.
	Set map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rule:   life.DefaultRule,
		Scale:  7,
		TPS:    30,
		Seed:   42,
		Width:  1280,
		Height: 720,
		Paused: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S rulestring")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random seeding")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern stamped at the origin")
	fs.BoolVar(&c.Noise, "noise", c.Noise, "seed with Perlin noise instead of uniform random")
	fs.BoolVar(&c.Empty, "empty", c.Empty, "start without random seeding")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.BoolVar(&c.Bell, "bell", c.Bell, "ring when the simulation pauses itself")
	fs.Func("set", "engine override key=value (rule, seed, seed_x, seed_y, seed_w, seed_h, noise, noise_threshold, pattern); repeatable", c.setOverride)
}

func (c *Config) setOverride(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", kv)
	}
	if c.Set == nil {
		c.Set = make(map[string]string)
	}
	c.Set[key] = strings.TrimSpace(value)
	return nil
}

// SimConfig maps the flags onto the engine configuration for a view of
// cols×rows cells centered on the origin.
func (c *Config) SimConfig(cols, rows int) life.Config {
	cfg := life.DefaultConfig()
	cfg.Rule = c.Rule
	cfg.Seed = c.Seed
	cfg.SeedX, cfg.SeedY = -(cols / 2), -(rows / 2)
	cfg.SeedW, cfg.SeedH = cols, rows
	cfg.Noise = c.Noise
	cfg.Pattern = c.Pattern
	if c.Empty {
		cfg.SeedW, cfg.SeedH = 0, 0
	}
	return cfg.Merge(c.Set)
}

// Build constructs the simulation, seeded and ready, plus a controller
// driving it through a viewport of pxW×pxH pixels.
func (c *Config) Build(pxW, pxH int) (*Controller, error) {
	view := viewport.New(pxW, pxH, c.Scale)
	size := view.Size()
	sim, err := life.NewWithConfig(c.SimConfig(size.W, size.H))
	if err != nil {
		return nil, fmt.Errorf("configure simulation: %w", err)
	}
	sim.Reset(0)
	ctl := NewController(sim, view, c.TPS)
	ctl.SetPaused(c.Paused)
	return ctl, nil
}
