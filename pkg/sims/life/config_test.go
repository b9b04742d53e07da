package life

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"rule":            "High Life",
		"seed":            "12",
		"seed_x":          "-4",
		"seed_y":          "3",
		"seed_w":          "8",
		"seed_h":          "oops",
		"noise":           "true",
		"noise_threshold": "0.25",
		"pattern":         "acorn",
	})
	def := DefaultConfig()
	if c.Rule != "High Life" || c.Seed != 12 || c.SeedX != -4 || c.SeedY != 3 || c.SeedW != 8 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.SeedH != def.SeedH {
		t.Fatalf("invalid seed_h should keep the default, got %d", c.SeedH)
	}
	if !c.Noise || c.NoiseThreshold != 0.25 || c.Pattern != "acorn" {
		t.Fatalf("unexpected config %+v", c)
	}

	if got := FromMap(nil); got != def {
		t.Fatalf("FromMap(nil) = %+v, expected defaults", got)
	}
	if got := FromMap(map[string]string{"noise_threshold": "3"}); got.NoiseThreshold != def.NoiseThreshold {
		t.Fatal("out-of-range threshold must be ignored")
	}
}

func TestConfigReportsActiveRule(t *testing.T) {
	sim, err := NewWithConfig(FromMap(map[string]string{"rule": "b3/s23"}))
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Config().Rule; got != "B3/S23" {
		t.Fatalf("Config().Rule = %q", got)
	}
	if err := sim.SelectRuleSet("Maze"); err != nil {
		t.Fatal(err)
	}
	if got := sim.Config().Rule; got != "Maze" {
		t.Fatalf("Config().Rule after switch = %q", got)
	}
}

func TestMergeKeepsBase(t *testing.T) {
	base := DefaultConfig()
	base.SeedW, base.Pattern = 10, "block"
	got := base.Merge(map[string]string{"seed": "9", "seed_h": "-1"})
	if got.Seed != 9 || got.SeedW != 10 || got.Pattern != "block" || got.SeedH != base.SeedH {
		t.Fatalf("Merge = %+v", got)
	}
	if base.Merge(nil) != base {
		t.Fatal("Merge(nil) must return the base")
	}
}
