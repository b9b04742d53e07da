package life

import (
	"errors"
	"slices"
	"testing"
)

func TestPlacePatternGlider(t *testing.T) {
	sim := New()
	if err := sim.PlacePattern("glider", 0, 0); err != nil {
		t.Fatal(err)
	}
	want := []Loc{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	slices.SortFunc(want, CompareLocs)
	if got := sim.LiveLocs(); !slices.Equal(got, want) {
		t.Fatalf("glider = %v, expected %v", got, want)
	}
	mustVerify(t, sim)

	// Placing over live cells leaves them alive.
	if err := sim.PlacePattern("Glider", 0, 0); err != nil {
		t.Fatal(err)
	}
	if sim.LiveCells() != 5 {
		t.Fatalf("re-placing changed live count to %d", sim.LiveCells())
	}
}

func TestPlacePatternUnknown(t *testing.T) {
	sim := New()
	err := sim.PlacePattern("spaceship-9000", 0, 0)
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, expected ErrUnknownPattern", err)
	}
	if _, err := NewWithConfig(Config{Pattern: "nope"}); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("NewWithConfig err = %v", err)
	}
}

func TestGosperGunGrows(t *testing.T) {
	sim := New()
	if err := sim.PlacePatternCentered("gosper-gun", 0, 0); err != nil {
		t.Fatal(err)
	}
	if sim.LiveCells() != 36 {
		t.Fatalf("gun has %d cells, expected 36", sim.LiveCells())
	}
	for i := 0; i < 30; i++ {
		sim.Tick()
	}
	// One period later the gun has emitted a glider.
	if sim.LiveCells() != 41 {
		t.Fatalf("after one period live = %d, expected 41", sim.LiveCells())
	}
	mustVerify(t, sim)
}

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	if !slices.IsSorted(names) || !slices.Contains(names, "r-pentomino") {
		t.Fatalf("unexpected pattern names %v", names)
	}
}

func TestSeedNoiseDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Noise = true
	cfg.SeedX, cfg.SeedY, cfg.SeedW, cfg.SeedH = 0, 0, 40, 30
	cfg.NoiseThreshold = 0

	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewWithConfig(cfg)
	a.Reset(5)
	b.Reset(5)
	if !slices.Equal(a.LiveLocs(), b.LiveLocs()) {
		t.Fatal("noise seeding not deterministic")
	}
	if a.LiveCells() == 0 || a.LiveCells() == 40*30 {
		t.Fatalf("threshold 0 should give a partial fill, got %d", a.LiveCells())
	}
	mustVerify(t, a)
}

func TestSeedNoiseThresholdBounds(t *testing.T) {
	sim := New()
	sim.SeedNoise(0, 0, 10, 10, 10)
	if sim.LiveCells() != 0 {
		t.Fatalf("unreachable threshold gave %d cells", sim.LiveCells())
	}
	sim.SeedNoise(0, 0, 10, 10, -10)
	if sim.LiveCells() != 100 {
		t.Fatalf("threshold below the noise floor gave %d cells", sim.LiveCells())
	}
	mustVerify(t, sim)
}
