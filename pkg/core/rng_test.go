package core

import "testing"

func TestUniformIntRange(t *testing.T) {
	r := NewRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := r.UniformInt(-2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("value %d outside [-2,3)", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected all 5 values to appear, saw %v", seen)
	}
	if got := r.UniformInt(4, 4); got != 4 {
		t.Fatalf("empty range should return lo, got %d", got)
	}
}

func TestSeedRestartsSequence(t *testing.T) {
	r := NewRNG(42)
	first := []int{r.UniformInt(0, 100), r.UniformInt(0, 100), r.UniformInt(0, 100)}
	r.Seed(42)
	for i, want := range first {
		if got := r.UniformInt(0, 100); got != want {
			t.Fatalf("draw %d after reseed = %d, expected %d", i, got, want)
		}
	}
}
