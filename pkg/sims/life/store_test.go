package life

import (
	"slices"
	"testing"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore()
	if got := s.Get(Loc{7, -3}); got != (Cell{}) {
		t.Fatalf("absent cell = %+v, expected zero", got)
	}
	if s.Len() != 0 {
		t.Fatal("Get must not materialize cells")
	}

	c := s.Ensure(Loc{1, 1})
	c.Neighbors = 3
	if s.Ensure(Loc{1, 1}) != c {
		t.Fatal("Ensure must return the existing record")
	}
	if got := s.Get(Loc{1, 1}); got.Neighbors != 3 {
		t.Fatalf("stored cell = %+v", got)
	}

	s.Erase(Loc{1, 1})
	s.Erase(Loc{1, 1})
	if _, ok := s.Lookup(Loc{1, 1}); ok || s.Len() != 0 {
		t.Fatal("Erase should remove the record")
	}
}

func TestStoreKeysSorted(t *testing.T) {
	s := NewStore()
	for _, l := range []Loc{{3, 1}, {-1, 2}, {0, 0}, {-5, 1}} {
		s.Ensure(l)
	}
	want := []Loc{{0, 0}, {-5, 1}, {3, 1}, {-1, 2}}
	if got := s.Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys = %v, expected %v", got, want)
	}
}

func TestNeighborsOfOrder(t *testing.T) {
	got := NeighborsOf(Loc{10, 20})
	want := [8]Loc{
		{9, 19}, {10, 19}, {11, 19},
		{9, 20}, {11, 20},
		{9, 21}, {10, 21}, {11, 21},
	}
	if got != want {
		t.Fatalf("NeighborsOf = %v, expected %v", got, want)
	}
	for _, n := range got {
		if n == (Loc{10, 20}) {
			t.Fatal("a cell is not its own neighbor")
		}
	}
}
