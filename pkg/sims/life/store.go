package life

import (
	"maps"
	"slices"
)

// Cell is the record kept for every tracked coordinate.
type Cell struct {
	Curr      uint8
	Next      uint8
	Neighbors int
}

// Store is a sparse mapping from coordinate to cell record. Absent
// coordinates are dead with no live neighbors.
type Store struct {
	cells map[Loc]*Cell
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{cells: make(map[Loc]*Cell)}
}

// Get returns a copy of the stored record, or the zero Cell when absent.
func (s *Store) Get(l Loc) Cell {
	if c, ok := s.cells[l]; ok {
		return *c
	}
	return Cell{}
}

// Lookup returns the stored record for l, if any.
func (s *Store) Lookup(l Loc) (*Cell, bool) {
	c, ok := s.cells[l]
	return c, ok
}

// Ensure returns the record for l, inserting a zero Cell when absent.
func (s *Store) Ensure(l Loc) *Cell {
	if c, ok := s.cells[l]; ok {
		return c
	}
	c := &Cell{}
	s.cells[l] = c
	return c
}

// Erase removes l from the store.
func (s *Store) Erase(l Loc) { delete(s.cells, l) }

// Len reports the number of tracked coordinates.
func (s *Store) Len() int { return len(s.cells) }

// Keys returns a sorted snapshot of the tracked coordinates.
func (s *Store) Keys() []Loc {
	return slices.SortedFunc(maps.Keys(s.cells), CompareLocs)
}

// Each calls fn for every tracked coordinate in unspecified order. fn must
// not mutate the store.
func (s *Store) Each(fn func(Loc, Cell)) {
	for l, c := range s.cells {
		fn(l, *c)
	}
}

func (s *Store) each(fn func(Loc, *Cell)) {
	for l, c := range s.cells {
		fn(l, c)
	}
}

// Reset drops every record.
func (s *Store) Reset() { clear(s.cells) }
