package life

import "cmp"

// Loc identifies a cell on the unbounded plane.
type Loc struct {
	X, Y int
}

var neighborOffsets = [8]Loc{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NeighborsOf returns the eight surrounding coordinates in row-major order.
func NeighborsOf(l Loc) [8]Loc {
	var out [8]Loc
	for i, d := range neighborOffsets {
		out[i] = Loc{X: l.X + d.X, Y: l.Y + d.Y}
	}
	return out
}

// Add returns l translated by d.
func (l Loc) Add(d Loc) Loc { return Loc{X: l.X + d.X, Y: l.Y + d.Y} }

// CompareLocs orders coordinates by row, then column.
func CompareLocs(a, b Loc) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
