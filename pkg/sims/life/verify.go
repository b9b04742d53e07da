package life

import "fmt"

// Verify recomputes every cached count from scratch and reports the first
// disagreement with the store. It also checks that no dead, isolated cell is
// tracked, that every live cell's neighbors are tracked, and that the live
// counter matches.
func (s *Simulation) Verify() error {
	live := 0
	for _, l := range s.cells.Keys() {
		c := s.cells.Get(l)
		want := 0
		for _, n := range NeighborsOf(l) {
			if s.cells.Get(n).Curr == 1 {
				want++
			}
		}
		if c.Neighbors != want {
			return fmt.Errorf("cell (%d,%d) caches %d live neighbors, counted %d", l.X, l.Y, c.Neighbors, want)
		}
		if c.Curr == 0 && c.Neighbors == 0 {
			return fmt.Errorf("cell (%d,%d) is dead and isolated but still tracked", l.X, l.Y)
		}
		if c.Curr == 1 {
			live++
			for _, n := range NeighborsOf(l) {
				if _, ok := s.cells.Lookup(n); !ok {
					return fmt.Errorf("neighbor (%d,%d) of live cell (%d,%d) is untracked", n.X, n.Y, l.X, l.Y)
				}
			}
		}
	}
	if live != s.live {
		return fmt.Errorf("live counter is %d, store holds %d live cells", s.live, live)
	}
	return nil
}
