// Package grid defines the shared 2D integer coordinate type buildings and
// processors are placed at, plus the packed-key and distance helpers the
// building registry and link resolution need. Kept dependency-free so both
// the building and proc packages can import it without a cycle.
package grid

// Position is a tile coordinate on the building grid.
type Position struct {
	X, Y int32
}

// Key packs Position into a single uint64, the registry's map key — grid
// positions are the only cross-building reference mlog holds (spec.md §3),
// so this key is also what a BuildingRef ultimately resolves through.
func (p Position) Key() uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}

// Less orders positions by packed key, giving the registry's grid-order
// iteration (spec.md §4.6) a total, deterministic ordering.
func (p Position) Less(o Position) bool {
	return p.Key() < o.Key()
}

// Chebyshev returns the Chebyshev (king-move) distance between p and o,
// the distance metric link resolution uses (spec.md §4.5).
func (p Position) Chebyshev(o Position) int32 {
	dx := abs32(p.X - o.X)
	dy := abs32(p.Y - o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
