package cover

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/unitcover/candidate"
	"github.com/katalvlaran/unitcover/geometry"
)

// engine holds all state of one backtracking attempt over one component.
// points and pool are read-only; solution is pushed and popped as the DFS
// advances and backtracks.
type engine struct {
	points   []geometry.Point
	pool     *candidate.Pool
	solution []geometry.Point
	nodes    int
}

func newEngine(points []geometry.Point, pool *candidate.Pool) *engine {
	return &engine{
		points:   points,
		pool:     pool,
		solution: make([]geometry.Point, 0, len(points)),
	}
}

// run searches from the empty cover and returns a copy of the first full
// cover found, or false when the candidate space is exhausted.
func (e *engine) run() ([]geometry.Point, bool) {
	e.solution = e.solution[:0]
	if !e.search(bitset.New(uint(len(e.points)))) {
		return nil, false
	}
	out := make([]geometry.Point, len(e.solution))
	copy(out, e.solution)

	return out, true
}

// search is one DFS node. covered marks the points already inside some
// placed circle; it is never modified here.
func (e *engine) search(covered *bitset.BitSet) bool {
	e.nodes++
	if covered.All() {
		return true
	}
	u, _ := covered.NextClear(0)
	target := int(u)

	for _, idx := range e.pool.Covering(target) {
		c, _ := e.pool.At(idx)
		if e.try(c, target, covered) {
			return true
		}
	}

	// Dynamic candidates are recomputed here: they depend on e.solution.
	for _, c := range candidate.Dynamic(e.points, target, e.solution) {
		if e.try(c, target, covered) {
			return true
		}
	}

	return false
}

// try places a circle at c if it covers the target and respects the
// separation from every placed center, then recurses.
func (e *engine) try(c geometry.Point, target int, covered *bitset.BitSet) bool {
	if !geometry.Covers(c, e.points[target]) {
		return false
	}
	for _, s := range e.solution {
		if !geometry.Separated(c, s) {
			return false
		}
	}

	next := covered.Clone()
	for i, p := range e.points {
		if geometry.Covers(c, p) {
			next.Set(uint(i))
		}
	}

	e.solution = append(e.solution, c)
	if e.search(next) {
		return true
	}
	e.solution = e.solution[:len(e.solution)-1]

	return false
}
