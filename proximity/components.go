package proximity

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/unitcover/geometry"
)

// walker encapsulates mutable BFS state shared by all components of one call.
type walker struct {
	points  []geometry.Point
	opts    Options
	limit   float64 // squared radius plus slack
	queue   []int
	visited *bitset.BitSet
}

// Components partitions points into connected components under the proximity
// relation dist(p, q) ≤ radius. Each component lists input indices in BFS
// visit order; every index appears in exactly one component.
//
// Returns ErrOptionViolation for an invalid radius. An empty input yields no
// components and no error.
//
// Time:   O(n²) distance evaluations.
// Memory: O(n) for the queue, the visited set and the output.
func Components(points []geometry.Point, opts ...Option) ([][]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(points)
	w := &walker{
		points:  points,
		opts:    o,
		limit:   o.Radius*o.Radius + slack,
		queue:   make([]int, 0, n),
		visited: bitset.New(uint(n)),
	}

	var comps [][]int
	for i := 0; i < n; i++ {
		if w.visited.Test(uint(i)) {
			continue
		}
		comps = append(comps, w.collect(i, len(comps)))
	}

	return comps, nil
}

// collect runs one BFS from start and returns the visited indices in order.
func (w *walker) collect(start, component int) []int {
	w.queue = w.queue[:0]
	w.enqueue(start)

	var comp []int
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		w.opts.OnVisit(u, component)
		comp = append(comp, u)
		w.enqueueNeighbors(u)
	}

	return comp
}

func (w *walker) enqueue(idx int) {
	w.visited.Set(uint(idx))
	w.queue = append(w.queue, idx)
}

// enqueueNeighbors scans every unvisited point in index order and enqueues
// those within the connectivity radius of u.
func (w *walker) enqueueNeighbors(u int) {
	for v := range w.points {
		if w.visited.Test(uint(v)) {
			continue
		}
		if geometry.DistanceSquared(w.points[u], w.points[v]) <= w.limit {
			w.enqueue(v)
		}
	}
}

// Gather returns the points of a component in component order.
func Gather(points []geometry.Point, component []int) []geometry.Point {
	out := make([]geometry.Point, len(component))
	for i, idx := range component {
		out[i] = points[idx]
	}

	return out
}
