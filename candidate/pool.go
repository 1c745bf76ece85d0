package candidate

import (
	"github.com/katalvlaran/unitcover/geometry"
)

// Pool is the ordered static candidate set of one search attempt together
// with its coverage index. It is read-only once built.
type Pool struct {
	centers  []geometry.Point
	kinds    []Kind
	covering [][]int // covering[u] = pool indices whose circle covers point u
}

// Build assembles the static pool for points: input points first, then pair
// intersections in (i, j) lexicographic order, then jitter samples grouped
// by input point. The coverage index is computed last.
//
// Complexity: O(n²) candidates, O(n³) for the index; jitter adds O(n·k).
func Build(points []geometry.Point, opts ...Option) (*Pool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(points)
	p := &Pool{
		centers: make([]geometry.Point, 0, n+n*(n-1)),
		kinds:   make([]Kind, 0, n+n*(n-1)),
	}
	for _, pt := range points {
		p.add(pt, KindPoint)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			for _, c := range geometry.CircleIntersections(points[i], geometry.Radius, points[j], geometry.Radius) {
				p.add(c, KindPairIntersection)
			}
		}
	}

	if o.RNG != nil {
		for _, pt := range points {
			for k := 0; k < o.JitterSamples; k++ {
				p.add(o.RNG.InDisk(pt, geometry.Radius), KindJitter)
			}
		}
	}

	p.index(points)
	return p, nil
}

func (p *Pool) add(c geometry.Point, k Kind) {
	p.centers = append(p.centers, c)
	p.kinds = append(p.kinds, k)
}

// index fills covering[u] in ascending pool order.
func (p *Pool) index(points []geometry.Point) {
	p.covering = make([][]int, len(points))
	for u, pt := range points {
		for idx, c := range p.centers {
			if geometry.Covers(c, pt) {
				p.covering[u] = append(p.covering[u], idx)
			}
		}
	}
}

// Len returns the number of static candidates.
func (p *Pool) Len() int { return len(p.centers) }

// At returns candidate idx and its provenance.
func (p *Pool) At(idx int) (geometry.Point, Kind) {
	return p.centers[idx], p.kinds[idx]
}

// Covering returns the pool indices whose unit circle covers point u, in pool
// order. The slice must not be modified.
func (p *Pool) Covering(u int) []int {
	return p.covering[u]
}
