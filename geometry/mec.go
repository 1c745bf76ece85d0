package geometry

// MinimumEnclosingCircle reports whether a single unit circle contains every
// point and, if so, returns the center of the smallest such candidate circle.
//
// Candidate circles are the circles spanned by every pair (diameter circle
// centered at the midpoint) and every non-collinear triple (circumcircle).
// The smallest candidate whose squared radius is ≤ 1+Eps and which contains
// all points wins. With no points the answer is false; a single point is its
// own center.
//
// Complexity: O(n⁴) in the worst case (O(n³) candidates × O(n) containment).
func MinimumEnclosingCircle(points []Point) (Point, bool) {
	switch len(points) {
	case 0:
		return Point{}, false
	case 1:
		return points[0], true
	}

	m := mecSearch{points: points, bestR2: Radius*Radius + Eps}
	var i, j, k int
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			mid := Midpoint(points[i], points[j])
			m.consider(mid, DistanceSquared(mid, points[i]))
		}
	}
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			for k = j + 1; k < len(points); k++ {
				c, ok := Circumcenter(points[i], points[j], points[k])
				if !ok {
					continue
				}
				m.consider(c, DistanceSquared(c, points[i]))
			}
		}
	}

	return m.best, m.found
}

// mecSearch tracks the smallest feasible candidate seen so far.
type mecSearch struct {
	points []Point
	bestR2 float64
	best   Point
	found  bool
}

// consider accepts (c, r2) if it is no larger than the incumbent and every
// point lies within r2+Eps of c.
func (m *mecSearch) consider(c Point, r2 float64) {
	if r2 > m.bestR2 {
		return
	}
	for _, p := range m.points {
		if DistanceSquared(c, p) > r2+Eps {
			return
		}
	}
	m.bestR2 = r2
	m.best = c
	m.found = true
}
