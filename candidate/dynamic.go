package candidate

import (
	"github.com/katalvlaran/unitcover/geometry"
)

// Proximity pre-filters for dynamic candidates, in squared distance.
const (
	// reachPlaced: a center covering u lies within 1 of u and at least 2 from
	// a placed center s, so s only constrains it when dist(u, s) ≤ 3.
	reachPlaced = 9.0 + 1e-5

	// reachPoint: a center on the unit circle of p_i that covers u needs
	// dist(u, p_i) ≤ 2.
	reachPoint = 4.0 + 1e-5
)

// Dynamic returns the solution-dependent candidates for covering point u,
// given the centers already placed. The order is the order the search tries
// them in:
//
//  1. for each placed center s within 3 of u:
//     a. ∂D(u, 1) ∩ ∂D(s, 2)
//     b. ∂D(p_i, 1) ∩ ∂D(s, 2) for every other point p_i within 2 of u
//  2. for each pair of placed centers s_i, s_j (i<j), both within 3 of u:
//     ∂D(s_i, 2) ∩ ∂D(s_j, 2)
//
// Candidates are not filtered for coverage or separation; the caller checks
// both. Returns nil when nothing is placed yet.
func Dynamic(points []geometry.Point, u int, placed []geometry.Point) []geometry.Point {
	if len(placed) == 0 {
		return nil
	}

	target := points[u]
	var out []geometry.Point
	for _, s := range placed {
		if geometry.DistanceSquared(target, s) > reachPlaced {
			continue
		}
		out = append(out, geometry.CircleIntersections(target, geometry.Radius, s, geometry.ExclusionRadius)...)

		for i, p := range points {
			if i == u || geometry.DistanceSquared(target, p) > reachPoint {
				continue
			}
			out = append(out, geometry.CircleIntersections(p, geometry.Radius, s, geometry.ExclusionRadius)...)
		}
	}

	var i, j int
	for i = 0; i < len(placed); i++ {
		if geometry.DistanceSquared(target, placed[i]) > reachPlaced {
			continue
		}
		for j = i + 1; j < len(placed); j++ {
			if geometry.DistanceSquared(target, placed[j]) > reachPlaced {
				continue
			}
			out = append(out, geometry.CircleIntersections(placed[i], geometry.ExclusionRadius, placed[j], geometry.ExclusionRadius)...)
		}
	}

	return out
}
