package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DistanceSquared returns the squared Euclidean distance between p and q.
func DistanceSquared(p, q Point) float64 {
	return r2.Norm2(r2.Sub(p, q))
}

// Covers reports whether the unit circle centered at c contains p,
// boundary included.
func Covers(c, p Point) bool {
	return DistanceSquared(c, p) <= Radius*Radius+Eps
}

// Separated reports whether two unit circles centered at a and b do not
// overlap. Touching circles (distance exactly 2) are separated.
func Separated(a, b Point) bool {
	return DistanceSquared(a, b) >= ExclusionRadius*ExclusionRadius-Eps
}

// CircleIntersections returns the intersection points of the circle (c1, r1)
// with the circle (c2, r2) using the chord-midpoint construction.
//
// The result has:
//   - 0 points when the centers coincide, the circles are disjoint, or one
//     lies strictly inside the other;
//   - 1 point when the circles are tangent (externally or internally) within Eps;
//   - 2 points otherwise.
//
// The two-point order is fixed: the first point lies to the right of the
// directed line c1→c2, the second to its left.
func CircleIntersections(c1 Point, r1 float64, c2 Point, r2v float64) []Point {
	d2 := DistanceSquared(c1, c2)
	d := math.Sqrt(d2)
	if d < CoincideTol || d > r1+r2v+Eps || d < math.Abs(r1-r2v)-Eps {
		return nil
	}

	// a is the signed distance from c1 to the chord midpoint along c1→c2.
	a := (r1*r1 - r2v*r2v + d2) / (2 * d)
	dir := r2.Scale(1/d, r2.Sub(c2, c1))
	mid := r2.Add(c1, r2.Scale(a, dir))

	if math.Abs(d-(r1+r2v)) <= Eps || math.Abs(d-math.Abs(r1-r2v)) <= Eps {
		return []Point{mid}
	}

	h := math.Sqrt(math.Max(0, r1*r1-a*a))
	// perpendicular of dir rotated clockwise
	perp := Point{X: dir.Y, Y: -dir.X}

	return []Point{
		r2.Add(mid, r2.Scale(h, perp)),
		r2.Sub(mid, r2.Scale(h, perp)),
	}
}

// Circumcenter returns the center of the circle through a, b and c.
// It returns false when the three points are (nearly) collinear.
func Circumcenter(a, b, c Point) (Point, bool) {
	det := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(det) < CollinearTol {
		return Point{}, false
	}
	a2 := r2.Norm2(a)
	b2 := r2.Norm2(b)
	c2 := r2.Norm2(c)

	return Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / det,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / det,
	}, true
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return r2.Scale(0.5, r2.Add(p, q))
}
