// Package geometry provides the floating-point primitives used by the unit
// circle cover solver: squared distances, circle-circle intersections,
// circumcenters and the unit minimum enclosing circle test.
//
// Points are gonum r2 vectors. All radii are expressed in multiples of the
// unit circle, and every comparison goes through squared distances so that
// no square root is taken on the hot path.
//
// Tolerances:
//
//	Eps          = 1e-13  coincidence / tangency / coverage slack
//	CoincideTol  = 1e-9   two centers closer than this are the same center
//	CollinearTol = 1e-9   |det| below this means three points are collinear
//
// Coverage is inclusive (a point at distance exactly 1 is covered) and
// separation is inclusive (centers at distance exactly 2 are allowed to touch).
//
// MinimumEnclosingCircle answers the decision variant only: "is there a
// radius-1 circle containing every given point". It tries O(n³) candidate
// circles with an O(n) containment check each, O(n⁴) overall, and is
// meant for components of at most a few dozen points.
package geometry
