package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Point is a 2D coordinate. It doubles as an input site and as a circle center.
type Point = r2.Vec

const (
	// Eps is the slack applied to coverage, separation and tangency tests.
	Eps = 1e-13

	// CoincideTol is the distance below which two circle centers are treated
	// as the same point (no well-defined intersection).
	CoincideTol = 1e-9

	// CollinearTol bounds the circumcenter determinant for collinear triples.
	CollinearTol = 1e-9

	// Radius is the radius of every cover circle.
	Radius = 1.0

	// ExclusionRadius is the minimum center-to-center distance of two cover
	// circles. A new center must lie outside the exclusion circle of every
	// placed center.
	ExclusionRadius = 2 * Radius
)
