// Package candidate builds the finite set of circle centers the cover search
// is allowed to try.
//
// A static Pool is built once per search attempt from a component's points:
//
//  1. every input point (a circle centered on a point always covers it);
//  2. every intersection of the unit circles around two input points (the
//     extreme positions from which one circle covers both);
//  3. optionally, JitterSamples points drawn uniformly from the unit disk of
//     each input point, to escape instances where (1) and (2) miss every
//     feasible center.
//
// Alongside the pool, a coverage index lists for every input point the pool
// entries whose unit circle covers it, so the search only enumerates centers
// that can close the gap it is attacking.
//
// Dynamic candidates depend on the partial solution and are produced per
// search node by Dynamic: intersections of an uncovered point's unit circle
// (or a nearby point's unit circle) with a placed center's exclusion circle
// of radius 2, and intersections of two placed centers' exclusion circles.
//
// Randomness comes from Xorshift, a fixed-seed xorshift64 generator. The same
// generator is threaded through consecutive attempts, so retries draw fresh
// but reproducible samples.
package candidate
