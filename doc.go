// Package unitcover covers planar point sets with non-overlapping unit
// circles.
//
// Given points p₁…pₙ, find centers c₁…cₖ such that every point lies within
// distance 1 of some center and every two centers are at least 2 apart
// (circles may touch but not overlap), or report that none was found.
//
// Under the hood, everything is organized under small subpackages:
//
//	geometry/  : squared distance, circle intersections, circumcenter, unit MEC
//	proximity/ : BFS partition of the points into independent components
//	candidate/ : static candidate pool, coverage index, dynamic candidates, xorshift RNG
//	cover/     : backtracking search and the MEC → backtrack → randomized escalation
//	caseio/    : judge-format input tokenizer and answer writer
//	limits/    : optional time/memory self-check (CHECK_LIMITS)
//	render/    : SVG drawing of a cover for inspection
//	cmd/unitcover: the stdin → stdout command
//
// Quick ASCII example:
//
//	   .-.   .-.
//	  ( A ) ( B )     two points 2.5 apart: one circle each, 0.5 gap
//	   `-'   `-'
//
//	go install github.com/katalvlaran/unitcover/cmd/unitcover@latest
package unitcover
