// Package proximity partitions a point set into connected components of the
// implicit proximity graph, in which two points are adjacent when their
// distance does not exceed a fixed radius.
//
// Components are discovered by breadth-first search. Start points are taken
// in ascending index order and neighbours are scanned in ascending index
// order, so both the component order and the order of points inside each
// component are deterministic.
package proximity

import (
	"errors"
	"fmt"
	"math"
)

// DefaultRadius is the connectivity radius of the unit circle cover solver:
// two points farther than 4 apart can never share a circle or constrain each
// other's circles (2 for the circle diameter plus 2 for the separation).
const DefaultRadius = 4.0

// slack is added to the squared radius so that points at exactly the
// connectivity radius are joined despite rounding.
const slack = 1e-7

// Sentinel errors for component partitioning.
var (
	// ErrBadRadius is returned for a radius that is not a positive finite number.
	ErrBadRadius = errors.New("proximity: radius must be positive and finite")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("proximity: invalid option supplied")
)

// Option configures component discovery via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks for component discovery.
type Options struct {
	// Radius is the maximum distance between adjacent points.
	Radius float64

	// OnVisit is called when a point is dequeued, with its input index and
	// the index of the component being built.
	OnVisit func(idx, component int)

	err error
}

// DefaultOptions returns Options with Radius=DefaultRadius and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Radius:  DefaultRadius,
		OnVisit: func(int, int) {},
	}
}

// WithRadius overrides the connectivity radius.
//
//	r > 0 and finite: use r
//	otherwise:        ErrBadRadius (wrapped in ErrOptionViolation)
func WithRadius(r float64) Option {
	return func(o *Options) {
		if !(r > 0) || math.IsInf(r, 0) {
			o.err = fmt.Errorf("%w: %w (%g)", ErrOptionViolation, ErrBadRadius, r)
			return
		}
		o.Radius = r
	}
}

// WithOnVisit registers a callback run for every visited point.
func WithOnVisit(fn func(idx, component int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
