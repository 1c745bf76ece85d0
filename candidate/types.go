package candidate

import (
	"errors"
	"fmt"
)

// DefaultJitterSamples is the number of random centers drawn per input point
// when a Pool is built with a generator.
const DefaultJitterSamples = 5

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("candidate: invalid option supplied")

// Kind records where a static candidate came from.
type Kind uint8

const (
	// KindPoint is an input point used as its own center.
	KindPoint Kind = iota
	// KindPairIntersection is an intersection of two input points' unit circles.
	KindPairIntersection
	// KindJitter is a random sample inside an input point's unit disk.
	KindJitter
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindPairIntersection:
		return "pair"
	case KindJitter:
		return "jitter"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Option configures Build.
type Option func(*Options)

// Options controls the static pool composition.
type Options struct {
	// RNG, when non-nil, enables jitter candidates drawn from it.
	RNG *Xorshift

	// JitterSamples is the number of jitter candidates per input point.
	// Ignored when RNG is nil.
	JitterSamples int

	err error
}

// DefaultOptions returns a deterministic configuration: no RNG,
// JitterSamples=DefaultJitterSamples.
func DefaultOptions() Options {
	return Options{JitterSamples: DefaultJitterSamples}
}

// WithJitter enables random candidates drawn from rng.
func WithJitter(rng *Xorshift) Option {
	return func(o *Options) {
		o.RNG = rng
	}
}

// WithJitterSamples sets the number of random candidates per input point.
//
//	k > 0:  draw k samples per point
//	k == 0: disable jitter even when an RNG is set
//	k < 0:  ErrOptionViolation
func WithJitterSamples(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: JitterSamples cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.JitterSamples = k
	}
}
