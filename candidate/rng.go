package candidate

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/unitcover/geometry"
)

// DefaultSeed is used when a caller passes seed==0; xorshift has an all-zero
// fixed point, so zero can never be a live state.
const DefaultSeed uint64 = 42

// Xorshift is a deterministic xorshift64 (13, 7, 17) generator.
//
// It is not safe for concurrent use. Callers own one generator and pass it by
// pointer to every attempt that needs samples.
type Xorshift struct {
	state uint64
}

// NewXorshift returns a generator seeded with seed (DefaultSeed if seed==0).
func NewXorshift(seed uint64) *Xorshift {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Xorshift{state: seed}
}

// Uint64 advances the state and returns it.
func (x *Xorshift) Uint64() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// Float64 returns a value in [0, 1].
func (x *Xorshift) Float64() float64 {
	return float64(x.Uint64()) / float64(math.MaxUint64)
}

// InDisk returns a point distributed uniformly inside the circle (c, radius).
// The radius uses the square-root transform so that area, not distance from
// the center, is uniform.
func (x *Xorshift) InDisk(c geometry.Point, radius float64) geometry.Point {
	angle := x.Float64() * 2 * math.Pi
	r := math.Sqrt(x.Float64()) * radius
	return r2.Add(c, geometry.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
}
