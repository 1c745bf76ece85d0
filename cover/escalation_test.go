package cover

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitcover/candidate"
	"github.com/katalvlaran/unitcover/geometry"
)

// hexDisk returns the triangular lattice with the given spacing clipped to
// the disk of radius r around the origin, row by row.
func hexDisk(spacing, r float64) []geometry.Point {
	rowH := spacing * math.Sqrt(3) / 2
	k := int(math.Ceil(r/rowH)) + 1
	var pts []geometry.Point
	for j := -k; j <= k; j++ {
		for i := -2 * k; i <= 2*k; i++ {
			p := geometry.Point{X: float64(i)*spacing + float64(j)*spacing/2, Y: float64(j) * rowH}
			if p.X*p.X+p.Y*p.Y <= r*r {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// drawsPerAttempt is the generator output consumed by one randomized pool:
// two floats per jitter sample.
func drawsPerAttempt(points, samples int) int { return 2 * points * samples }

// advanced returns a fresh generator for seed stepped n times.
func advanced(seed uint64, n int) *candidate.Xorshift {
	x := candidate.NewXorshift(seed)
	for i := 0; i < n; i++ {
		x.Uint64()
	}
	return x
}

// TestHexDisk_Size pins the instance used below: 61 points, a single
// component that no single circle encloses.
func TestHexDisk_Size(t *testing.T) {
	pts := hexDisk(0.3, 1.25)
	require.Len(t, pts, 61)
	_, ok := geometry.MinimumEnclosingCircle(pts)
	assert.False(t, ok)
}

// TestSolveComponent_Infeasible walks the whole escalation on a dense disk
// that non-overlapping unit circles cannot cover.
func TestSolveComponent_Infeasible(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search over a 61-point component")
	}
	pts := hexDisk(0.3, 1.25)

	s, err := NewSolver()
	require.NoError(t, err)
	centers, rep, err := s.SolveComponent(pts)
	require.ErrorIs(t, err, ErrInfeasible)
	assert.Nil(t, centers)
	assert.Equal(t, StrategyRandomized, rep.Strategy)
	assert.Equal(t, 1+DefaultRetries, rep.Attempts)
	assert.Positive(t, rep.Nodes)
	assert.Zero(t, rep.Circles)

	// every retry drew from the same generator, none reseeded it
	want := advanced(candidate.DefaultSeed, DefaultRetries*drawsPerAttempt(len(pts), DefaultJitterSamples))
	assert.Equal(t, want.Uint64(), s.rng.Uint64())
}

// TestSolveComponent_InfeasibleNoRetries stops after the deterministic run
// and leaves the generator untouched.
func TestSolveComponent_InfeasibleNoRetries(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search over a 61-point component")
	}
	s, err := NewSolver(WithRetries(0), WithSeed(7))
	require.NoError(t, err)

	_, rep, err := s.SolveComponent(hexDisk(0.3, 1.25))
	require.ErrorIs(t, err, ErrInfeasible)
	assert.Equal(t, StrategyBacktrack, rep.Strategy)
	assert.Equal(t, 1, rep.Attempts)
	assert.Equal(t, candidate.NewXorshift(7).Uint64(), s.rng.Uint64())
}

// TestSolve_InfeasibleComponent fails the whole case when a later component
// fails, and reports which one.
func TestSolve_InfeasibleComponent(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search over a 61-point component")
	}
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := NewSolver(WithRetries(0), WithLogger(l))
	require.NoError(t, err)

	pts := append([]geometry.Point{{X: -10}}, hexDisk(0.3, 1.25)...)
	res, err := s.Solve(pts)
	require.ErrorIs(t, err, ErrInfeasible)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "component 1 of 2 (61 points)")

	out := buf.String()
	assert.Contains(t, out, "component covered")
	assert.Contains(t, out, "component infeasible")
	assert.Contains(t, out, "attempts=1")
}

// TestAttempt_BuildError surfaces pool construction failures.
func TestAttempt_BuildError(t *testing.T) {
	s, err := NewSolver()
	require.NoError(t, err)

	var rep ComponentReport
	out, ok, err := s.attempt([]geometry.Point{{}}, &rep, candidate.WithJitterSamples(-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, candidate.ErrOptionViolation), "got %v", err)
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.Zero(t, rep.Attempts)
}
