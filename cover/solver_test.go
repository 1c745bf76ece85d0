package cover_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitcover/cover"
	"github.com/katalvlaran/unitcover/geometry"
)

const tol = 1e-9

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

// requireValidCover asserts the two output invariants: every point is within
// 1+ε of some center and every pair of centers is at least 2−ε apart.
func requireValidCover(t *testing.T, points, centers []geometry.Point) {
	t.Helper()
	for i, p := range points {
		covered := false
		for _, c := range centers {
			if geometry.Covers(c, p) {
				covered = true
				break
			}
		}
		require.True(t, covered, "point %d %v is not covered by %v", i, p, centers)
	}
	for i := range centers {
		for j := i + 1; j < len(centers); j++ {
			require.True(t, geometry.Separated(centers[i], centers[j]),
				"centers %d and %d overlap: %v %v", i, j, centers[i], centers[j])
		}
	}
}

func newSolver(t *testing.T, opts ...cover.Option) *cover.Solver {
	t.Helper()
	s, err := cover.NewSolver(opts...)
	require.NoError(t, err)
	return s
}

// TestSolve_SinglePoint: one point is covered by a circle centered on it.
func TestSolve_SinglePoint(t *testing.T) {
	res, err := newSolver(t).Solve([]geometry.Point{pt(0, 0)})
	require.NoError(t, err)
	require.Equal(t, []geometry.Point{pt(0, 0)}, res.Centers)
	require.Len(t, res.Components, 1)
	assert.Equal(t, cover.StrategyMEC, res.Components[0].Strategy)
	assert.Zero(t, res.Components[0].Attempts)
}

// TestSolve_TwoPointsClose: 1.9 apart fits one circle at the midpoint.
func TestSolve_TwoPointsClose(t *testing.T) {
	res, err := newSolver(t).Solve([]geometry.Point{pt(0, 0), pt(1.9, 0)})
	require.NoError(t, err)
	require.Len(t, res.Centers, 1)
	assert.InDelta(t, 0.95, res.Centers[0].X, tol)
	assert.InDelta(t, 0, res.Centers[0].Y, tol)
}

// TestSolve_TwoPointsFar: 2.5 apart needs one circle per point; both points
// are in one component, so this goes through the backtracking search.
func TestSolve_TwoPointsFar(t *testing.T) {
	pts := []geometry.Point{pt(0, 0), pt(2.5, 0)}
	res, err := newSolver(t).Solve(pts)
	require.NoError(t, err)
	require.Equal(t, pts, res.Centers)
	require.Len(t, res.Components, 1)
	rep := res.Components[0]
	assert.Equal(t, cover.StrategyBacktrack, rep.Strategy)
	assert.Equal(t, 1, rep.Attempts)
	assert.Equal(t, 2, rep.Circles)
	assert.Equal(t, []int{0, 1}, rep.Indices)
	assert.Positive(t, rep.Nodes)
}

// TestSolve_StrictRadius: an equilateral triangle with circumradius 1+1e-10
// must not be reported as a single circle.
func TestSolve_StrictRadius(t *testing.T) {
	side := (1.0 + 1e-10) * math.Sqrt(3)
	pts := []geometry.Point{pt(0, 0), pt(side, 0), pt(side/2, side*math.Sqrt(3)/2)}

	res, err := newSolver(t).Solve(pts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(res.Centers), 2)
	requireValidCover(t, pts, res.Centers)
}

// TestSolve_Components: far clusters are solved independently, in order.
func TestSolve_Components(t *testing.T) {
	pts := []geometry.Point{pt(0, 0), pt(100, 0), pt(0.5, 0), pt(100, 2.5)}
	res, err := newSolver(t).Solve(pts)
	require.NoError(t, err)
	require.Len(t, res.Components, 2)
	assert.Equal(t, []int{0, 2}, res.Components[0].Indices)
	assert.Equal(t, cover.StrategyMEC, res.Components[0].Strategy)
	assert.Equal(t, []int{1, 3}, res.Components[1].Indices)
	assert.Equal(t, cover.StrategyBacktrack, res.Components[1].Strategy)
	require.Len(t, res.Centers, 3)
	requireValidCover(t, pts, res.Centers)
}

// TestSolve_Empty: no points, no circles, no error.
func TestSolve_Empty(t *testing.T) {
	res, err := newSolver(t).Solve(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Centers)
	assert.Empty(t, res.Components)
}

// TestSolve_RandomInstances checks the output invariants on random
// instances and that a fresh solver reproduces the same answers.
func TestSolve_RandomInstances(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	instances := make([][]geometry.Point, 100)
	for i := range instances {
		n := 2 + rng.Intn(7)
		pts := make([]geometry.Point, n)
		for j := range pts {
			pts[j] = pt(rng.Float64()*10, rng.Float64()*10)
		}
		instances[i] = pts
	}

	type outcome struct {
		centers []geometry.Point
		err     error
	}
	runAll := func() []outcome {
		s := newSolver(t)
		out := make([]outcome, len(instances))
		for i, pts := range instances {
			res, err := s.Solve(pts)
			if err != nil {
				require.ErrorIs(t, err, cover.ErrInfeasible)
				out[i] = outcome{err: err}
				continue
			}
			requireValidCover(t, pts, res.Centers)
			out[i] = outcome{centers: res.Centers}
		}
		return out
	}

	first := runAll()
	second := runAll()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].centers, second[i].centers, "instance %d", i)
		assert.Equal(t, first[i].err == nil, second[i].err == nil, "instance %d", i)
	}
}

// TestSolveComponent_Direct exercises the component entry point.
func TestSolveComponent_Direct(t *testing.T) {
	centers, rep, err := newSolver(t).SolveComponent([]geometry.Point{pt(0, 0), pt(0, 1)})
	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, cover.StrategyMEC, rep.Strategy)
	assert.Empty(t, rep.Indices)

	// nothing to cover: the search succeeds at the root with no circles
	centers, rep, err = newSolver(t).SolveComponent(nil)
	require.NoError(t, err)
	assert.Empty(t, centers)
	assert.Equal(t, cover.StrategyBacktrack, rep.Strategy)
}

// TestNewSolver_Options rejects invalid configuration.
func TestNewSolver_Options(t *testing.T) {
	bad := []cover.Option{
		cover.WithRetries(-1),
		cover.WithJitterSamples(-2),
		cover.WithConnectRadius(0),
		cover.WithConnectRadius(math.Inf(1)),
		cover.WithConnectRadius(math.NaN()),
	}
	for i, opt := range bad {
		_, err := cover.NewSolver(opt)
		assert.ErrorIs(t, err, cover.ErrOptionViolation, "option %d", i)
	}

	_, err := cover.NewSolver(
		cover.WithRetries(0),
		cover.WithJitterSamples(0),
		cover.WithSeed(0),
		cover.WithConnectRadius(6),
		cover.WithLogger(nil),
	)
	assert.NoError(t, err)
}

// TestSolve_Logging routes debug records to a buffer.
func TestSolve_Logging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := newSolver(t, cover.WithLogger(l)).Solve([]geometry.Point{pt(0, 0), pt(2.5, 0)})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "component covered")
	assert.Contains(t, out, "strategy=backtrack")
	assert.Contains(t, out, "circles=2")
}

// TestStrategy_String covers the Stringer, including unknown values.
func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "mec", cover.StrategyMEC.String())
	assert.Equal(t, "backtrack", cover.StrategyBacktrack.String())
	assert.Equal(t, "randomized", cover.StrategyRandomized.String())
	assert.Equal(t, "Strategy(9)", cover.Strategy(9).String())
}
