package cover

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/unitcover/candidate"
	"github.com/katalvlaran/unitcover/geometry"
	"github.com/katalvlaran/unitcover/proximity"
)

// Defaults for the escalation policy.
const (
	// DefaultRetries is the number of randomized backtracking attempts after
	// the deterministic one fails.
	DefaultRetries = 3

	// DefaultJitterSamples is the number of random candidates per point in a
	// randomized attempt.
	DefaultJitterSamples = candidate.DefaultJitterSamples
)

// Sentinel errors.
var (
	// ErrInfeasible is returned when some component cannot be covered by any
	// strategy.
	ErrInfeasible = errors.New("cover: component is infeasible")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cover: invalid option supplied")
)

// Strategy identifies which step of the escalation policy produced a cover.
type Strategy int

const (
	// StrategyMEC is the single enclosing circle.
	StrategyMEC Strategy = iota
	// StrategyBacktrack is DFS over the deterministic pool.
	StrategyBacktrack
	// StrategyRandomized is DFS over a jitter-augmented pool.
	StrategyRandomized
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyMEC:
		return "mec"
	case StrategyBacktrack:
		return "backtrack"
	case StrategyRandomized:
		return "randomized"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options configures a Solver.
//   - Retries:       randomized attempts after the deterministic one (default 3).
//   - JitterSamples: random candidates per point per randomized attempt (default 5).
//   - Seed:          generator seed; 0 selects candidate.DefaultSeed.
//   - ConnectRadius: proximity radius for component partitioning (default 4).
//   - Logger:        debug sink for per-component decisions (default: discard).
type Options struct {
	Retries       int
	JitterSamples int
	Seed          uint64
	ConnectRadius float64
	Logger        *slog.Logger

	err error
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns the policy of the reference solver.
func DefaultOptions() Options {
	return Options{
		Retries:       DefaultRetries,
		JitterSamples: DefaultJitterSamples,
		Seed:          candidate.DefaultSeed,
		ConnectRadius: proximity.DefaultRadius,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRetries sets the number of randomized attempts. Negative values are
// recorded as ErrOptionViolation.
func WithRetries(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Retries cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Retries = n
	}
}

// WithJitterSamples sets the random candidates per point. Negative values are
// recorded as ErrOptionViolation.
func WithJitterSamples(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: JitterSamples cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.JitterSamples = k
	}
}

// WithSeed sets the generator seed (0 selects candidate.DefaultSeed).
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithConnectRadius overrides the component proximity radius.
func WithConnectRadius(r float64) Option {
	return func(o *Options) {
		if !(r > 0) || math.IsInf(r, 0) {
			o.err = fmt.Errorf("%w: ConnectRadius must be positive and finite (%g)", ErrOptionViolation, r)
			return
		}
		o.ConnectRadius = r
	}
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ComponentReport describes how one component was covered.
type ComponentReport struct {
	// Indices are the input indices of the component, in BFS order.
	Indices []int
	// Strategy is the escalation step that succeeded.
	Strategy Strategy
	// Attempts counts backtracking runs (0 for StrategyMEC).
	Attempts int
	// Nodes counts DFS nodes over all attempts.
	Nodes int
	// Circles is the number of centers contributed.
	Circles int
}

// Result holds the cover of one instance.
type Result struct {
	// Centers are the chosen circle centers, component by component.
	Centers []geometry.Point
	// Components reports each component in solve order.
	Components []ComponentReport
}
