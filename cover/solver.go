package cover

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/unitcover/candidate"
	"github.com/katalvlaran/unitcover/geometry"
	"github.com/katalvlaran/unitcover/proximity"
)

// Solver runs the escalation policy over instances. It owns the random
// generator, so it is not safe for concurrent use; create one per goroutine.
type Solver struct {
	opts Options
	rng  *candidate.Xorshift
	log  *slog.Logger
}

// NewSolver builds a Solver from DefaultOptions and opts.
// Returns ErrOptionViolation if any option was invalid.
func NewSolver(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{
		opts: o,
		rng:  candidate.NewXorshift(o.Seed),
		log:  o.Logger,
	}, nil
}

// Solve covers every point of one instance. Components are solved in the
// order proximity.Components returns them and their centers concatenated.
//
// If any component fails every strategy, Solve returns ErrInfeasible wrapped
// with the component index; no partial result is returned.
func (s *Solver) Solve(points []geometry.Point) (*Result, error) {
	comps, err := proximity.Components(points, proximity.WithRadius(s.opts.ConnectRadius))
	if err != nil {
		return nil, err
	}

	res := &Result{
		Centers:    make([]geometry.Point, 0, len(points)),
		Components: make([]ComponentReport, 0, len(comps)),
	}
	for ci, comp := range comps {
		centers, rep, err := s.SolveComponent(proximity.Gather(points, comp))
		if err != nil {
			s.log.Debug("component infeasible",
				"component", ci,
				"size", len(comp),
				"attempts", rep.Attempts,
				"nodes", rep.Nodes,
			)
			return nil, fmt.Errorf("%w: component %d of %d (%d points)", err, ci, len(comps), len(comp))
		}
		rep.Indices = comp
		s.log.Debug("component covered",
			"component", ci,
			"size", len(comp),
			"strategy", rep.Strategy.String(),
			"circles", rep.Circles,
			"attempts", rep.Attempts,
			"nodes", rep.Nodes,
		)
		res.Centers = append(res.Centers, centers...)
		res.Components = append(res.Components, rep)
	}

	return res, nil
}

// SolveComponent covers one component's points: the unit enclosing circle
// first, then deterministic backtracking, then up to Retries randomized
// backtracking runs. Each randomized run advances the solver's generator.
//
// Returns ErrInfeasible when all strategies fail, or the wrapped pool error
// if a candidate pool cannot be built. The report's Indices field is left
// empty; Solve fills it.
func (s *Solver) SolveComponent(points []geometry.Point) ([]geometry.Point, ComponentReport, error) {
	var rep ComponentReport

	if c, ok := geometry.MinimumEnclosingCircle(points); ok {
		rep.Strategy = StrategyMEC
		rep.Circles = 1
		return []geometry.Point{c}, rep, nil
	}

	rep.Strategy = StrategyBacktrack
	out, ok, err := s.attempt(points, &rep)
	if err != nil || ok {
		return out, rep, err
	}

	rep.Strategy = StrategyRandomized
	for i := 0; i < s.opts.Retries; i++ {
		out, ok, err = s.attempt(points, &rep,
			candidate.WithJitter(s.rng),
			candidate.WithJitterSamples(s.opts.JitterSamples),
		)
		if err != nil || ok {
			return out, rep, err
		}
	}

	return nil, rep, ErrInfeasible
}

// attempt builds a fresh pool and runs one DFS, accumulating counters in rep.
// A pool that cannot be built is an error, not a failed attempt.
func (s *Solver) attempt(points []geometry.Point, rep *ComponentReport, opts ...candidate.Option) ([]geometry.Point, bool, error) {
	pool, err := candidate.Build(points, opts...)
	if err != nil {
		return nil, false, fmt.Errorf("cover: build candidate pool: %w", err)
	}
	e := newEngine(points, pool)
	out, ok := e.run()
	rep.Attempts++
	rep.Nodes += e.nodes
	if ok {
		rep.Circles = len(out)
	}

	return out, ok, nil
}
