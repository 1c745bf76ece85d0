// Package cover solves the unit circle cover problem: given a set of points,
// place radius-1 circles so that every point lies in some circle and no two
// circles overlap (centers at least 2 apart, touching allowed).
//
// A Solver partitions the points into proximity components (points farther
// than 4 apart cannot interact) and solves each component in turn with a
// fixed escalation policy:
//
//  1. StrategyMEC       : a single circle, if the unit enclosing circle exists;
//  2. StrategyBacktrack : exhaustive DFS over the deterministic candidate pool;
//  3. StrategyRandomized: up to Retries further DFS runs whose pools are
//     augmented with jitter samples from the solver's generator.
//
// If every strategy fails for one component, the whole instance is reported
// infeasible (ErrInfeasible); components are never solved partially.
//
// The DFS always attacks the lowest-indexed uncovered point, tries the static
// candidates that cover it in pool order, then the dynamic candidates derived
// from the circles already placed. Coverage is tracked in a bitset, so there
// is no cap on component size beyond running time.
//
// Determinism: one xorshift generator lives in the Solver and is advanced by
// every randomized attempt, across components and across Solve calls. The
// same sequence of Solve calls on a fresh Solver always yields the same output.
//
// Example:
//
//	s, err := cover.NewSolver(cover.WithRetries(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := s.Solve(points)
//	if errors.Is(err, cover.ErrInfeasible) {
//	    fmt.Println("NO")
//	}
package cover
