// Command unitcover reads unit circle cover instances from stdin and writes
// one answer per instance to stdout.
//
// Usage:
//
//	unitcover [-seed 42] [-retries 3] [-jitter 5] [-radius 4] [-svg out.svg] [-v] < input
//
// Diagnostics go to stderr. Set CHECK_LIMITS=1 to report elapsed time and
// allocated memory after the run (see package limits).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/unitcover/caseio"
	"github.com/katalvlaran/unitcover/cover"
	"github.com/katalvlaran/unitcover/geometry"
	"github.com/katalvlaran/unitcover/limits"
	"github.com/katalvlaran/unitcover/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

// caseSolver is the part of *cover.Solver the command needs.
type caseSolver interface {
	Solve(points []geometry.Point) (*cover.Result, error)
}

// config holds parsed command-line flags.
type config struct {
	seed    uint64
	retries int
	jitter  int
	radius  float64
	svgPath string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("unitcover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Uint64Var(&cfg.seed, "seed", 42, "random seed for randomized retries (0 = default)")
	fs.IntVar(&cfg.retries, "retries", cover.DefaultRetries, "randomized backtracking attempts per component")
	fs.IntVar(&cfg.jitter, "jitter", cover.DefaultJitterSamples, "random candidates per point per randomized attempt")
	fs.Float64Var(&cfg.radius, "radius", 4, "connectivity radius for component partitioning")
	fs.StringVar(&cfg.svgPath, "svg", "", "write an SVG of the last test case to this file")
	fs.BoolVar(&cfg.verbose, "v", false, "log per-component decisions to stderr")
	err := fs.Parse(args)
	return cfg, err
}

// run is main without the process exit, for tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	budget, err := limits.FromEnv(getenv)
	if err != nil {
		fmt.Fprintf(stderr, "unitcover: %v\n", err)
		return 2
	}

	solver, err := cover.NewSolver(
		cover.WithSeed(cfg.seed),
		cover.WithRetries(cfg.retries),
		cover.WithJitterSamples(cfg.jitter),
		cover.WithConnectRadius(cfg.radius),
		cover.WithLogger(log),
	)
	if err != nil {
		fmt.Fprintf(stderr, "unitcover: %v\n", err)
		return 2
	}

	var p *processor
	limits.Check(budget, log, func() {
		p = &processor{solver: solver, log: log}
		err = p.process(caseio.NewReader(stdin), caseio.NewWriter(stdout))
	})
	if err != nil {
		fmt.Fprintf(stderr, "unitcover: %v\n", err)
		return 1
	}

	if cfg.svgPath != "" && p.lastPoints != nil {
		if err := writeSVG(cfg.svgPath, p.lastPoints, p.lastCenters); err != nil {
			fmt.Fprintf(stderr, "unitcover: %v\n", err)
			return 1
		}
	}

	return 0
}

// processor answers every test case of one input stream.
type processor struct {
	solver caseSolver
	log    *slog.Logger

	// last case seen, for -svg
	lastPoints  []geometry.Point
	lastCenters []geometry.Point
}

// process reads T and then T cases, answering each. Malformed or truncated
// input stops reading early; the answers written so far are kept. Only
// output errors are returned.
func (p *processor) process(r *caseio.Reader, w *caseio.Writer) error {
	t, err := r.ReadCount()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			p.log.Warn("cannot read test count", "error", err)
		}
		return w.Flush()
	}

	for i := 0; i < t; i++ {
		pts, err := r.ReadCase()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.log.Warn("stopping on bad input", "case", i, "error", err)
			}
			break
		}
		if err := p.answer(w, i, pts); err != nil {
			return err
		}
	}

	return w.Flush()
}

func (p *processor) answer(w *caseio.Writer, i int, pts []geometry.Point) error {
	p.lastPoints, p.lastCenters = pts, nil

	res, err := p.solver.Solve(pts)
	if err != nil {
		p.log.Debug("case infeasible", "case", i, "points", len(pts), "error", err)
		return w.WriteInfeasible()
	}
	p.lastCenters = res.Centers
	return w.WriteCover(res.Centers)
}

func writeSVG(path string, points, centers []geometry.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.Write(f, points, centers); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
