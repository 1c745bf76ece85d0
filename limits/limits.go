// Package limits is an optional self-check harness: it measures wall time
// and allocated memory around a computation and reports them against a
// budget. It never changes what the computation writes; reports go to a
// logger.
//
// The harness is off unless CHECK_LIMITS is set to a non-empty value.
// CHECK_LIMITS_TIME (a time.Duration string) and CHECK_LIMITS_MEM_MB (an
// integer) override the default budget of 1000s and 256 MB.
package limits

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvEnable = "CHECK_LIMITS"
	EnvTime   = "CHECK_LIMITS_TIME"
	EnvMemMB  = "CHECK_LIMITS_MEM_MB"
)

// Default budget.
const (
	DefaultMaxTime     = 1000 * time.Second
	DefaultMaxMemoryMB = 256
)

// ErrBadBudget is returned when an override cannot be parsed or is not positive.
var ErrBadBudget = errors.New("limits: invalid budget")

// Config selects whether the harness runs and against which budget.
type Config struct {
	Enabled     bool
	MaxTime     time.Duration
	MaxMemoryMB int
}

// DefaultConfig returns a disabled harness with the default budget.
func DefaultConfig() Config {
	return Config{
		MaxTime:     DefaultMaxTime,
		MaxMemoryMB: DefaultMaxMemoryMB,
	}
}

// FromEnv builds a Config from getenv (usually os.Getenv).
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Enabled = getenv(EnvEnable) != ""

	if s := getenv(EnvTime); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("%w: %s=%q", ErrBadBudget, EnvTime, s)
		}
		cfg.MaxTime = d
	}
	if s := getenv(EnvMemMB); s != "" {
		mb, err := strconv.Atoi(s)
		if err != nil || mb <= 0 {
			return cfg, fmt.Errorf("%w: %s=%q", ErrBadBudget, EnvMemMB, s)
		}
		cfg.MaxMemoryMB = mb
	}

	return cfg, nil
}

// Report is the measurement of one Check run.
type Report struct {
	Elapsed      time.Duration
	AllocatedMB  float64
	TimeExceeded bool
	MemExceeded  bool
}

// Check runs fn. When cfg is disabled it runs fn and returns a zero Report
// without touching the runtime. When enabled it forces a GC before and after
// fn, measures elapsed time and the growth of total allocated bytes, and
// logs the outcome: a warning per exceeded budget, an info line otherwise.
func Check(cfg Config, log *slog.Logger, fn func()) Report {
	if !cfg.Enabled {
		fn()
		return Report{}
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	runtime.GC()
	runtime.ReadMemStats(&after)

	rep := Report{
		Elapsed:     elapsed,
		AllocatedMB: float64(after.TotalAlloc-before.TotalAlloc) / (1024 * 1024),
	}
	rep.TimeExceeded = elapsed > cfg.MaxTime
	rep.MemExceeded = rep.AllocatedMB > float64(cfg.MaxMemoryMB)

	if rep.TimeExceeded {
		log.Warn("time limit exceeded", "elapsed", elapsed, "limit", cfg.MaxTime)
	}
	if rep.MemExceeded {
		log.Warn("memory limit exceeded", "allocated_mb", rep.AllocatedMB, "limit_mb", cfg.MaxMemoryMB)
	}
	if !rep.TimeExceeded && !rep.MemExceeded {
		log.Info("within limits", "elapsed", elapsed, "allocated_mb", rep.AllocatedMB)
	}

	return rep
}
