// Package pressure defines the search State, sentinel errors, and
// functional options for the maximum-release queries.
package pressure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/volcanium/core"
)

// Default time budgets, in minutes. Fixed puzzle parameters: a lone
// agent works for 30 minutes; teaching a helper costs 4, leaving both
// agents 26.
const (
	// SoloBudget is the default budget for MaxRelease.
	SoloBudget = 30

	// PairBudget is the default per-agent budget for MaxReleaseWithHelp.
	PairBudget = 26
)

// Sentinel errors for the pressure queries.
var (
	// ErrNilTable is returned if a nil destination table is passed.
	ErrNilTable = errors.New("pressure: destination table is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pressure: invalid option supplied")
)

// State is one memoizable search position: standing at a valve with
// some minutes left and some valves already opened. State is a
// comparable value type; two logically identical states always hit
// the same cache slot regardless of how they were produced.
type State struct {
	// At is the valve the agent currently stands at.
	At core.Valve

	// Minutes is the remaining time budget.
	Minutes int

	// Opened has bit b set when the valve owning identity bit b has
	// been opened. The source's bit is zero and is never set.
	Opened uint64
}

// Option configures a query via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation
// when the query runs.
type Option func(*Options)

// Options holds the tunables for one query.
type Options struct {
	// Budget is the time budget in minutes; a negative value means
	// "use the query's default" (SoloBudget or PairBudget).
	Budget int

	// Shortcut enables the two-minutes-or-less terminal pruning:
	// once opening a valve would leave ≤ 2 minutes, no follow-up
	// opening can pay off, so the search stops recursing there.
	Shortcut bool

	// Parallelism is the worker count for the paired enumeration;
	// 1 means serial.
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns the baseline Options: default budget,
// shortcut on, serial.
func defaultOptions() Options {
	return Options{
		Budget:      -1,
		Shortcut:    true,
		Parallelism: 1,
	}
}

// buildOptions applies opts over the defaults, resolves the budget
// fallback, and surfaces any recorded option violation.
func buildOptions(fallback int, opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.Budget < 0 {
		o.Budget = fallback
	}
	return o, nil
}

// WithBudget sets the time budget in minutes.
//
//	m >= 0: use m as the budget (0 is legal and yields 0 pressure)
//	m < 0:  invalid option → ErrOptionViolation
func WithBudget(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: budget cannot be negative (%d)", ErrOptionViolation, m)
			return
		}
		o.Budget = m
	}
}

// WithoutShortcut disables the ≤2-minutes terminal pruning. Results
// never change; only more states get explored.
func WithoutShortcut() Option {
	return func(o *Options) {
		o.Shortcut = false
	}
}

// WithParallelism runs the paired enumeration on n workers, each with
// its own cache, merged by max. Applies to MaxReleaseWithHelp only.
//
//	n >= 1: use n workers (1 = serial)
//	n < 1:  invalid option → ErrOptionViolation
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}
