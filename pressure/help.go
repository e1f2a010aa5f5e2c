package pressure

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/distance"
)

// MaxReleaseWithHelp computes the maximum combined pressure two agents
// can release, both starting at src with the same budget (PairBudget
// unless overridden) and opening disjoint valve sets.
//
// Every split of the flowing valves into two halves is tried: for a
// candidate mask path, one agent runs with path pre-marked opened (so
// it only ever opens the complement) and the other with completed^path.
// Masks beyond completed/2 are skipped: they repeat earlier splits
// with the agent roles swapped.
//
// Returns ErrNilTable for a nil table or ErrOptionViolation for an
// invalid option.
func MaxReleaseWithHelp(src core.Valve, tbl distance.Table, opts ...Option) (int, error) {
	o, err := buildOptions(PairBudget, opts)
	if err != nil {
		return 0, err
	}
	if tbl == nil {
		return 0, ErrNilTable
	}

	completed := tbl.Completed()
	if o.Parallelism > 1 {
		return helpParallel(src, tbl, o, completed), nil
	}

	// Serial path: one cache serves both halves of every split;
	// sub-results are agent-agnostic.
	s := newSearcher(tbl, o.Shortcut)
	var best int
	for path := uint64(0); path <= completed/2; path++ {
		self := s.max(State{At: src, Minutes: o.Budget, Opened: path})
		other := s.max(State{At: src, Minutes: o.Budget, Opened: completed ^ path})
		if sum := self + other; sum > best {
			best = sum
		}
	}

	return best, nil
}

// helpParallel fans the split enumeration out over o.Parallelism
// workers. Each worker owns its cache (the serial cache sharing would
// otherwise need locking); per-worker maxima merge at the end.
func helpParallel(src core.Valve, tbl distance.Table, o Options, completed uint64) int {
	span := completed/2 + 1 // number of candidate masks
	workers := o.Parallelism
	if uint64(workers) > span {
		workers = int(span)
	}

	results := make([]int, workers)
	chunk, extra := span/uint64(workers), span%uint64(workers)

	var g errgroup.Group
	start := uint64(0)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; go directive predates Go 1.22 loop semantics
		size := chunk
		if uint64(w) < extra {
			size++
		}
		lo, hi := start, start+size
		start = hi
		g.Go(func() error {
			s := newSearcher(tbl, o.Shortcut)
			var best int
			for path := lo; path < hi; path++ {
				self := s.max(State{At: src, Minutes: o.Budget, Opened: path})
				other := s.max(State{At: src, Minutes: o.Budget, Opened: completed ^ path})
				if sum := self + other; sum > best {
					best = sum
				}
			}
			results[w] = best

			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	best := results[0]
	for _, r := range results[1:] {
		if r > best {
			best = r
		}
	}

	return best
}
