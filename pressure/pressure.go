package pressure

import (
	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/distance"
)

// searcher carries the state of one top-level query: the read-only
// destination table, the memo cache, and the pruning flag. A searcher
// is single-goroutine; parallel callers build one each.
type searcher struct {
	tbl      distance.Table
	cache    map[State]int
	shortcut bool
}

func newSearcher(tbl distance.Table, shortcut bool) *searcher {
	return &searcher{
		tbl:      tbl,
		cache:    make(map[State]int),
		shortcut: shortcut,
	}
}

// max returns the most pressure releasable from st. Every destination
// still closed and reachable in time is tried: travel there
// (d.Distance minutes), open it (1 minute), earn rate · minutes-left,
// then continue from the new state. Results are memoized per State.
//
// Termination: Minutes strictly decreases on every recursion, so the
// depth is bounded by the budget.
func (s *searcher) max(st State) int {
	if best, ok := s.cache[st]; ok {
		return best
	}

	var best int
	for _, d := range s.tbl[st.At] {
		left := st.Minutes - d.Distance - 1
		if left <= 0 {
			continue // cannot travel there and open it in time
		}
		if st.Opened&d.Valve.Bit != 0 {
			continue // already opened
		}
		gained := d.Valve.Rate * left

		// With ≤2 minutes left after opening, no follow-up opening
		// can release anything: travel plus the 1-minute opening cost
		// leaves 0 minutes of flow.
		if s.shortcut && left <= 2 {
			if gained > best {
				best = gained
			}
			continue
		}

		next := State{At: d.Valve, Minutes: left, Opened: st.Opened | d.Valve.Bit}
		if total := gained + s.max(next); total > best {
			best = total
		}
	}

	s.cache[st] = best

	return best
}

// MaxRelease computes the maximum total pressure a single agent
// starting at src can release within the budget (SoloBudget unless
// overridden with WithBudget).
//
// Returns ErrNilTable for a nil table or ErrOptionViolation for an
// invalid option. The result is 0 when no valve can be reached and
// opened in time.
func MaxRelease(src core.Valve, tbl distance.Table, opts ...Option) (int, error) {
	o, err := buildOptions(SoloBudget, opts)
	if err != nil {
		return 0, err
	}
	if tbl == nil {
		return 0, ErrNilTable
	}

	s := newSearcher(tbl, o.Shortcut)

	return s.max(State{At: src, Minutes: o.Budget}), nil
}
