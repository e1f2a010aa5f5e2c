// Package pressure computes the maximum total pressure releasable
// within a time budget, by one agent alone or by two agents splitting
// the valves between them.
//
// Overview:
//
//   - The search walks the compressed distance.Table: each step travels
//     to a closed positive-flow valve (costing its hop-distance) and
//     opens it (costing one more minute), earning rate · minutes-left.
//   - Results are memoized per State (valve, minutes left, opened
//     mask) in a cache keyed by the State value. The same triple
//     recurs across many recursion paths, and the exponential state
//     space collapses enormously under the cache.
//   - The paired query enumerates every split of the valve set into
//     two disjoint halves (one per agent) via the opened-mask
//     complement trick, and combines two single-agent searches per
//     split. Only masks up to completed/2 are tried: the other half of
//     the enumeration merely swaps agent roles.
//
// Complexity:
//
//	– Solo:   O(S · K)      where S = reachable (valve, minutes, mask)
//	   states and K = destinations per valve; S is bounded by
//	   budget · 2^N · K but in practice far smaller.
//	– Paired: O(2^(N-1)) top-level splits, each two cache-assisted
//	   solo queries sharing one cache (serial) or one cache per
//	   worker (parallel).
//
// Options:
//
//	– WithBudget(m):      time budget in minutes; defaults to
//	   SoloBudget (30) for MaxRelease and PairBudget (26) for
//	   MaxReleaseWithHelp.
//	– WithoutShortcut():  disables the two-minutes-or-less terminal
//	   pruning. Pure performance trade; never changes a result.
//	– WithParallelism(n): paired query only; splits the mask
//	   enumeration across n goroutines with per-worker caches and a
//	   final max-merge.
//
// Errors (sentinel):
//
//	– ErrNilTable        if the destination table is nil.
//	– ErrOptionViolation if an option carries an invalid value.
//
// The search itself is total: given a well-formed table it always
// terminates (minutes strictly decrease) and always returns a value,
// possibly zero when nothing can be reached and opened in time.
//
// Example usage:
//
//	tbl, _ := distance.Destinations(net)
//	solo, _ := pressure.MaxRelease(net.Source(), tbl)
//	both, _ := pressure.MaxReleaseWithHelp(net.Source(), tbl)
//	fmt.Println(solo, both)
package pressure
