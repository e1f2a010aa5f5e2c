// Package distance compresses a full valve network into the sparse
// destination table the pressure search operates on.
//
// Overview:
//
//   - Zero-flow valves are never worth opening, so they matter only as
//     transit hops. Destinations runs one breadth-first search from the
//     source and from every positive-flow valve, over the complete
//     adjacency (zero-flow valves included as hops), and records the
//     unweighted shortest hop-distance to every other positive-flow
//     valve first reached.
//   - The result is a Table: interesting valve → reachable flowing
//     destinations. Zero-flow valves (other than the source) never
//     appear as keys and never appear as destinations; a valve never
//     lists itself.
//
// Determinism:
//
//   - BFS follows the network's record-order adjacency, so destination
//     slices come out in first-reached order and rebuilding the table
//     from the same network yields a structurally identical result.
//
// Complexity:
//
//	– Time:  O(K · (V + E))   where K = 1 + |positive-flow valves|
//	– Space: O(V + K²)
//
// Errors (sentinel):
//
//	– ErrNilNetwork if the provided network pointer is nil.
//
// An empty network is not an error: it yields an empty table.
package distance
