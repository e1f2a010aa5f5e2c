// Package distance implements the BFS graph reduction.
//
// Destinations explores the full adjacency from every interesting
// valve; the first time BFS reaches a valve fixes its hop-distance,
// which for an unweighted graph is always the shortest.
package distance

import "github.com/katalvlaran/volcanium/core"

// queueItem pairs a valve with its BFS depth from the origin.
type queueItem struct {
	valve core.Valve
	depth int
}

// Destinations compresses net into a Table: for the source and every
// positive-flow valve, the unweighted shortest hop-distance to every
// other reachable positive-flow valve.
//
// Returns ErrNilNetwork for a nil network. An empty network yields an
// empty (non-nil) table.
// Complexity: O(K · (V + E)), K = number of interesting valves.
func Destinations(net *core.Network) (Table, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	table := make(Table)
	for _, v := range net.Valves() {
		if !v.Source && v.Rate == 0 {
			continue // transit-only valve, never a key
		}
		table[v] = reach(net, v)
	}

	return table, nil
}

// reach runs one breadth-first search from origin over the full
// adjacency and records each other flowing valve at the depth it is
// first seen.
func reach(net *core.Network, origin core.Valve) []Destination {
	visited := map[core.Valve]bool{origin: true}
	queue := []queueItem{{valve: origin, depth: 0}}

	var dests []Destination
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, nbr := range net.Neighbors(item.valve) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			d := item.depth + 1
			if nbr.Rate > 0 {
				dests = append(dests, Destination{Valve: nbr, Distance: d})
			}
			queue = append(queue, queueItem{valve: nbr, depth: d})
		}
	}

	return dests
}
