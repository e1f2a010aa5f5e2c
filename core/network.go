package core

import "fmt"

// Network is the immutable valve graph built from a record sequence.
//
// Adjacency is keyed by valve name and preserves record order, so all
// traversals over one Network are deterministic. A Network is safe for
// concurrent readers; it has no mutating methods after construction.
type Network struct {
	valves map[string]Valve    // valve name → Valve
	adj    map[string][]string // valve name → tunnel targets, record order
	order  []string            // valve names in first-encounter order
	source string              // name of the source valve
}

// NewNetwork builds a Network from records in two passes: first every
// Valve value is created (assigning identity bits in encounter order),
// then tunnel names are resolved against the catalog.
//
// Returns ErrNoRecords, ErrDuplicateValve, ErrNegativeRate,
// ErrTooManyValves, ErrNoSource, or ErrUnknownValve (wrapped with the
// offending name) on invalid input.
// Complexity: O(V + E)
func NewNetwork(records []Record) (*Network, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	n := &Network{
		valves: make(map[string]Valve, len(records)),
		adj:    make(map[string][]string, len(records)),
		order:  make([]string, 0, len(records)),
	}

	// Pass 1: create all valves and assign bits.
	var nextBit uint
	for _, rec := range records {
		if rec.Rate < 0 {
			return nil, fmt.Errorf("%w: valve %q has rate %d", ErrNegativeRate, rec.Name, rec.Rate)
		}
		if _, dup := n.valves[rec.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValve, rec.Name)
		}
		v := Valve{Name: rec.Name, Rate: rec.Rate}
		if rec.Name == SourceName {
			// The source is never opened; its rate is forced to zero.
			v.Source = true
			v.Rate = 0
			n.source = rec.Name
		} else if v.Rate > 0 {
			if nextBit >= maxBits {
				return nil, fmt.Errorf("%w: %q would need bit %d", ErrTooManyValves, rec.Name, nextBit)
			}
			v.Bit = 1 << nextBit
			nextBit++
		}
		n.valves[rec.Name] = v
		n.order = append(n.order, rec.Name)
	}
	if n.source == "" {
		return nil, fmt.Errorf("%w: no record named %q", ErrNoSource, SourceName)
	}

	// Pass 2: resolve tunnel names. A record may reference a valve
	// declared later, so this cannot be folded into pass 1.
	for _, rec := range records {
		for _, name := range rec.Tunnels {
			if _, ok := n.valves[name]; !ok {
				return nil, fmt.Errorf("%w: %q referenced by %q", ErrUnknownValve, name, rec.Name)
			}
			n.adj[rec.Name] = append(n.adj[rec.Name], name)
		}
	}

	return n, nil
}

// Source returns the starting valve.
func (n *Network) Source() Valve {
	return n.valves[n.source]
}

// Valve looks up a valve by name.
func (n *Network) Valve(name string) (Valve, bool) {
	v, ok := n.valves[name]
	return v, ok
}

// Valves returns all valves in first-encounter order.
// Complexity: O(V)
func (n *Network) Valves() []Valve {
	out := make([]Valve, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.valves[name])
	}
	return out
}

// Neighbors returns the valves reachable from v through one tunnel,
// in record order. Unknown valves have no neighbors.
// Complexity: O(deg(v))
func (n *Network) Neighbors(v Valve) []Valve {
	names := n.adj[v.Name]
	out := make([]Valve, 0, len(names))
	for _, name := range names {
		out = append(out, n.valves[name])
	}
	return out
}

// Len reports the number of valves in the network.
func (n *Network) Len() int {
	return len(n.order)
}
