package distance

import (
	"errors"

	"github.com/katalvlaran/volcanium/core"
)

// ErrNilNetwork is returned if a nil network pointer is passed.
var ErrNilNetwork = errors.New("distance: network is nil")

// Destination pairs a positive-flow valve with the fewest tunnel hops
// needed to reach it from some origin valve. Distance is always ≥ 1:
// a valve is never its own destination.
type Destination struct {
	Valve    core.Valve
	Distance int
}

// Table maps every interesting valve (the source plus each valve with
// positive flow) to its reachable flowing destinations. This is the
// compressed graph the pressure search walks.
type Table map[core.Valve][]Destination

// Completed returns the bitmask with every destination valve's
// identity bit set: the "all valves opened" state for this table.
func (t Table) Completed() uint64 {
	var mask uint64
	for v := range t {
		mask |= v.Bit
	}
	return mask
}
