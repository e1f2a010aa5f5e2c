package distance_test

import (
	"fmt"

	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/distance"
)

// ExampleDestinations compresses a small network and prints the hops
// from the source to each flowing valve. The zero-flow valve FF is
// used as transit but never shows up.
func ExampleDestinations() {
	net, err := core.Parse(`
Valve AA has flow rate=0; tunnels lead to valves BB, FF
Valve BB has flow rate=13; tunnels lead to valves AA, CC
Valve CC has flow rate=2; tunnels lead to valves BB, FF
Valve FF has flow rate=0; tunnels lead to valves AA, CC
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tbl, err := distance.Destinations(net)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range tbl[net.Source()] {
		fmt.Printf("AA → %s in %d hops\n", d.Valve.Name, d.Distance)
	}
	// Output:
	// AA → BB in 1 hops
	// AA → CC in 2 hops
}
