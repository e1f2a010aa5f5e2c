package core_test

import (
	"fmt"

	"github.com/katalvlaran/volcanium/core"
)

// ExampleParse builds a three-valve network from record text and
// shows the identity bits assigned to the flowing valves.
func ExampleParse() {
	input := `
Valve AA has flow rate=0; tunnels lead to valves BB, CC
Valve BB has flow rate=13; tunnel leads to valve AA
Valve CC has flow rate=2; tunnel leads to valve AA
`
	net, err := core.Parse(input)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range net.Valves() {
		fmt.Printf("%s rate=%-2d bit=%d\n", v.Name, v.Rate, v.Bit)
	}
	// Output:
	// AA rate=0  bit=0
	// BB rate=13 bit=1
	// CC rate=2  bit=2
}
