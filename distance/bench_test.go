package distance_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/distance"
)

// chainNetwork builds a linear chain of n valves where every k-th
// valve flows, the rest are transit.
func chainNetwork(b *testing.B, n, k int) *core.Network {
	b.Helper()
	records := make([]core.Record, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("V%03d", i)
		if i == 0 {
			name = core.SourceName
		}
		rec := core.Record{Name: name}
		if i > 0 && i%k == 0 {
			rec.Rate = i
		}
		if i > 0 {
			prev := fmt.Sprintf("V%03d", i-1)
			if i-1 == 0 {
				prev = core.SourceName
			}
			rec.Tunnels = append(rec.Tunnels, prev)
		}
		if i+1 < n {
			rec.Tunnels = append(rec.Tunnels, fmt.Sprintf("V%03d", i+1))
		}
		records = append(records, rec)
	}
	net, err := core.NewNetwork(records)
	if err != nil {
		b.Fatal(err)
	}
	return net
}

// BenchmarkDestinations_Chain measures table construction on a chain
// of 200 valves with one flowing valve in ten.
func BenchmarkDestinations_Chain(b *testing.B) {
	net := chainNetwork(b, 200, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Destinations(net)
	}
}
