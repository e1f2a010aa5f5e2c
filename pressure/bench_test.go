package pressure_test

import (
	"testing"

	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/pressure"
)

// benchTable builds the sample pipeline once per benchmark.
func benchTable(b *testing.B) (core.Valve, distance.Table) {
	b.Helper()
	net, err := core.Parse(sampleInput)
	if err != nil {
		b.Fatal(err)
	}
	tbl, err := distance.Destinations(net)
	if err != nil {
		b.Fatal(err)
	}
	return net.Source(), tbl
}

// BenchmarkMaxRelease_Sample measures one cold solo query (fresh cache
// every iteration).
func BenchmarkMaxRelease_Sample(b *testing.B) {
	src, tbl := benchTable(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pressure.MaxRelease(src, tbl)
	}
}

// BenchmarkMaxReleaseWithHelp_Sample measures the serial paired
// enumeration.
func BenchmarkMaxReleaseWithHelp_Sample(b *testing.B) {
	src, tbl := benchTable(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pressure.MaxReleaseWithHelp(src, tbl)
	}
}

// BenchmarkMaxReleaseWithHelp_Parallel measures the 4-worker variant;
// worth it on full-size inputs, overhead-bound on the sample.
func BenchmarkMaxReleaseWithHelp_Parallel(b *testing.B) {
	src, tbl := benchTable(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pressure.MaxReleaseWithHelp(src, tbl, pressure.WithParallelism(4))
	}
}

// BenchmarkMaxRelease_NoShortcut quantifies what the ≤2-minutes
// pruning saves.
func BenchmarkMaxRelease_NoShortcut(b *testing.B) {
	src, tbl := benchTable(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pressure.MaxRelease(src, tbl, pressure.WithoutShortcut())
	}
}
