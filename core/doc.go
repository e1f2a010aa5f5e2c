// Package core defines the central Valve, Record, and Network types,
// and provides parsing and construction of immutable valve networks.
//
// A valve network G = (V,E) is a set of named valves joined by tunnels:
//
//   - Every valve has a non-negative flow rate; opening a valve with
//     r minutes remaining releases rate·r pressure in total.
//   - Exactly one valve, the one named SourceName ("AA"), is the
//     source: the fixed starting point, flow rate forced to zero,
//     never opened.
//   - Every valve with a positive flow rate is assigned a distinct
//     power-of-two identity bit, in first-encounter order starting
//     at 1. The source and zero-flow valves carry bit 0. Bits make
//     set algebra over opened valves an O(1) integer operation.
//
// Construction is two-pass: all Valve values are created first, then
// tunnel names are resolved against the by-name catalog, since a
// record may reference a valve whose own record appears later. The
// Network is immutable once built; there is no partial-success mode:
// either every record resolves or construction fails outright.
//
// Errors (sentinel):
//
//	– ErrFormat         malformed record text.
//	– ErrNoRecords      no records supplied.
//	– ErrDuplicateValve two records share one name.
//	– ErrNegativeRate   a record carries a negative flow rate.
//	– ErrTooManyValves  more positive-flow valves than identity bits.
//	– ErrNoSource       no record named SourceName.
//	– ErrUnknownValve   a tunnel references an undefined valve name.
//
// Example usage:
//
//	net, err := core.Parse(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(net.Len(), "valves, source:", net.Source().Name)
package core
