// Package core declares Valve, Record, Network, sentinel errors,
// and the NewNetwork constructor.
package core

import "errors"

// SourceName is the conventional name of the starting valve.
// The valve with this name is flagged as the source and its flow
// rate is forced to zero regardless of what the record says.
const SourceName = "AA"

// maxBits bounds how many positive-flow valves one network may hold:
// each needs a distinct bit in a uint64 identity mask.
const maxBits = 64

// Sentinel errors for parsing and network construction.
var (
	// ErrFormat indicates a record line does not match the expected shape.
	ErrFormat = errors.New("core: malformed valve record")

	// ErrNoRecords indicates an empty record sequence was supplied.
	ErrNoRecords = errors.New("core: no records supplied")

	// ErrDuplicateValve indicates two records declare the same valve name.
	ErrDuplicateValve = errors.New("core: duplicate valve name")

	// ErrNegativeRate indicates a record carries a negative flow rate.
	ErrNegativeRate = errors.New("core: flow rate must be non-negative")

	// ErrTooManyValves indicates the positive-flow valve count exceeds
	// the width of the identity bitmask.
	ErrTooManyValves = errors.New("core: too many positive-flow valves for a 64-bit mask")

	// ErrNoSource indicates no record is named SourceName.
	ErrNoSource = errors.New("core: source valve not found")

	// ErrUnknownValve indicates a tunnel references an undefined valve name.
	ErrUnknownValve = errors.New("core: unknown valve name")
)

// Valve is one node of the network. It is a comparable value type:
// equal Valve values denote the same valve, and Valve may be used
// directly as a map key. Never compare valves by pointer.
type Valve struct {
	// Name uniquely identifies this valve within its Network.
	Name string

	// Source is true only for the single designated starting valve.
	Source bool

	// Rate is the pressure released per remaining minute once opened.
	// Zero means the valve is never worth opening.
	Rate int

	// Bit is the valve's identity bit: a distinct power of two for
	// every positive-flow valve, zero for the source and for any
	// zero-flow valve.
	Bit uint64
}

// Record is one parsed input record: a valve's name, its flow rate,
// and the names of the valves its tunnels lead to.
type Record struct {
	Name    string
	Rate    int
	Tunnels []string
}
