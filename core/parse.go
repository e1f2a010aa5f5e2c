package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// recordRx matches one canonical record line, singular or plural:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
var recordRx = regexp.MustCompile(`^Valve ([A-Z]+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// ParseRecord parses one record line into a Record.
// Returns ErrFormat (wrapping the offending line) on a mismatch.
func ParseRecord(line string) (Record, error) {
	m := recordRx.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("%w: %q", ErrFormat, line)
	}
	// The rate group is all digits, so Atoi cannot fail here.
	rate, _ := strconv.Atoi(m[2])

	tunnels := strings.Split(m[3], ",")
	for i, t := range tunnels {
		tunnels[i] = strings.TrimSpace(t)
	}

	return Record{Name: m[1], Rate: rate, Tunnels: tunnels}, nil
}

// Parse parses a full multi-line input (blank lines ignored) and
// builds the Network. It is the one-call convenience over ParseRecord
// and NewNetwork; all their errors pass through unchanged.
// Complexity: O(V + E)
func Parse(input string) (*Network, error) {
	var records []Record
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return NewNetwork(records)
}
