package forks

/*
 * Licensed under LGPL-3.0.
 *
 * You can get a copy of the LGPL-3.0 License at
 *
 * https://www.gnu.org/licenses/lgpl-3.0.en.html
 *
 * @wcgcyx - https://github.com/wcgcyx
 */

import (
	"fmt"
	"strings"
)

// Fork identifies a protocol revision of the chain. It selects the opcode
// cost table, the gas refund quotient, the L1 fee payload variant and the
// settlement hook set that apply to a transaction.
type Fork uint8

const (
	// Archimedes is the launch revision.
	Archimedes Fork = iota

	// Bernoulli enables the sha256 precompile and lowers blob-related costs.
	Bernoulli

	// Curie enables the Cancun opcode set and switches the L1 data fee to
	// charge over the full serialized transaction.
	Curie

	// Darwin enables blob data fees on top of Curie behaviour.
	Darwin
)

// Latest is the most recent fork known to this build.
const Latest = Darwin

func (f Fork) String() string {
	switch f {
	case Archimedes:
		return "archimedes"
	case Bernoulli:
		return "bernoulli"
	case Curie:
		return "curie"
	case Darwin:
		return "darwin"
	}
	return fmt.Sprintf("unknown(%d)", uint8(f))
}

// ParseFork parses a fork from its lower-case name.
func ParseFork(name string) (Fork, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "archimedes":
		return Archimedes, nil
	case "bernoulli":
		return Bernoulli, nil
	case "curie":
		return Curie, nil
	case "darwin":
		return Darwin, nil
	}
	return 0, fmt.Errorf("unknown fork name %v", name)
}

// IsEnabled returns if the given fork is active at revision f.
func (f Fork) IsEnabled(fork Fork) bool {
	return f >= fork
}
