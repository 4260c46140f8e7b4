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

// L1FeePayload selects which transaction bytes the L1 data fee is charged
// over at a given revision.
type L1FeePayload uint8

const (
	// PayloadCallData charges over the raw call data only.
	PayloadCallData L1FeePayload = iota

	// PayloadFullTx charges over the full serialized transaction bytes.
	PayloadFullTx
)

// Config is the per-fork behaviour set assembled once per engine instance.
// Compile-time fork dispatch is deliberately avoided: a host selects one
// Config by fork identifier and threads it through analysis and settlement.
type Config struct {
	// The fork this config describes
	Fork Fork

	// The opcode cost table consumed by bytecode analysis
	Opcodes *OpcodeTable

	// Divisor applied to gas used to cap the refund
	RefundQuotient uint64

	// Which transaction bytes the L1 data fee covers
	L1FeePayload L1FeePayload

	// Whether a separate blob data fee applies
	EnableBlobFee bool

	// Whether the sha256 precompile is live (disabled stub before Bernoulli)
	EnableSha256 bool
}

var (
	baseOpcodes  = newBaseOpcodeTable()
	curieOpcodes = newCurieOpcodeTable()

	configs = map[Fork]*Config{
		Archimedes: {
			Fork:           Archimedes,
			Opcodes:        baseOpcodes,
			RefundQuotient: 2,
			L1FeePayload:   PayloadCallData,
		},
		Bernoulli: {
			Fork:           Bernoulli,
			Opcodes:        baseOpcodes,
			RefundQuotient: 5,
			L1FeePayload:   PayloadCallData,
			EnableSha256:   true,
		},
		Curie: {
			Fork:           Curie,
			Opcodes:        curieOpcodes,
			RefundQuotient: 5,
			L1FeePayload:   PayloadFullTx,
			EnableSha256:   true,
		},
		Darwin: {
			Fork:           Darwin,
			Opcodes:        curieOpcodes,
			RefundQuotient: 5,
			L1FeePayload:   PayloadFullTx,
			EnableBlobFee:  true,
			EnableSha256:   true,
		},
	}
)

// GetConfig gets the behaviour set of the given fork.
func GetConfig(fork Fork) *Config {
	cfg, ok := configs[fork]
	if !ok {
		return configs[Latest]
	}
	return cfg
}
