package bytecode

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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/wcgcyx/l2core/forks"
)

// State is the analysis state of a code body.
type State uint8

const (
	// StateRaw holds untrusted bytes as received.
	StateRaw State = iota

	// StateChecked guarantees terminator padding past the logical length.
	StateChecked

	// StateAnalyzed additionally carries the jump table.
	StateAnalyzed
)

// checkedPadding is the number of zero bytes appended past the logical
// length in the checked state. It covers the widest push immediate plus the
// position increment, so the execution loop may over-read a truncated
// trailing push without going out of bounds.
const checkedPadding = 33

// Bytecode is one contract code body together with its two content-derived
// identity hashes and its analysis state. It is constructed once per
// distinct code body, analyzed lazily before first execution and then
// reused across calls.
type Bytecode struct {
	code       []byte
	length     int
	hash       common.Hash
	keccakHash common.Hash
	state      State
	jumptable  *JumpTable
}

// New creates the default bytecode: a single STOP, already analyzed, with
// the empty-code hash constants.
func New() *Bytecode {
	return &Bytecode{
		code:       []byte{forks.STOP},
		length:     0,
		hash:       ProverEmptyCodeHash,
		keccakHash: KeccakEmptyCodeHash,
		state:      StateAnalyzed,
		jumptable:  &JumpTable{},
	}
}

// NewRaw creates a raw bytecode from untrusted bytes, computing both
// identity hashes.
func NewRaw(code []byte) *Bytecode {
	hash := ProverEmptyCodeHash
	keccakHash := KeccakEmptyCodeHash
	if len(code) > 0 {
		hash = HashCodeProver(code)
		keccakHash = HashCodeKeccak(code)
	}
	return &Bytecode{
		code:       code,
		length:     len(code),
		hash:       hash,
		keccakHash: keccakHash,
		state:      StateRaw,
	}
}

// NewRawWithHashes creates a raw bytecode with pre-computed hashes.
//
// The hashes are trusted and not recomputed: they must be the prover and
// keccak hashes of the given bytes. Use NewRaw for untrusted input.
func NewRawWithHashes(code []byte, hash common.Hash, keccakHash common.Hash) *Bytecode {
	return &Bytecode{
		code:       code,
		length:     len(code),
		hash:       hash,
		keccakHash: keccakHash,
		state:      StateRaw,
	}
}

// NewChecked creates a checked bytecode from pre-validated data.
//
// The buffer is trusted and not re-validated: it must carry the checked
// terminator padding past the given logical length, and the hashes must
// match the logical code bytes. This exists to copy already-checked data
// cheaply; route untrusted code through NewRaw.
func NewChecked(code []byte, length int, hash common.Hash, keccakHash common.Hash) *Bytecode {
	return &Bytecode{
		code:       code,
		length:     length,
		hash:       hash,
		keccakHash: keccakHash,
		state:      StateChecked,
	}
}

// NewAnalyzed creates an analyzed bytecode from pre-validated data.
//
// Same preconditions as NewChecked, and the jump table must be the analysis
// of the code under the opcode table it will execute with.
func NewAnalyzed(code []byte, length int, jumptable *JumpTable, hash common.Hash, keccakHash common.Hash) *Bytecode {
	return &Bytecode{
		code:       code,
		length:     length,
		hash:       hash,
		keccakHash: keccakHash,
		state:      StateAnalyzed,
		jumptable:  jumptable,
	}
}

// Code returns the underlying buffer, including any terminator padding.
func (b *Bytecode) Code() []byte {
	return b.code
}

// OriginalCode returns the logical code bytes without padding.
func (b *Bytecode) OriginalCode() []byte {
	return b.code[:b.length]
}

// Hash returns the prover code hash.
func (b *Bytecode) Hash() common.Hash {
	return b.hash
}

// KeccakHash returns the keccak code hash.
func (b *Bytecode) KeccakHash() common.Hash {
	return b.keccakHash
}

// State returns the analysis state.
func (b *Bytecode) State() State {
	return b.state
}

// Len returns the logical code length.
func (b *Bytecode) Len() int {
	return b.length
}

// IsEmpty returns if the logical code is empty.
func (b *Bytecode) IsEmpty() bool {
	return b.length == 0
}

// ToChecked pads the buffer with the terminating instruction past the
// logical length. No-op unless raw.
func (b *Bytecode) ToChecked() *Bytecode {
	if b.state != StateRaw {
		return b
	}
	padded := make([]byte, b.length+checkedPadding)
	copy(padded, b.code)
	b.code = padded
	b.state = StateChecked
	return b
}

// ToAnalyzed checks the code if needed and computes its jump table under
// the given opcode table. No-op if already analyzed.
func (b *Bytecode) ToAnalyzed(table *forks.OpcodeTable) *Bytecode {
	if b.state == StateAnalyzed {
		return b
	}
	b.ToChecked()
	b.jumptable = analyze(b.code, b.length, table)
	b.state = StateAnalyzed
	return b
}

// JumpTable returns the analysis result, or nil if not yet analyzed.
func (b *Bytecode) JumpTable() *JumpTable {
	return b.jumptable
}

// Lock forces the bytecode through analysis and returns the immutable
// locked view consumed by the execution loop.
func (b *Bytecode) Lock(table *forks.OpcodeTable) *Locked {
	b.ToAnalyzed(table)
	return &Locked{
		code:       b.code,
		length:     b.length,
		hash:       b.hash,
		keccakHash: b.keccakHash,
		jumptable:  b.jumptable,
	}
}

// Encode encodes the logical code bytes as hex text for snapshot and debug
// serialization.
func (b *Bytecode) Encode() string {
	return hexutil.Encode(b.OriginalCode())
}

// Decode decodes hex text produced by Encode into a raw bytecode.
func Decode(text string) (*Bytecode, error) {
	code, err := hexutil.Decode(text)
	if err != nil {
		return nil, err
	}
	return NewRaw(code), nil
}
