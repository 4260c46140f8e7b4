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
)

// Locked is the immutable analyzed view handed to the execution loop. It is
// never re-validated per instruction: the buffer keeps its terminator
// padding and the jump table covers the logical length.
type Locked struct {
	code       []byte
	length     int
	hash       common.Hash
	keccakHash common.Hash
	jumptable  *JumpTable
}

// Code returns the padded buffer for the hot execution path.
func (l *Locked) Code() []byte {
	return l.code
}

// OriginalCode returns the logical code bytes without padding.
func (l *Locked) OriginalCode() []byte {
	return l.code[:l.length]
}

// Len returns the logical code length.
func (l *Locked) Len() int {
	return l.length
}

// IsEmpty returns if the logical code is empty.
func (l *Locked) IsEmpty() bool {
	return l.length == 0
}

// Hash returns the prover code hash.
func (l *Locked) Hash() common.Hash {
	return l.hash
}

// KeccakHash returns the keccak code hash.
func (l *Locked) KeccakHash() common.Hash {
	return l.keccakHash
}

// JumpTable returns the jump and gas-block table.
func (l *Locked) JumpTable() *JumpTable {
	return l.jumptable
}

// Unlock returns an analyzed-equivalent owned bytecode. It never reverts to
// the raw or checked state.
func (l *Locked) Unlock() *Bytecode {
	return &Bytecode{
		code:       l.code,
		length:     l.length,
		hash:       l.hash,
		keccakHash: l.keccakHash,
		state:      StateAnalyzed,
		jumptable:  l.jumptable,
	}
}
