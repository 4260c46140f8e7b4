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
	"github.com/wcgcyx/l2core/forks"
)

// Each entry packs the jump-destination flag into the top bit and the gas
// total of the straight-line block starting at this position into the lower
// 31 bits. Positions that do not start a block carry a zero gas total.
type analysisEntry uint32

const (
	entryJumpdestFlag = analysisEntry(1) << 31
	entryGasMask      = entryJumpdestFlag - 1
)

func (e analysisEntry) isJumpdest() bool {
	return e&entryJumpdestFlag != 0
}

func (e analysisEntry) blockGas() uint32 {
	return uint32(e & entryGasMask)
}

// JumpTable is the per-position analysis result of one code body: jump
// destination validity and pre-charged gas per basic block. It is the
// execution loop's sole source of jump validity.
type JumpTable struct {
	firstGasBlock uint32
	entries       []analysisEntry
}

// Len returns the number of entries, which equals the logical code length.
func (t *JumpTable) Len() int {
	return len(t.entries)
}

// FirstBlockGas returns the gas total of the block starting at position 0,
// charged once before any instruction executes.
func (t *JumpTable) FirstBlockGas() uint32 {
	return t.firstGasBlock
}

// IsJumpdest returns if the given position is a valid jump destination.
func (t *JumpTable) IsJumpdest(pos uint64) bool {
	return pos < uint64(len(t.entries)) && t.entries[pos].isJumpdest()
}

// BlockGas returns the gas total of the block starting at the given position.
func (t *JumpTable) BlockGas(pos uint64) uint32 {
	if pos >= uint64(len(t.entries)) {
		return 0
	}
	return t.entries[pos].blockGas()
}

func (t *JumpTable) markJumpdest(pos int) {
	t.entries[pos] |= entryJumpdestFlag
}

func (t *JumpTable) setBlockGas(pos int, gas uint32) {
	t.entries[pos] = t.entries[pos]&entryJumpdestFlag | analysisEntry(gas)&entryGasMask
}

// analyze scans the checked code buffer and produces its jump table.
//
// The scan is a total function: any byte sequence yields a well-defined
// table given an opcode table. Push immediates are always skipped by their
// declared width, so an operand byte can never be mistaken for a jump
// destination. The buffer must carry the checked-state terminator padding
// so that a push skipping past the logical end stays in bounds; only the
// logical length is tabulated.
func analyze(code []byte, length int, table *forks.OpcodeTable) *JumpTable {
	jt := &JumpTable{
		entries: make([]analysisEntry, length),
	}

	index := 0
	blockStart := 0

	// First gas block: accumulate from position 0 until the first
	// block-ending instruction. This total is charged up front, before the
	// first instruction runs.
	for index < length {
		op := code[index]
		info := table.Info(op)
		jt.firstGasBlock += info.Gas()

		if info.IsPush() {
			index += int(op-forks.PUSH1) + 2
		} else {
			index++
		}

		if info.IsGasBlockEnd() {
			blockStart = index - 1
			if info.IsJumpdest() {
				jt.markJumpdest(blockStart)
			}
			break
		}
	}

	var gasInBlock uint32
	for index < length {
		op := code[index]
		info := table.Info(op)
		gasInBlock += info.Gas()

		if info.IsGasBlockEnd() {
			if info.IsJumpdest() {
				jt.markJumpdest(index)
			}
			jt.setBlockGas(blockStart, gasInBlock)
			blockStart = index
			gasInBlock = 0
			index++
		} else if info.IsPush() {
			index += int(op-forks.PUSH1) + 2
		} else {
			index++
		}
	}
	// Trailing partial block with no terminator.
	if gasInBlock != 0 {
		jt.setBlockGas(blockStart, gasInBlock)
	}
	return jt
}
