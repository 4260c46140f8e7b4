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

// Opcode values of the execution engine's instruction set.
const (
	STOP       = 0x00
	ADD        = 0x01
	MUL        = 0x02
	SUB        = 0x03
	DIV        = 0x04
	SDIV       = 0x05
	MOD        = 0x06
	SMOD       = 0x07
	ADDMOD     = 0x08
	MULMOD     = 0x09
	EXP        = 0x0a
	SIGNEXTEND = 0x0b

	LT     = 0x10
	GT     = 0x11
	SLT    = 0x12
	SGT    = 0x13
	EQ     = 0x14
	ISZERO = 0x15
	AND    = 0x16
	OR     = 0x17
	XOR    = 0x18
	NOT    = 0x19
	BYTE   = 0x1a
	SHL    = 0x1b
	SHR    = 0x1c
	SAR    = 0x1d

	KECCAK256 = 0x20

	ADDRESS        = 0x30
	BALANCE        = 0x31
	ORIGIN         = 0x32
	CALLER         = 0x33
	CALLVALUE      = 0x34
	CALLDATALOAD   = 0x35
	CALLDATASIZE   = 0x36
	CALLDATACOPY   = 0x37
	CODESIZE       = 0x38
	CODECOPY       = 0x39
	GASPRICE       = 0x3a
	EXTCODESIZE    = 0x3b
	EXTCODECOPY    = 0x3c
	RETURNDATASIZE = 0x3d
	RETURNDATACOPY = 0x3e
	EXTCODEHASH    = 0x3f

	BLOCKHASH   = 0x40
	COINBASE    = 0x41
	TIMESTAMP   = 0x42
	NUMBER      = 0x43
	PREVRANDAO  = 0x44
	GASLIMIT    = 0x45
	CHAINID     = 0x46
	SELFBALANCE = 0x47
	BASEFEE     = 0x48
	BLOBHASH    = 0x49
	BLOBBASEFEE = 0x4a

	POP      = 0x50
	MLOAD    = 0x51
	MSTORE   = 0x52
	MSTORE8  = 0x53
	SLOAD    = 0x54
	SSTORE   = 0x55
	JUMP     = 0x56
	JUMPI    = 0x57
	PC       = 0x58
	MSIZE    = 0x59
	GAS      = 0x5a
	JUMPDEST = 0x5b
	TLOAD    = 0x5c
	TSTORE   = 0x5d
	MCOPY    = 0x5e
	PUSH0    = 0x5f

	PUSH1  = 0x60
	PUSH32 = 0x7f

	DUP1  = 0x80
	DUP16 = 0x8f

	SWAP1  = 0x90
	SWAP16 = 0x9f

	LOG0 = 0xa0
	LOG4 = 0xa4

	CREATE       = 0xf0
	CALL         = 0xf1
	CALLCODE     = 0xf2
	RETURN       = 0xf3
	DELEGATECALL = 0xf4
	CREATE2      = 0xf5
	STATICCALL   = 0xfa
	REVERT       = 0xfd
	INVALID      = 0xfe
	SELFDESTRUCT = 0xff
)

// Static gas tiers.
const (
	gasQuickStep   = 2
	gasFastestStep = 3
	gasFastStep    = 5
	gasMidStep     = 8
	gasSlowStep    = 10
	gasExtStep     = 20

	gasKeccak256    = 30
	gasWarmAccess   = 100
	gasJumpdest     = 1
	gasLog          = 375
	gasLogTopic     = 375
	gasCreate       = 32000
	gasSelfdestruct = 5000
	gasBlockhash    = 20
)

// OpcodeInfo carries the static, per-opcode properties that the bytecode
// analysis consumes: the constant gas portion charged for the opcode, whether
// it is a push-class instruction carrying an immediate operand, whether it
// terminates a gas block, and whether it is a valid jump destination marker.
type OpcodeInfo struct {
	gas           uint32
	isPush        bool
	isGasBlockEnd bool
	isJumpdest    bool
}

// Gas returns the constant gas portion of the opcode.
func (i OpcodeInfo) Gas() uint32 {
	return i.gas
}

// IsPush returns if this opcode carries a push immediate operand.
func (i OpcodeInfo) IsPush() bool {
	return i.isPush
}

// IsGasBlockEnd returns if this opcode terminates a straight-line gas block.
func (i OpcodeInfo) IsGasBlockEnd() bool {
	return i.isGasBlockEnd
}

// IsJumpdest returns if this opcode marks a valid jump destination.
func (i OpcodeInfo) IsJumpdest() bool {
	return i.isJumpdest
}

// OpcodeTable maps every possible opcode value to its static properties.
// Unassigned opcode values carry zero gas and no flags, so analysis stays a
// total function over arbitrary byte sequences.
type OpcodeTable [256]OpcodeInfo

// Info returns the properties of the given opcode value.
func (t *OpcodeTable) Info(op byte) OpcodeInfo {
	return t[op]
}

func constGas(gas uint32) OpcodeInfo {
	return OpcodeInfo{gas: gas}
}

func blockEnd(gas uint32) OpcodeInfo {
	return OpcodeInfo{gas: gas, isGasBlockEnd: true}
}

func push(gas uint32) OpcodeInfo {
	return OpcodeInfo{gas: gas, isPush: true}
}

// newBaseOpcodeTable builds the opcode table of the launch revision.
func newBaseOpcodeTable() *OpcodeTable {
	t := &OpcodeTable{}

	t[STOP] = blockEnd(0)
	t[ADD] = constGas(gasFastestStep)
	t[MUL] = constGas(gasFastStep)
	t[SUB] = constGas(gasFastestStep)
	t[DIV] = constGas(gasFastStep)
	t[SDIV] = constGas(gasFastStep)
	t[MOD] = constGas(gasFastStep)
	t[SMOD] = constGas(gasFastStep)
	t[ADDMOD] = constGas(gasMidStep)
	t[MULMOD] = constGas(gasMidStep)
	t[EXP] = constGas(gasSlowStep)
	t[SIGNEXTEND] = constGas(gasFastStep)

	for op := LT; op <= SAR; op++ {
		t[op] = constGas(gasFastestStep)
	}

	t[KECCAK256] = constGas(gasKeccak256)

	t[ADDRESS] = constGas(gasQuickStep)
	t[BALANCE] = constGas(gasWarmAccess)
	t[ORIGIN] = constGas(gasQuickStep)
	t[CALLER] = constGas(gasQuickStep)
	t[CALLVALUE] = constGas(gasQuickStep)
	t[CALLDATALOAD] = constGas(gasFastestStep)
	t[CALLDATASIZE] = constGas(gasQuickStep)
	t[CALLDATACOPY] = constGas(gasFastestStep)
	t[CODESIZE] = constGas(gasQuickStep)
	t[CODECOPY] = constGas(gasFastestStep)
	t[GASPRICE] = constGas(gasQuickStep)
	t[EXTCODESIZE] = constGas(gasWarmAccess)
	t[EXTCODECOPY] = constGas(gasWarmAccess)
	t[RETURNDATASIZE] = constGas(gasQuickStep)
	t[RETURNDATACOPY] = constGas(gasFastestStep)
	t[EXTCODEHASH] = constGas(gasWarmAccess)

	t[BLOCKHASH] = constGas(gasBlockhash)
	t[COINBASE] = constGas(gasQuickStep)
	t[TIMESTAMP] = constGas(gasQuickStep)
	t[NUMBER] = constGas(gasQuickStep)
	t[PREVRANDAO] = constGas(gasQuickStep)
	t[GASLIMIT] = constGas(gasQuickStep)
	t[CHAINID] = constGas(gasQuickStep)
	t[SELFBALANCE] = constGas(gasFastStep)
	t[BASEFEE] = constGas(gasQuickStep)

	t[POP] = constGas(gasQuickStep)
	t[MLOAD] = constGas(gasFastestStep)
	t[MSTORE] = constGas(gasFastestStep)
	t[MSTORE8] = constGas(gasFastestStep)
	t[SLOAD] = constGas(gasWarmAccess)
	t[SSTORE] = constGas(0)
	t[JUMP] = blockEnd(gasMidStep)
	t[JUMPI] = blockEnd(gasSlowStep)
	t[PC] = constGas(gasQuickStep)
	t[MSIZE] = constGas(gasQuickStep)
	t[GAS] = constGas(gasQuickStep)
	t[JUMPDEST] = OpcodeInfo{gas: gasJumpdest, isGasBlockEnd: true, isJumpdest: true}
	t[PUSH0] = constGas(gasQuickStep)

	for op := PUSH1; op <= PUSH32; op++ {
		t[op] = push(gasFastestStep)
	}
	for op := DUP1; op <= DUP16; op++ {
		t[op] = constGas(gasFastestStep)
	}
	for op := SWAP1; op <= SWAP16; op++ {
		t[op] = constGas(gasFastestStep)
	}
	for op := LOG0; op <= LOG4; op++ {
		t[op] = constGas(uint32(gasLog + gasLogTopic*(op-LOG0)))
	}

	t[CREATE] = constGas(gasCreate)
	t[CALL] = constGas(gasWarmAccess)
	t[CALLCODE] = constGas(gasWarmAccess)
	t[RETURN] = blockEnd(0)
	t[DELEGATECALL] = constGas(gasWarmAccess)
	t[CREATE2] = constGas(gasCreate)
	t[STATICCALL] = constGas(gasWarmAccess)
	t[REVERT] = blockEnd(0)
	t[INVALID] = blockEnd(0)
	t[SELFDESTRUCT] = blockEnd(gasSelfdestruct)

	return t
}

// newCurieOpcodeTable extends the base table with the transient storage and
// memory copy opcodes enabled at Curie.
func newCurieOpcodeTable() *OpcodeTable {
	t := *newBaseOpcodeTable()
	t[TLOAD] = constGas(gasWarmAccess)
	t[TSTORE] = constGas(gasWarmAccess)
	t[MCOPY] = constGas(gasFastestStep)
	t[BLOBHASH] = constGas(gasFastestStep)
	t[BLOBBASEFEE] = constGas(gasQuickStep)
	return &t
}
