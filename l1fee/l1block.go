package l1fee

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
	"github.com/holiman/uint256"
)

// Per-byte calldata cost of posting transaction data on L1.
const (
	zeroByteCost    = 4
	nonZeroByteCost = 16
)

// OracleAddress is the system contract holding the L1 fee parameters.
var OracleAddress = common.HexToAddress("0x5300000000000000000000000000000000000002")

// Reserved storage slots of the oracle contract.
var (
	l1BaseFeeSlot  = uint256.NewInt(1)
	l1OverheadSlot = uint256.NewInt(2)
	l1ScalarSlot   = uint256.NewInt(3)
)

var (
	// txL1CommitExtraCost is the fixed per-transaction commitment overhead.
	txL1CommitExtraCost = uint256.NewInt(64)

	// txL1FeePrecision is the fixed-point divisor of the scalar.
	txL1FeePrecision = uint256.NewInt(1_000_000_000)
)

// StorageReader reads one 256-bit storage word of an account from the
// backing store.
type StorageReader interface {
	// Storage gets the value of the given slot of the given address.
	Storage(addr common.Address, slot *uint256.Int) (*uint256.Int, error)
}

// L1BlockInfo holds the three oracle fee parameters, fetched once per
// transaction context and read-only thereafter.
type L1BlockInfo struct {
	// The base fee of the L1 origin block
	L1BaseFee *uint256.Int

	// The current L1 fee overhead
	L1FeeOverhead *uint256.Int

	// The current L1 fee scalar
	L1BaseFeeScalar *uint256.Int
}

// TryFetch reads the three fee parameters from the oracle contract's
// reserved slots. Any read failure is returned verbatim and the result is
// never partially populated.
func TryFetch(reader StorageReader) (*L1BlockInfo, error) {
	baseFee, err := reader.Storage(OracleAddress, l1BaseFeeSlot)
	if err != nil {
		return nil, err
	}
	overhead, err := reader.Storage(OracleAddress, l1OverheadSlot)
	if err != nil {
		return nil, err
	}
	scalar, err := reader.Storage(OracleAddress, l1ScalarSlot)
	if err != nil {
		return nil, err
	}
	return &L1BlockInfo{
		L1BaseFee:       baseFee,
		L1FeeOverhead:   overhead,
		L1BaseFeeScalar: scalar,
	}, nil
}

// DataGas sums the calldata cost of the payload: 4 gas per zero byte and
// 16 gas per non-zero byte.
func (info *L1BlockInfo) DataGas(payload []byte) *uint256.Int {
	gas := uint64(0)
	for _, b := range payload {
		if b == 0 {
			gas += zeroByteCost
		} else {
			gas += nonZeroByteCost
		}
	}
	return uint256.NewInt(gas)
}

// TxL1Cost computes the L1 data-posting cost of the payload:
//
//	(dataGas + overhead + commitExtra) * baseFee * scalar / precision
//
// with saturating addition and multiplication and truncating division.
// Which transaction bytes form the payload is a fork axis decided by the
// settlement handlers, not here.
func (info *L1BlockInfo) TxL1Cost(payload []byte) *uint256.Int {
	cost := info.DataGas(payload)
	cost = saturatingAdd(cost, info.L1FeeOverhead)
	cost = saturatingAdd(cost, txL1CommitExtraCost)
	cost = saturatingMul(cost, info.L1BaseFee)
	cost = saturatingMul(cost, info.L1BaseFeeScalar)
	return cost.Div(cost, txL1FeePrecision)
}

func saturatingAdd(x *uint256.Int, y *uint256.Int) *uint256.Int {
	res, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return res
}

func saturatingMul(x *uint256.Int, y *uint256.Int) *uint256.Int {
	res, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return res
}
