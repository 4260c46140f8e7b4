package settlement

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
	"github.com/wcgcyx/l2core/forks"
)

// Tx is the settlement view of one transaction: just the fields the
// deduct and reward steps need.
type Tx struct {
	// The transaction sender
	Caller common.Address

	// The call target; nil for contract creation
	To *common.Address

	// The gas limit of the transaction
	GasLimit uint64

	// The effective gas price after base fee rules
	EffectiveGasPrice *uint256.Int

	// The raw call data
	Data []byte

	// The full serialized transaction bytes; required by forks that charge
	// the L1 fee over the whole transaction
	SerializedBytes []byte

	// Blob gas carried by the transaction, if any
	BlobGas uint64

	// The blob gas price; nil when the transaction carries no blobs
	BlobGasPrice *uint256.Int

	// IsL1Message marks a privileged rollup-originated message that
	// bypasses normal fee payment
	IsL1Message bool
}

// IsCreate returns if the transaction creates a contract.
func (tx *Tx) IsCreate() bool {
	return tx.To == nil
}

// L1FeePayload returns the transaction bytes the L1 data fee is charged
// over at the given revision.
func (tx *Tx) L1FeePayload(cfg *forks.Config) ([]byte, error) {
	if cfg.L1FeePayload == forks.PayloadFullTx {
		if tx.SerializedBytes == nil {
			return nil, ErrPayloadMissing
		}
		return tx.SerializedBytes, nil
	}
	return tx.Data, nil
}
