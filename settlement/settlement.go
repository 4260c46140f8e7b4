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
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	logging "github.com/ipfs/go-log"
	"github.com/wcgcyx/l2core/forks"
	"github.com/wcgcyx/l2core/l1fee"
	"github.com/wcgcyx/l2core/ledger"
)

// Logger
var log = logging.Logger("settlement")

// LedgerAccess loads, or creates on first access, the ledger entry of an
// account. Read failures from the backing store pass through verbatim.
type LedgerAccess interface {
	// LoadAccount gets the ledger entry of the given address.
	LoadAccount(addr common.Address) (*ledger.Account, error)
}

// DeductCaller debits the caller before execution.
//
// For an ordinary transaction the total cost is gas limit times effective
// gas price, plus the L1 data fee and, under forks that define one, the
// blob data fee, all with saturating arithmetic. If the total exceeds the
// caller's balance the transaction fails with ErrInsufficientFunds before
// any mutation. Otherwise the balance is debited, the nonce is bumped by
// exactly one for call transactions (creation bumps happen in the create
// path) and the account is marked touched.
//
// A privileged L1 message skips the cost computation and balance check
// entirely; the nonce bump and touch still apply.
func DeductCaller(access LedgerAccess, tx *Tx, info *l1fee.L1BlockInfo, cfg *forks.Config) error {
	acct, err := access.LoadAccount(tx.Caller)
	if err != nil {
		return err
	}

	if !tx.IsL1Message {
		cost := saturatingMul(uint256.NewInt(tx.GasLimit), tx.EffectiveGasPrice)
		l1Cost, err := txL1Cost(tx, info, cfg)
		if err != nil {
			return err
		}
		cost = saturatingAdd(cost, l1Cost)
		if cfg.EnableBlobFee && tx.BlobGas > 0 && tx.BlobGasPrice != nil {
			blobCost := saturatingMul(uint256.NewInt(tx.BlobGas), tx.BlobGasPrice)
			cost = saturatingAdd(cost, blobCost)
		}
		if cost.Cmp(acct.Info.Balance) > 0 {
			return fmt.Errorf("%w: have %v want %v", ErrInsufficientFunds, acct.Info.Balance, cost)
		}
		acct.Info.Balance.Sub(acct.Info.Balance, cost)
		log.Debugf("Deducted %v from caller %v", cost, tx.Caller)
	}

	if !tx.IsCreate() {
		acct.Info.Nonce++
	}
	acct.MarkTouch()
	return nil
}

// RewardBeneficiary credits the block proposer after execution with
// (gas spent - gas refunded) * effective gas price, plus the L1 cost from
// the same payload used at deduction time for ordinary transactions. The
// beneficiary is marked touched even when the amount is zero, so a
// zero-fee block still records the coinbase for pruning bookkeeping.
func RewardBeneficiary(access LedgerAccess, beneficiary common.Address, tx *Tx, gasSpent uint64, gasRefunded uint64, info *l1fee.L1BlockInfo, cfg *forks.Config) error {
	acct, err := access.LoadAccount(beneficiary)
	if err != nil {
		return err
	}

	amount := saturatingMul(uint256.NewInt(gasSpent-gasRefunded), tx.EffectiveGasPrice)
	if !tx.IsL1Message {
		l1Cost, err := txL1Cost(tx, info, cfg)
		if err != nil {
			return err
		}
		amount = saturatingAdd(amount, l1Cost)
	}
	acct.MarkTouch()
	acct.Info.Balance = saturatingAdd(acct.Info.Balance, amount)
	log.Debugf("Rewarded beneficiary %v with %v", beneficiary, amount)
	return nil
}

// CalculateGasRefund caps the accumulated refund at a fork-dependent
// fraction of the gas spent.
func CalculateGasRefund(cfg *forks.Config, gasSpent uint64, refunded uint64) uint64 {
	max := gasSpent / cfg.RefundQuotient
	if refunded < max {
		return refunded
	}
	return max
}

func txL1Cost(tx *Tx, info *l1fee.L1BlockInfo, cfg *forks.Config) (*uint256.Int, error) {
	if info == nil {
		return nil, ErrL1InfoNotLoaded
	}
	payload, err := tx.L1FeePayload(cfg)
	if err != nil {
		return nil, err
	}
	return info.TxL1Cost(payload), nil
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
