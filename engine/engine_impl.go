package engine

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
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	logging "github.com/ipfs/go-log"
	"github.com/wcgcyx/l2core/bytecode"
	"github.com/wcgcyx/l2core/forks"
	"github.com/wcgcyx/l2core/l1fee"
	"github.com/wcgcyx/l2core/ledger"
	"github.com/wcgcyx/l2core/settlement"
	"github.com/wcgcyx/l2core/statestore"
	itypes "github.com/wcgcyx/l2core/types"
)

// Logger
var log = logging.Logger("engine")

// defaultCacheSize is used when no cache size is configured.
const defaultCacheSize = 4096

// engineImpl implements Engine.
type engineImpl struct {
	ctx         context.Context
	cfg         *forks.Config
	caps        ledger.Capabilities
	beneficiary common.Address
	store       statestore.StateStore
	hooks       settlement.Hooks
	cache       *bytecode.Cache

	// Pending accounts of the transaction in flight
	pending map[common.Address]*ledger.Account
}

// NewEngineImpl creates a new Engine over given store. The fork table,
// settlement hooks and bytecode cache are assembled once here.
func NewEngineImpl(ctx context.Context, opts Opts, store statestore.StateStore) (Engine, error) {
	cfg := forks.GetConfig(opts.Fork)
	cacheSize := opts.CacheSize
	if cacheSize == 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := bytecode.NewCache(cacheSize, cfg.Opcodes)
	if err != nil {
		return nil, err
	}
	log.Infof("Start engine at fork %v", cfg.Fork)
	return &engineImpl{
		ctx:         ctx,
		cfg:         cfg,
		caps:        opts.Caps,
		beneficiary: opts.Beneficiary,
		store:       store,
		hooks:       settlement.NewRegistry().Get(cfg.Fork),
		cache:       cache,
		pending:     map[common.Address]*ledger.Account{},
	}, nil
}

// LoadAccount loads the pending account for given address, reading it
// from the store on first access.
func (e *engineImpl) LoadAccount(addr common.Address) (*ledger.Account, error) {
	acct, ok := e.pending[addr]
	if ok {
		return acct, nil
	}
	exists, err := e.store.HasAccount(addr)
	if err != nil {
		return nil, err
	}
	if !exists {
		acct = ledger.NewNotExistingAccount(e.caps)
	} else {
		record, err := e.store.GetAccountValue(addr)
		if err != nil {
			return nil, err
		}
		acct = ledger.NewAccount(ledger.AccountInfo{
			Balance:        record.Balance,
			Nonce:          record.Nonce,
			CodeHash:       record.CodeHash,
			KeccakCodeHash: record.KeccakCodeHash,
			CodeSize:       int(record.CodeSize),
		})
	}
	e.pending[addr] = acct
	return acct, nil
}

// LoadLockedCode loads the locked, analyzed bytecode of given address.
func (e *engineImpl) LoadLockedCode(addr common.Address) (*bytecode.Locked, error) {
	acct, err := e.LoadAccount(addr)
	if err != nil {
		return nil, err
	}
	if acct.Info.CodeHash == e.caps.EmptyCodeHash() || acct.Info.CodeHash == (common.Hash{}) {
		return e.cache.Get(nil), nil
	}
	code, err := e.store.GetCodeByHash(acct.Info.CodeHash)
	if err != nil {
		return nil, fmt.Errorf("fail to load code for %v: %w", addr, err)
	}
	return e.cache.Get(code), nil
}

// SLoad reads one storage word of given address, tracking the slot in
// the pending account.
func (e *engineImpl) SLoad(addr common.Address, key *uint256.Int) (*uint256.Int, error) {
	acct, err := e.LoadAccount(addr)
	if err != nil {
		return nil, err
	}
	slot, ok := acct.GetSlot(key)
	if !ok {
		original, err := e.store.Storage(addr, key)
		if err != nil {
			return nil, err
		}
		slot = ledger.NewSlot(original)
		acct.SetSlot(key, slot)
	}
	slot.MarkWarm()
	return uint256.NewInt(0).Set(slot.Present()), nil
}

// RunTx settles one transaction. The order is fixed: fetch the L1 fee
// parameters once, charge the caller, lock the bytecode, run the
// interpreter, cap the refund, credit the beneficiary, then persist all
// pending accounts in one atomic store transaction.
func (e *engineImpl) RunTx(ctx context.Context, tx *settlement.Tx, interp Interpreter) (*Receipt, error) {
	defer func() { e.pending = map[common.Address]*ledger.Account{} }()

	info, err := l1fee.TryFetch(e.store)
	if err != nil {
		return nil, err
	}
	err = e.hooks.DeductCaller(e, tx, info, e.cfg)
	if err != nil {
		return nil, err
	}
	var code *bytecode.Locked
	if tx.IsCreate() {
		code = e.cache.Get(tx.Data)
	} else {
		code, err = e.LoadLockedCode(*tx.To)
		if err != nil {
			return nil, err
		}
	}
	outcome, err := interp.Run(ctx, tx, code, e)
	if err != nil {
		return nil, err
	}
	refund := e.hooks.CalculateGasRefund(e.cfg, outcome.GasSpent, outcome.Refunded)
	err = e.hooks.RewardBeneficiary(e, e.beneficiary, tx, outcome.GasSpent, refund, info, e.cfg)
	if err != nil {
		return nil, err
	}
	receipt := &Receipt{
		GasUsed:     outcome.GasSpent - refund,
		GasRefunded: refund,
	}
	if !tx.IsL1Message {
		payload, err := tx.L1FeePayload(e.cfg)
		if err != nil {
			return nil, err
		}
		receipt.L1Fee = info.TxL1Cost(payload)
	}
	err = e.commit()
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// commit persists every pending account through one store transaction.
// Selfdestructed accounts and touched empty accounts are removed.
func (e *engineImpl) commit() error {
	txn, err := e.store.NewTransaction()
	if err != nil {
		return err
	}
	defer txn.Discard()
	for addr, acct := range e.pending {
		if acct.IsSelfdestructed() || (acct.IsTouched() && acct.IsEmpty(e.caps)) {
			err = txn.DeleteAccount(addr)
			if err != nil {
				return err
			}
			continue
		}
		if !acct.IsTouched() {
			continue
		}
		err = txn.PutAccount(addr, itypes.AccountValue{
			Nonce:          acct.Info.Nonce,
			Balance:        acct.Info.Balance,
			CodeHash:       acct.Info.CodeHash,
			KeccakCodeHash: acct.Info.KeccakCodeHash,
			CodeSize:       uint64(acct.Info.CodeSize),
		})
		if err != nil {
			return err
		}
		if acct.IsCreated() && acct.Info.Code != nil && !acct.Info.Code.IsEmpty() {
			err = txn.PutCode(acct.Info.CodeHash, acct.Info.Code.OriginalCode())
			if err != nil {
				return err
			}
		}
		commitErr := error(nil)
		acct.ForEachChangedSlot(func(key uint256.Int, slot *ledger.Slot) bool {
			commitErr = txn.PutStorage(addr, common.Hash(key.Bytes32()), common.Hash(slot.Present().Bytes32()))
			return commitErr == nil
		})
		if commitErr != nil {
			return commitErr
		}
	}
	return txn.Commit()
}

// Shutdown safely shuts the engine down.
func (e *engineImpl) Shutdown() {
	e.store.Shutdown()
}
