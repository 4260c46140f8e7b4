package statestore

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
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-datastore"
	itypes "github.com/wcgcyx/l2core/types"
)

// transactionImpl implements Transaction.
type transactionImpl struct {
	ctx     context.Context
	timeout time.Duration
	txn     datastore.Txn
}

// NewTransaction starts a new read-write transaction over the store.
func (s *stateStoreImpl) NewTransaction() (Transaction, error) {
	txn, err := s.ds.NewTransaction(s.ctx, false)
	if err != nil {
		return nil, err
	}
	return &transactionImpl{
		ctx:     s.ctx,
		timeout: s.opts.WriteTimeout,
		txn:     txn,
	}, nil
}

// PutAccount stages an account record for given address.
func (t *transactionImpl) PutAccount(addr common.Address, record itypes.AccountValue) error {
	ctx, cancel := context.WithTimeout(t.ctx, t.timeout)
	defer cancel()

	return t.txn.Put(ctx, getAccountValueKey(addr), encodeAccountValue(record))
}

// DeleteAccount stages the removal of an account record.
func (t *transactionImpl) DeleteAccount(addr common.Address) error {
	ctx, cancel := context.WithTimeout(t.ctx, t.timeout)
	defer cancel()

	return t.txn.Delete(ctx, getAccountValueKey(addr))
}

// PutStorage stages a storage value for given slot.
func (t *transactionImpl) PutStorage(addr common.Address, slot common.Hash, val common.Hash) error {
	ctx, cancel := context.WithTimeout(t.ctx, t.timeout)
	defer cancel()

	return t.txn.Put(ctx, getStorageKey(addr, slot), encodeStorage(val))
}

// PutCode stages contract code keyed by its hash.
func (t *transactionImpl) PutCode(codeHash common.Hash, code []byte) error {
	ctx, cancel := context.WithTimeout(t.ctx, t.timeout)
	defer cancel()

	return t.txn.Put(ctx, getCodeKey(codeHash), encodeCode(code))
}

// Commit applies every staged write atomically.
func (t *transactionImpl) Commit() error {
	ctx, cancel := context.WithTimeout(t.ctx, t.timeout)
	defer cancel()

	return t.txn.Commit(ctx)
}

// Discard drops every staged write.
func (t *transactionImpl) Discard() {
	t.txn.Discard(t.ctx)
}
