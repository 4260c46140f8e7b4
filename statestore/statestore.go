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
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	itypes "github.com/wcgcyx/l2core/types"
)

// StateStore is the persistent backing store of the ledger: account
// records, storage slots and code bodies. Reads of absent entries return
// zero values, not errors; genuine store failures propagate verbatim.
type StateStore interface {
	// GetAccountValue gets the persisted account record for given address.
	GetAccountValue(addr common.Address) (itypes.AccountValue, error)

	// HasAccount returns if an account record is persisted for given address.
	HasAccount(addr common.Address) (bool, error)

	// GetStorage gets the persisted storage value for given slot.
	GetStorage(addr common.Address, slot common.Hash) (common.Hash, error)

	// Storage reads one storage word as a 256-bit integer. It adapts this
	// store to the fee oracle's reader interface.
	Storage(addr common.Address, slot *uint256.Int) (*uint256.Int, error)

	// GetCodeByHash gets the persisted code for given hash.
	GetCodeByHash(codeHash common.Hash) ([]byte, error)

	// NewTransaction creates a new transaction to write.
	NewTransaction() (Transaction, error)

	// Shutdown safely shuts the statestore down.
	Shutdown()
}

// Transaction is one atomic write batch: either every pending mutation is
// committed or all of them are discarded wholesale. There is no partial
// commit path.
type Transaction interface {
	// PutAccount puts the account record of the given address.
	PutAccount(addr common.Address, acct itypes.AccountValue) error

	// DeleteAccount deletes the account record of the given address.
	DeleteAccount(addr common.Address) error

	// PutStorage puts the storage value of the given slot.
	PutStorage(addr common.Address, slot common.Hash, val common.Hash) error

	// PutCode puts a code body keyed by its hash.
	PutCode(codeHash common.Hash, code []byte) error

	// Commit commits all changes.
	Commit() error

	// Discard discards all changes.
	Discard()
}
