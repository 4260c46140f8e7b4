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
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2/options"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/ipfs/go-datastore"
	badgerds "github.com/ipfs/go-ds-badger2"
	logging "github.com/ipfs/go-log"
	"github.com/wcgcyx/l2core/bytecode"
	"github.com/wcgcyx/l2core/ledger"
	itypes "github.com/wcgcyx/l2core/types"
)

// Logger
var log = logging.Logger("statestore")

// initializedKey marks a store that already carries a seeded state.
var initializedKey = datastore.NewKey("i")

// GenesisAccount is one account of the initial allocation.
type GenesisAccount struct {
	// The nonce of the account
	Nonce uint64

	// The balance of the account
	Balance *uint256.Int

	// The contract code, if any
	Code []byte

	// The initial storage, if any
	Storage map[common.Hash]common.Hash
}

// Genesis is the initial allocation seeded into a fresh store.
type Genesis map[common.Address]GenesisAccount

// stateStoreImpl implements StateStore.
type stateStoreImpl struct {
	ctx  context.Context
	opts Opts
	caps ledger.Capabilities
	ds   *badgerds.Datastore
}

// NewStateStoreImpl creates a new StateStore. On a fresh store the genesis
// allocation is seeded in one atomic transaction; an existing store skips
// seeding.
func NewStateStoreImpl(ctx context.Context, opts Opts, caps ledger.Capabilities, genesis Genesis) (StateStore, error) {
	dsopts := badgerds.DefaultOptions
	dsopts.SyncWrites = false
	dsopts.Truncate = true
	// Use max table size of 256MiB
	dsopts.Options.MaxTableSize = 256 << 20
	// Use memory map for value log
	dsopts.Options.ValueLogLoadingMode = options.MemoryMap
	if opts.Path == "" {
		return nil, fmt.Errorf("empty path provided")
	}
	ds, err := badgerds.NewDatastore(opts.Path, &dsopts)
	if err != nil {
		return nil, err
	}
	res := &stateStoreImpl{
		ctx:  ctx,
		opts: opts,
		caps: caps,
		ds:   ds,
	}
	ok, err := res.ds.Has(ctx, initializedKey)
	if err != nil {
		ds.Close()
		return nil, err
	}
	if ok {
		log.Infof("Existing ds detected, skip seeding genesis state")
		return res, nil
	}
	txn, err := res.NewTransaction()
	if err != nil {
		ds.Close()
		return nil, err
	}
	defer txn.Discard()
	for addr, acct := range genesis {
		record := itypes.AccountValue{
			Nonce:    acct.Nonce,
			Balance:  acct.Balance,
			CodeHash: caps.HashCode(acct.Code),
		}
		if record.Balance == nil {
			record.Balance = uint256.NewInt(0)
		}
		if caps.ProverCodeHash {
			record.KeccakCodeHash = bytecode.HashCodeKeccak(acct.Code)
		}
		if len(acct.Code) > 0 {
			if caps.CodeSizeCache {
				record.CodeSize = uint64(len(acct.Code))
			}
			err = txn.PutCode(record.CodeHash, acct.Code)
			if err != nil {
				ds.Close()
				return nil, err
			}
		}
		err = txn.PutAccount(addr, record)
		if err != nil {
			ds.Close()
			return nil, err
		}
		for slot, val := range acct.Storage {
			err = txn.PutStorage(addr, slot, val)
			if err != nil {
				ds.Close()
				return nil, err
			}
		}
	}
	err = txn.(*transactionImpl).txn.Put(res.ctx, initializedKey, []byte{1})
	if err != nil {
		ds.Close()
		return nil, err
	}
	err = txn.Commit()
	if err != nil {
		ds.Close()
		return nil, err
	}
	return res, nil
}

// GetAccountValue gets the persisted account record for given address. An
// absent account yields the empty record, never an error.
func (s *stateStoreImpl) GetAccountValue(addr common.Address) (itypes.AccountValue, error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.opts.ReadTimeout)
	defer cancel()

	val, err := s.ds.Get(ctx, getAccountValueKey(addr))
	if err != nil {
		if !errors.Is(err, datastore.ErrNotFound) {
			return itypes.AccountValue{}, err
		}
		log.Debugf("Get account record empty for %v", addr)
		res := itypes.AccountValue{
			Nonce:    0,
			Balance:  uint256.NewInt(0),
			CodeHash: s.caps.EmptyCodeHash(),
		}
		if s.caps.ProverCodeHash {
			res.KeccakCodeHash = bytecode.KeccakEmptyCodeHash
		}
		return res, nil
	}
	log.Debugf("Get account record non-empty for %v", addr)
	return decodeAccountValue(val)
}

// HasAccount returns if an account record is persisted for given address.
func (s *stateStoreImpl) HasAccount(addr common.Address) (bool, error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.opts.ReadTimeout)
	defer cancel()

	return s.ds.Has(ctx, getAccountValueKey(addr))
}

// GetStorage gets the persisted storage value for given slot. An absent
// slot yields the zero value.
func (s *stateStoreImpl) GetStorage(addr common.Address, slot common.Hash) (common.Hash, error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.opts.ReadTimeout)
	defer cancel()

	val, err := s.ds.Get(ctx, getStorageKey(addr, slot))
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			log.Debugf("Get storage empty for %v-%v", addr, slot)
			return common.Hash{}, nil
		}
		return common.Hash{}, err
	}
	log.Debugf("Get storage non-empty for %v-%v", addr, slot)
	return decodeStorage(val)
}

// Storage reads one storage word as a 256-bit integer.
func (s *stateStoreImpl) Storage(addr common.Address, slot *uint256.Int) (*uint256.Int, error) {
	val, err := s.GetStorage(addr, slot.Bytes32())
	if err != nil {
		return nil, err
	}
	return uint256.NewInt(0).SetBytes32(val.Bytes()), nil
}

// GetCodeByHash gets the persisted code for given hash.
func (s *stateStoreImpl) GetCodeByHash(codeHash common.Hash) ([]byte, error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.opts.ReadTimeout)
	defer cancel()

	codeBytes, err := s.ds.Get(ctx, getCodeKey(codeHash))
	if err != nil {
		return nil, err
	}
	return decodeCode(codeBytes)
}

// Shutdown safely shuts the statestore down.
func (s *stateStoreImpl) Shutdown() {
	log.Infof("Close statestore...")
	err := s.ds.Close()
	if err != nil {
		log.Errorf("Fail to close statestore: %v", err.Error())
		return
	}
	log.Infof("Statestore closed successfully.")
}
