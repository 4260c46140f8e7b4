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
	"encoding/base64"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-datastore"
	itypes "github.com/wcgcyx/l2core/types"
)

const (
	accountValueKey = "a"
	storageKey      = "s"
	codeKey         = "c"
	separator       = "/"
)

// getAccountValueKey gets the datastore key for account record with given address.
func getAccountValueKey(addr common.Address) datastore.Key {
	addrStr := base64.URLEncoding.EncodeToString(addr.Bytes())
	return datastore.NewKey(accountValueKey + separator + addrStr)
}

// getStorageKey gets the datastore key for given storage location.
func getStorageKey(addr common.Address, slot common.Hash) datastore.Key {
	addrStr := base64.URLEncoding.EncodeToString(addr.Bytes())
	slotStr := base64.URLEncoding.EncodeToString(slot.Bytes())
	return datastore.NewKey(storageKey + separator + addrStr + separator + slotStr)
}

// getCodeKey gets the datastore key for given code hash.
func getCodeKey(codeHash common.Hash) datastore.Key {
	codeStr := base64.URLEncoding.EncodeToString(codeHash.Bytes())
	return datastore.NewKey(codeKey + separator + codeStr)
}

// encodeAccountValue encodes the account record.
func encodeAccountValue(acct itypes.AccountValue) []byte {
	size := itypes.SizeAccountValue(acct)
	bs := make([]byte, size)
	itypes.MarshalAccountValue(acct, bs)
	return bs
}

// decodeAccountValue decodes the account record.
func decodeAccountValue(val []byte) (itypes.AccountValue, error) {
	res, _, err := itypes.UnmarshalAccountValue(val)
	return res, err
}

// encodeStorage encodes the storage value.
func encodeStorage(val common.Hash) []byte {
	size := itypes.SizeHash(val)
	bs := make([]byte, size)
	itypes.MarshalHash(val, bs)
	return bs
}

// decodeStorage decodes the storage value.
func decodeStorage(val []byte) (common.Hash, error) {
	res, _, err := itypes.UnmarshalHash(val)
	return res, err
}

// encodeCode encodes a code body.
func encodeCode(code []byte) []byte {
	size := itypes.SizeBytes(code)
	bs := make([]byte, size)
	itypes.MarshalBytes(code, bs)
	return bs
}

// decodeCode decodes a code body.
func decodeCode(val []byte) ([]byte, error) {
	res, _, err := itypes.UnmarshalBytes(val)
	return res, err
}
