package types

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

// AccountValue is the persisted record of one account.
type AccountValue struct {
	// The nonce of the account
	Nonce uint64

	// The balance of the account
	Balance *uint256.Int

	// The primary code hash of this account
	CodeHash common.Hash

	// The keccak code hash; zero unless the prover hashing scheme is on
	KeccakCodeHash common.Hash

	// Cached code length; zero unless code size caching is on
	CodeSize uint64
}
