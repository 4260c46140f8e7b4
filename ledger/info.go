package ledger

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
	"github.com/wcgcyx/l2core/bytecode"
)

// Capabilities selects which optional account features an engine instance
// carries. It is chosen once at engine construction; when a capability is
// off the associated fields stay zero and cross-checks are skipped, without
// changing base-protocol results.
type Capabilities struct {
	// Use the prover hash as the primary code identity and keep the keccak
	// hash alongside it
	ProverCodeHash bool

	// Keep the code length cached on the account record
	CodeSizeCache bool
}

// EmptyCodeHash returns the canonical empty-code constant of the configured
// primary hashing scheme.
func (c Capabilities) EmptyCodeHash() common.Hash {
	if c.ProverCodeHash {
		return bytecode.ProverEmptyCodeHash
	}
	return bytecode.KeccakEmptyCodeHash
}

// HashCode computes the primary code hash of the configured scheme.
func (c Capabilities) HashCode(code []byte) common.Hash {
	if len(code) == 0 {
		return c.EmptyCodeHash()
	}
	if c.ProverCodeHash {
		return bytecode.HashCodeProver(code)
	}
	return bytecode.HashCodeKeccak(code)
}

// AccountInfo holds the balance, nonce and code identity of one account.
// The cached code and cached code length are accelerants only: identity is
// defined over balance, nonce and the primary code hash.
type AccountInfo struct {
	// The balance of the account
	Balance *uint256.Int

	// The nonce of the account
	Nonce uint64

	// The primary code hash
	CodeHash common.Hash

	// The keccak code hash, kept alongside when the prover scheme is the
	// primary one; zero otherwise
	KeccakCodeHash common.Hash

	// Cached code length; meaningful only under the CodeSizeCache capability
	CodeSize int

	// Cached code; nil means fetch by hash on demand
	Code *bytecode.Bytecode
}

// NewAccountInfo creates the info of a fresh empty account under the given
// capabilities.
func NewAccountInfo(caps Capabilities) AccountInfo {
	info := AccountInfo{
		Balance:  uint256.NewInt(0),
		CodeHash: caps.EmptyCodeHash(),
	}
	if caps.ProverCodeHash {
		info.KeccakCodeHash = bytecode.KeccakEmptyCodeHash
	}
	return info
}

// Equal reports account identity: balance, nonce and primary code hash.
// Cached code and cached length never participate.
func (info *AccountInfo) Equal(other *AccountInfo) bool {
	return info.Balance.Cmp(other.Balance) == 0 &&
		info.Nonce == other.Nonce &&
		info.CodeHash == other.CodeHash
}

// IsEmpty returns if the account record is empty: zero balance, zero nonce
// and a code hash that is either the configured empty-code constant or the
// all-zero sentinel.
func (info *AccountInfo) IsEmpty(caps Capabilities) bool {
	codeEmpty := info.CodeHash == caps.EmptyCodeHash() || info.CodeHash == (common.Hash{})
	return codeEmpty && info.Balance.IsZero() && info.Nonce == 0
}

// Exists returns if the account record is not empty.
func (info *AccountInfo) Exists(caps Capabilities) bool {
	return !info.IsEmpty(caps)
}

// HasNoCodeAndNonce returns if the account has empty code and zero nonce.
func (info *AccountInfo) HasNoCodeAndNonce(caps Capabilities) bool {
	return info.CodeHash == caps.EmptyCodeHash() && info.Nonce == 0
}

// SetCode sets the cached code and its identity hashes.
//
// The hashes are trusted and not recomputed against the code.
func (info *AccountInfo) SetCode(code *bytecode.Bytecode, hash common.Hash, keccakHash common.Hash, caps Capabilities) {
	info.Code = code
	info.CodeHash = hash
	if caps.ProverCodeHash {
		info.KeccakCodeHash = keccakHash
	}
	if caps.CodeSizeCache {
		info.CodeSize = code.Len()
	}
}

// TakeCode detaches and returns the cached code, leaving the hashes intact.
func (info *AccountInfo) TakeCode() *bytecode.Bytecode {
	code := info.Code
	info.Code = nil
	return code
}

// Copy copies the info with a detached balance. The cached code handle
// is shared with the original; use TakeCode or SetCode on one side if the
// two must diverge.
func (info *AccountInfo) Copy() AccountInfo {
	cp := *info
	cp.Balance = uint256.NewInt(0).Set(info.Balance)
	return cp
}
