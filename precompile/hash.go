package precompile

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
	"crypto/sha256"
	"math"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/ripemd160"
)

const (
	sha256BaseGas       = uint64(60)
	sha256PerWordGas    = uint64(12)
	ripemd160BaseGas    = uint64(600)
	ripemd160PerWordGas = uint64(120)
)

// linearCost charges a base cost plus a per-32-byte-word cost.
func linearCost(inputLen int, base uint64, word uint64) uint64 {
	return base + uint64(inputLen+31)/32*word
}

// Sha256 is the sha256 hash contract at address 0x2.
type Sha256 struct{}

// RequiredGas calculates the gas required to run given input.
func (c *Sha256) RequiredGas(input []byte) uint64 {
	return linearCost(len(input), sha256BaseGas, sha256PerWordGas)
}

// Run runs the contract over given input.
func (c *Sha256) Run(input []byte) ([]byte, error) {
	h := sha256.Sum256(input)
	return h[:], nil
}

// Ripemd160 is the ripemd160 hash contract at address 0x3. The digest is
// left padded to a 32 byte word. Contracts does not serve it at any
// current revision, 0x3 stays disabled; a host that enables it must
// register this contract itself.
type Ripemd160 struct{}

// RequiredGas calculates the gas required to run given input.
func (c *Ripemd160) RequiredGas(input []byte) uint64 {
	return linearCost(len(input), ripemd160BaseGas, ripemd160PerWordGas)
}

// Run runs the contract over given input.
func (c *Ripemd160) Run(input []byte) ([]byte, error) {
	hasher := ripemd160.New()
	hasher.Write(input)
	return common.LeftPadBytes(hasher.Sum(nil), 32), nil
}

// disabled always runs out of gas regardless of the supplied gas.
type disabled struct{}

func (c *disabled) RequiredGas(input []byte) uint64 {
	return math.MaxUint64
}

func (c *disabled) Run(input []byte) ([]byte, error) {
	return nil, ErrOutOfGas
}

// notImplemented charges nothing and fails. It stands in for a contract
// that exists on the address map but is not yet active.
type notImplemented struct{}

func (c *notImplemented) RequiredGas(input []byte) uint64 {
	return 0
}

func (c *notImplemented) Run(input []byte) ([]byte, error) {
	return nil, ErrNotImplemented
}
