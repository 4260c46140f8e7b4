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
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wcgcyx/l2core/forks"
)

// ErrOutOfGas is returned when the supplied gas cannot cover the cost.
var ErrOutOfGas = errors.New("out of gas")

// ErrNotImplemented is returned by stubs for contracts that are not yet
// active at the running fork.
var ErrNotImplemented = errors.New("precompile not implemented")

// Contract is one precompiled contract.
type Contract interface {
	// RequiredGas calculates the gas required to run given input.
	RequiredGas(input []byte) uint64

	// Run runs the contract over given input.
	Run(input []byte) ([]byte, error)
}

// Run runs given contract, charging gas up front. It returns the output
// and the gas remaining.
func Run(c Contract, input []byte, suppliedGas uint64) ([]byte, uint64, error) {
	gasCost := c.RequiredGas(input)
	if suppliedGas < gasCost {
		return nil, 0, ErrOutOfGas
	}
	output, err := c.Run(input)
	if err != nil {
		return nil, 0, err
	}
	return output, suppliedGas - gasCost, nil
}

// Contracts returns the active contract set for given fork configuration.
// The hash contracts that the proving backend cannot yet cover are served
// by stubs rather than left absent, so calls to them consume the call and
// fail instead of being treated as plain value transfers.
func Contracts(cfg *forks.Config) map[common.Address]Contract {
	res := map[common.Address]Contract{}
	if cfg.EnableSha256 {
		res[common.BytesToAddress([]byte{2})] = &Sha256{}
	} else {
		res[common.BytesToAddress([]byte{2})] = &notImplemented{}
	}
	res[common.BytesToAddress([]byte{3})] = &disabled{}
	res[common.BytesToAddress([]byte{9})] = &disabled{}
	res[common.BytesToAddress([]byte{10})] = &disabled{}
	return res
}
