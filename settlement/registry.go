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
	"github.com/ethereum/go-ethereum/common"
	"github.com/wcgcyx/l2core/forks"
	"github.com/wcgcyx/l2core/l1fee"
)

// DeductCallerFunc is the pre-execution caller-debit hook.
type DeductCallerFunc func(access LedgerAccess, tx *Tx, info *l1fee.L1BlockInfo, cfg *forks.Config) error

// RewardBeneficiaryFunc is the post-execution beneficiary-credit hook.
type RewardBeneficiaryFunc func(access LedgerAccess, beneficiary common.Address, tx *Tx, gasSpent uint64, gasRefunded uint64, info *l1fee.L1BlockInfo, cfg *forks.Config) error

// GasRefundFunc is the refund-cap hook.
type GasRefundFunc func(cfg *forks.Config, gasSpent uint64, refunded uint64) uint64

// Hooks is one settlement behaviour set. A host swaps rollup-specific or
// mainnet-style settlement by registering a different set, without touching
// the dispatch loop.
type Hooks struct {
	DeductCaller       DeductCallerFunc
	RewardBeneficiary  RewardBeneficiaryFunc
	CalculateGasRefund GasRefundFunc
}

// DefaultHooks returns the rollup settlement behaviour of this chain.
func DefaultHooks() Hooks {
	return Hooks{
		DeductCaller:       DeductCaller,
		RewardBeneficiary:  RewardBeneficiary,
		CalculateGasRefund: CalculateGasRefund,
	}
}

// Registry maps every fork to its settlement hook set. It is assembled
// once per engine instance.
type Registry struct {
	hooks map[forks.Fork]Hooks
}

// NewRegistry creates a registry with the default hooks on every fork.
func NewRegistry() *Registry {
	r := &Registry{
		hooks: make(map[forks.Fork]Hooks),
	}
	for f := forks.Archimedes; f <= forks.Latest; f++ {
		r.hooks[f] = DefaultHooks()
	}
	return r
}

// Register replaces the hook set of the given fork.
func (r *Registry) Register(fork forks.Fork, hooks Hooks) {
	r.hooks[fork] = hooks
}

// Get returns the hook set of the given fork.
func (r *Registry) Get(fork forks.Fork) Hooks {
	hooks, ok := r.hooks[fork]
	if !ok {
		return DefaultHooks()
	}
	return hooks
}
