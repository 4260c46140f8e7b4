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

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/wcgcyx/l2core/bytecode"
	"github.com/wcgcyx/l2core/ledger"
	"github.com/wcgcyx/l2core/settlement"
)

// Engine drives the settlement of transactions over a persistent state.
// It is sequential: one transaction at a time, no locks. All concurrency
// lives below it in the store and above it in the host.
type Engine interface {
	// LoadAccount loads the pending account for given address, reading it
	// from the store on first access.
	LoadAccount(addr common.Address) (*ledger.Account, error)

	// LoadLockedCode loads the locked, analyzed bytecode of given address.
	LoadLockedCode(addr common.Address) (*bytecode.Locked, error)

	// SLoad reads one storage word of given address, tracking the slot in
	// the pending account.
	SLoad(addr common.Address, key *uint256.Int) (*uint256.Int, error)

	// RunTx settles one transaction. The execution phase in between the
	// fee legs is delegated to the supplied interpreter. On any error the
	// pending state is discarded wholesale.
	RunTx(ctx context.Context, tx *settlement.Tx, interp Interpreter) (*Receipt, error)

	// Shutdown safely shuts the engine down.
	Shutdown()
}

// Outcome is what the execution phase reports back.
type Outcome struct {
	// Gas spent by execution
	GasSpent uint64

	// Gas marked for refund by execution, before capping
	Refunded uint64
}

// Interpreter runs the execution phase of a transaction. The caller fee
// has already been deducted when Run is called; the beneficiary reward is
// settled after it returns. Code is the locked bytecode of the callee,
// or of the init code for a creation.
type Interpreter interface {
	Run(ctx context.Context, tx *settlement.Tx, code *bytecode.Locked, view Engine) (Outcome, error)
}

// Receipt is the settlement result of one transaction.
type Receipt struct {
	// Gas used after the refund
	GasUsed uint64

	// Gas refunded, after capping
	GasRefunded uint64

	// The L1 data fee charged, nil for L1 messages
	L1Fee *uint256.Int
}
