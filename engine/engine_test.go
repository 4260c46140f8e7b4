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
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcgcyx/l2core/bytecode"
	"github.com/wcgcyx/l2core/forks"
	"github.com/wcgcyx/l2core/ledger"
	"github.com/wcgcyx/l2core/settlement"
	"github.com/wcgcyx/l2core/statestore"
)

var (
	testCaller      = common.HexToAddress("0x0011223344556677889900112233445566778899")
	testCallee      = common.HexToAddress("0x1122334455667788990011223344556677889900")
	testBeneficiary = common.HexToAddress("0x2233445566778899001122334455667788990011")
)

// spyInterpreter records the caller balance observed during execution.
type spyInterpreter struct {
	outcome         Outcome
	err             error
	observedBalance *uint256.Int
	observedCode    *bytecode.Locked
	mutate          func(view Engine) error
}

func (s *spyInterpreter) Run(ctx context.Context, tx *settlement.Tx, code *bytecode.Locked, view Engine) (Outcome, error) {
	acct, err := view.LoadAccount(tx.Caller)
	if err != nil {
		return Outcome{}, err
	}
	s.observedBalance = uint256.NewInt(0).Set(acct.Info.Balance)
	s.observedCode = code
	if s.mutate != nil {
		err = s.mutate(view)
		if err != nil {
			return Outcome{}, err
		}
	}
	return s.outcome, s.err
}

func newTestEngine(t *testing.T, callerBalance uint64) (Engine, statestore.StateStore) {
	ctx := context.Background()
	caps := ledger.Capabilities{ProverCodeHash: true, CodeSizeCache: true}
	store, err := statestore.NewStateStoreImpl(ctx, statestore.Opts{
		Path:         t.TempDir(),
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}, caps, statestore.Genesis{
		testCaller: {Balance: uint256.NewInt(callerBalance)},
	})
	require.Nil(t, err)

	e, err := NewEngineImpl(ctx, Opts{
		Fork:        forks.Darwin,
		Beneficiary: testBeneficiary,
		Caps:        caps,
	}, store)
	require.Nil(t, err)
	return e, store
}

func newCallTx() *settlement.Tx {
	return &settlement.Tx{
		Caller:            testCaller,
		To:                &testCallee,
		GasLimit:          10,
		EffectiveGasPrice: uint256.NewInt(5),
		SerializedBytes:   []byte{},
	}
}

func TestRunTxOrderingAndCommit(t *testing.T) {
	e, store := newTestEngine(t, 100)
	defer e.Shutdown()

	spy := &spyInterpreter{outcome: Outcome{GasSpent: 10, Refunded: 100}}
	receipt, err := e.RunTx(context.Background(), newCallTx(), spy)
	require.Nil(t, err)

	// Caller was debited before execution started.
	assert.Equal(t, uint256.NewInt(50), spy.observedBalance)
	require.NotNil(t, spy.observedCode)
	assert.True(t, spy.observedCode.IsEmpty())

	// Refund capped at spent/5 on this fork.
	assert.Equal(t, uint64(2), receipt.GasRefunded)
	assert.Equal(t, uint64(8), receipt.GasUsed)
	require.NotNil(t, receipt.L1Fee)
	assert.True(t, receipt.L1Fee.IsZero())

	caller, err := store.GetAccountValue(testCaller)
	require.Nil(t, err)
	assert.Equal(t, uint256.NewInt(50), caller.Balance)
	assert.Equal(t, uint64(1), caller.Nonce)

	beneficiary, err := store.GetAccountValue(testBeneficiary)
	require.Nil(t, err)
	assert.Equal(t, uint256.NewInt(40), beneficiary.Balance)
}

func TestRunTxInsufficientFunds(t *testing.T) {
	e, store := newTestEngine(t, 40)
	defer e.Shutdown()

	spy := &spyInterpreter{}
	_, err := e.RunTx(context.Background(), newCallTx(), spy)
	assert.ErrorIs(t, err, settlement.ErrInsufficientFunds)
	// Execution never started.
	assert.Nil(t, spy.observedBalance)

	caller, err := store.GetAccountValue(testCaller)
	require.Nil(t, err)
	assert.Equal(t, uint256.NewInt(40), caller.Balance)
	assert.Equal(t, uint64(0), caller.Nonce)
}

func TestRunTxMissingSerializedBytes(t *testing.T) {
	e, store := newTestEngine(t, 100)
	defer e.Shutdown()

	// This fork charges the L1 fee over the full serialized transaction,
	// so leaving the bytes unset is a wiring error.
	tx := newCallTx()
	tx.SerializedBytes = nil

	spy := &spyInterpreter{}
	_, err := e.RunTx(context.Background(), tx, spy)
	assert.ErrorIs(t, err, settlement.ErrPayloadMissing)
	// Execution never started and nothing was committed.
	assert.Nil(t, spy.observedBalance)
	caller, err := store.GetAccountValue(testCaller)
	require.Nil(t, err)
	assert.Equal(t, uint256.NewInt(100), caller.Balance)
	assert.Equal(t, uint64(0), caller.Nonce)
}

func TestRunTxExecutionFailureDiscardsAll(t *testing.T) {
	e, store := newTestEngine(t, 100)
	defer e.Shutdown()

	spy := &spyInterpreter{err: assert.AnError}
	_, err := e.RunTx(context.Background(), newCallTx(), spy)
	assert.NotNil(t, err)

	// The caller debit was discarded with the rest of the pending state.
	caller, err := store.GetAccountValue(testCaller)
	require.Nil(t, err)
	assert.Equal(t, uint256.NewInt(100), caller.Balance)
	assert.Equal(t, uint64(0), caller.Nonce)
}

func TestRunTxCommitsChangedSlots(t *testing.T) {
	e, store := newTestEngine(t, 100)
	defer e.Shutdown()

	key := uint256.NewInt(7)
	spy := &spyInterpreter{
		outcome: Outcome{GasSpent: 10},
		mutate: func(view Engine) error {
			_, err := view.SLoad(testCaller, key)
			if err != nil {
				return err
			}
			acct, err := view.LoadAccount(testCaller)
			if err != nil {
				return err
			}
			slot, ok := acct.GetSlot(key)
			if !ok {
				return assert.AnError
			}
			slot.SetPresent(uint256.NewInt(9))
			return nil
		},
	}
	_, err := e.RunTx(context.Background(), newCallTx(), spy)
	require.Nil(t, err)

	val, err := store.GetStorage(testCaller, common.Hash(key.Bytes32()))
	require.Nil(t, err)
	assert.Equal(t, common.Hash(uint256.NewInt(9).Bytes32()), val)
}

func TestRunTxCreateLocksInitCode(t *testing.T) {
	e, _ := newTestEngine(t, 100)
	defer e.Shutdown()

	initCode := []byte{byte(forks.PUSH1), 0x00, byte(forks.STOP)}
	tx := &settlement.Tx{
		Caller:            testCaller,
		GasLimit:          10,
		EffectiveGasPrice: uint256.NewInt(5),
		Data:              initCode,
		SerializedBytes:   []byte{},
	}
	spy := &spyInterpreter{outcome: Outcome{GasSpent: 10}}
	_, err := e.RunTx(context.Background(), tx, spy)
	require.Nil(t, err)

	require.NotNil(t, spy.observedCode)
	assert.Equal(t, initCode, spy.observedCode.OriginalCode())
	assert.Equal(t, len(initCode), spy.observedCode.Len())
}
