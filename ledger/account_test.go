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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStatusBits(t *testing.T) {
	acct := NewAccount(NewAccountInfo(proverCaps()))
	assert.Equal(t, Loaded, acct.Status())
	assert.False(t, acct.IsTouched())
	assert.False(t, acct.IsSelfdestructed())
	assert.False(t, acct.IsCreated())
	assert.False(t, acct.IsLoadedAsNotExisting())

	// Bits combine freely and clear independently.
	acct.MarkTouch()
	acct.MarkCreated()
	acct.MarkSelfdestruct()
	assert.True(t, acct.IsTouched())
	assert.True(t, acct.IsCreated())
	assert.True(t, acct.IsSelfdestructed())

	acct.UnmarkSelfdestruct()
	assert.False(t, acct.IsSelfdestructed())
	assert.True(t, acct.IsTouched())
	assert.True(t, acct.IsCreated())

	acct.UnmarkCreated()
	acct.UnmarkTouch()
	assert.Equal(t, Loaded, acct.Status())
}

func TestAccountWarmCold(t *testing.T) {
	acct := NewAccount(NewAccountInfo(proverCaps()))
	acct.MarkCold()

	assert.True(t, acct.MarkWarm())
	assert.False(t, acct.MarkWarm())
}

func TestNewNotExistingAccount(t *testing.T) {
	caps := proverCaps()
	acct := NewNotExistingAccount(caps)
	assert.True(t, acct.IsLoadedAsNotExisting())
	assert.True(t, acct.IsEmpty(caps))
}

func TestAccountSlots(t *testing.T) {
	acct := NewAccount(NewAccountInfo(proverCaps()))
	key := uint256.NewInt(1)

	_, ok := acct.GetSlot(key)
	assert.False(t, ok)

	acct.SetSlot(key, NewSlot(uint256.NewInt(5)))
	slot, ok := acct.GetSlot(key)
	require.True(t, ok)
	assert.Equal(t, uint256.NewInt(5), slot.Present())
}

func TestForEachChangedSlot(t *testing.T) {
	acct := NewAccount(NewAccountInfo(proverCaps()))
	acct.SetSlot(uint256.NewInt(1), NewSlot(uint256.NewInt(5)))
	acct.SetSlot(uint256.NewInt(2), NewChangedSlot(uint256.NewInt(0), uint256.NewInt(7)))
	acct.SetSlot(uint256.NewInt(3), NewChangedSlot(uint256.NewInt(1), uint256.NewInt(2)))

	seen := map[uint64]bool{}
	acct.ForEachChangedSlot(func(key uint256.Int, slot *Slot) bool {
		seen[key.Uint64()] = true
		return true
	})
	assert.Equal(t, map[uint64]bool{2: true, 3: true}, seen)

	// A change made after the first walk shows up in the next one.
	slot, _ := acct.GetSlot(uint256.NewInt(1))
	slot.SetPresent(uint256.NewInt(9))
	count := 0
	acct.ForEachChangedSlot(func(key uint256.Int, slot *Slot) bool {
		count++
		return true
	})
	assert.Equal(t, 3, count)

	// Early stop.
	count = 0
	acct.ForEachChangedSlot(func(key uint256.Int, slot *Slot) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestAccountCopy(t *testing.T) {
	acct := NewAccount(NewAccountInfo(proverCaps()))
	acct.Info.Balance = uint256.NewInt(10)
	acct.MarkTouch()
	acct.SetSlot(uint256.NewInt(1), NewSlot(uint256.NewInt(5)))

	cp := acct.Copy()
	cp.Info.Balance.Add(cp.Info.Balance, uint256.NewInt(1))
	slot, _ := cp.GetSlot(uint256.NewInt(1))
	slot.SetPresent(uint256.NewInt(9))

	assert.Equal(t, uint256.NewInt(10), acct.Info.Balance)
	orig, _ := acct.GetSlot(uint256.NewInt(1))
	assert.Equal(t, uint256.NewInt(5), orig.Present())
	assert.True(t, cp.IsTouched())
}
