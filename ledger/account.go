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
	"github.com/holiman/uint256"
)

// Status is the change-tracking bit set of an account within a transaction.
// Bits combine freely; no bit implies or excludes another.
type Status uint8

const (
	// Loaded is the default state: present with no bits set.
	Loaded Status = 0

	// Created marks an account newly created in this transaction, so its
	// storage is never fetched from the backing store.
	Created Status = 1 << 0

	// SelfDestructed marks an account scheduled for destruction.
	SelfDestructed Status = 1 << 1

	// Touched marks an account for persistence at commit.
	Touched Status = 1 << 2

	// LoadedAsNotExisting marks an account read as absent from the backing
	// store. Only meaningful under pre-state-clearing fork rules, where
	// absent and empty were distinct.
	LoadedAsNotExisting Status = 1 << 3

	// Cold marks an account not yet charged its first-touch surcharge.
	Cold Status = 1 << 4
)

// Account is the in-memory ledger entry of one account during a
// transaction: its info, the storage slots touched so far and the status
// bit set. At transaction end it is either committed by the surrounding
// journal or discarded wholesale.
type Account struct {
	// Balance, nonce and code identity
	Info AccountInfo

	// Touched storage slots by 256-bit key
	Storage map[uint256.Int]*Slot

	status Status
}

// NewAccount creates a loaded account from its info.
func NewAccount(info AccountInfo) *Account {
	return &Account{
		Info:    info,
		Storage: make(map[uint256.Int]*Slot),
	}
}

// NewNotExistingAccount creates an empty account marked as loaded-as-not-
// existing.
func NewNotExistingAccount(caps Capabilities) *Account {
	return &Account{
		Info:    NewAccountInfo(caps),
		Storage: make(map[uint256.Int]*Slot),
		status:  LoadedAsNotExisting,
	}
}

// Status returns the current status bit set.
func (acct *Account) Status() Status {
	return acct.status
}

// MarkTouch marks the account as touched.
func (acct *Account) MarkTouch() {
	acct.status |= Touched
}

// UnmarkTouch clears the touched bit.
func (acct *Account) UnmarkTouch() {
	acct.status &^= Touched
}

// IsTouched returns if the touched bit is set.
func (acct *Account) IsTouched() bool {
	return acct.status&Touched != 0
}

// MarkSelfdestruct marks the account for destruction.
func (acct *Account) MarkSelfdestruct() {
	acct.status |= SelfDestructed
}

// UnmarkSelfdestruct clears the self-destruct bit.
func (acct *Account) UnmarkSelfdestruct() {
	acct.status &^= SelfDestructed
}

// IsSelfdestructed returns if the self-destruct bit is set.
func (acct *Account) IsSelfdestructed() bool {
	return acct.status&SelfDestructed != 0
}

// MarkCreated marks the account as newly created in this transaction.
func (acct *Account) MarkCreated() {
	acct.status |= Created
}

// UnmarkCreated clears the created bit.
func (acct *Account) UnmarkCreated() {
	acct.status &^= Created
}

// IsCreated returns if the created bit is set.
func (acct *Account) IsCreated() bool {
	return acct.status&Created != 0
}

// IsLoadedAsNotExisting returns if the account was read as absent from the
// backing store.
func (acct *Account) IsLoadedAsNotExisting() bool {
	return acct.status&LoadedAsNotExisting != 0
}

// MarkCold marks the account as cold.
func (acct *Account) MarkCold() {
	acct.status |= Cold
}

// MarkWarm clears the cold bit and returns if the account was previously
// cold, so the caller can decide whether to charge the cold-access
// surcharge.
func (acct *Account) MarkWarm() bool {
	if acct.status&Cold == 0 {
		return false
	}
	acct.status &^= Cold
	return true
}

// IsEmpty returns if the account is empty under the given capabilities.
func (acct *Account) IsEmpty(caps Capabilities) bool {
	return acct.Info.IsEmpty(caps)
}

// GetSlot returns the touched slot for the given key, if any.
func (acct *Account) GetSlot(key *uint256.Int) (*Slot, bool) {
	slot, ok := acct.Storage[*key]
	return slot, ok
}

// SetSlot records a slot under the given key.
func (acct *Account) SetSlot(key *uint256.Int, slot *Slot) {
	acct.Storage[*key] = slot
}

// ForEachChangedSlot visits every slot whose present value differs from its
// original value, the minimal diff the journal must persist. The sequence
// is recomputed on every call, not cached; returning false stops the walk.
func (acct *Account) ForEachChangedSlot(fn func(key uint256.Int, slot *Slot) bool) {
	for key, slot := range acct.Storage {
		if !slot.IsChanged() {
			continue
		}
		if !fn(key, slot) {
			return
		}
	}
}

// Copy copies the account with detached balance, status and storage.
// The cached code handle stays shared, see AccountInfo.Copy.
func (acct *Account) Copy() *Account {
	storage := make(map[uint256.Int]*Slot, len(acct.Storage))
	for key, slot := range acct.Storage {
		cp := *slot
		storage[key] = &cp
	}
	return &Account{
		Info:    acct.Info.Copy(),
		Storage: storage,
		status:  acct.status,
	}
}
