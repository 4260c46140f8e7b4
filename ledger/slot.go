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

// Slot tracks one storage slot of an account within a transaction: the
// value snapshotted at transaction start, the present value and the
// cold-access flag.
type Slot struct {
	original uint256.Int
	present  uint256.Int
	cold     bool
}

// NewSlot creates an unchanged slot holding the given original value.
func NewSlot(original *uint256.Int) *Slot {
	s := &Slot{}
	s.original.Set(original)
	s.present.Set(original)
	return s
}

// NewChangedSlot creates a slot whose present value already differs from
// its original value.
func NewChangedSlot(original *uint256.Int, present *uint256.Int) *Slot {
	s := &Slot{}
	s.original.Set(original)
	s.present.Set(present)
	return s
}

// Original returns the value snapshotted at transaction start.
func (s *Slot) Original() *uint256.Int {
	return &s.original
}

// Present returns the current value.
func (s *Slot) Present() *uint256.Int {
	return &s.present
}

// SetPresent updates the current value.
func (s *Slot) SetPresent(val *uint256.Int) {
	s.present.Set(val)
}

// IsChanged returns if the present value differs from the original value.
func (s *Slot) IsChanged() bool {
	return s.original.Cmp(&s.present) != 0
}

// IsCold returns if the slot has not yet been charged its first-touch
// surcharge in this transaction.
func (s *Slot) IsCold() bool {
	return s.cold
}

// MarkCold marks the slot as cold.
func (s *Slot) MarkCold() {
	s.cold = true
}

// MarkWarm clears the cold flag and returns if the slot was previously
// cold. A second call on a warm slot returns false and changes nothing.
func (s *Slot) MarkWarm() bool {
	was := s.cold
	s.cold = false
	return was
}
