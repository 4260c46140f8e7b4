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
	"errors"
)

var (
	// ErrInsufficientFunds is raised when the total computed cost exceeds
	// the caller's balance. The transaction is rejected with no state
	// mutation; this is a validation error, not an execution revert.
	ErrInsufficientFunds = errors.New("insufficient funds for max transaction fee")

	// ErrL1InfoNotLoaded indicates a settlement handler ran without the
	// fee-oracle fetch having run first. This is an engine wiring bug,
	// never an expected runtime condition.
	ErrL1InfoNotLoaded = errors.New("L1 block info not loaded")

	// ErrPayloadMissing indicates the fork charges the L1 fee over the
	// full serialized transaction but the serialized bytes were not
	// supplied. Like ErrL1InfoNotLoaded, an engine wiring bug.
	ErrPayloadMissing = errors.New("required payload bytes missing")
)
