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
	"github.com/ethereum/go-ethereum/common"
	"github.com/wcgcyx/l2core/forks"
	"github.com/wcgcyx/l2core/ledger"
)

// Opts is the options for the engine.
type Opts struct {
	// The active fork
	Fork forks.Fork

	// The account credited with transaction fees
	Beneficiary common.Address

	// Capability flags of the hashing scheme
	Caps ledger.Capabilities

	// Size of the analyzed bytecode cache
	CacheSize int
}
