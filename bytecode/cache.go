package bytecode

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
	lru "github.com/hashicorp/golang-lru/v2"
	logging "github.com/ipfs/go-log"
	"github.com/wcgcyx/l2core/forks"
)

// Logger
var log = logging.Logger("bytecode")

// Cache keeps locked bytecode keyed by keccak code hash so repeated calls
// to the same code reuse one analysis. One cache serves one opcode table:
// a fork change requires a fresh cache.
type Cache struct {
	table *forks.OpcodeTable
	lru   *lru.Cache[common.Hash, *Locked]
}

// NewCache creates a cache of at most size analyzed code bodies.
func NewCache(size int, table *forks.OpcodeTable) (*Cache, error) {
	l, err := lru.New[common.Hash, *Locked](size)
	if err != nil {
		return nil, err
	}
	return &Cache{
		table: table,
		lru:   l,
	}, nil
}

// Get returns the locked bytecode for raw code bytes, analyzing on miss.
func (c *Cache) Get(code []byte) *Locked {
	keccakHash := KeccakEmptyCodeHash
	if len(code) > 0 {
		keccakHash = HashCodeKeccak(code)
	}
	if locked, ok := c.lru.Get(keccakHash); ok {
		return locked
	}
	log.Debugf("Analysis cache miss for %v (%v bytes)", keccakHash, len(code))
	locked := NewRawWithHashes(code, HashCodeProver(code), keccakHash).Lock(c.table)
	c.lru.Add(keccakHash, locked)
	return locked
}

// GetByHash returns a previously cached locked bytecode by keccak hash.
func (c *Cache) GetByHash(keccakHash common.Hash) (*Locked, bool) {
	return c.lru.Get(keccakHash)
}

// Len returns the number of cached code bodies.
func (c *Cache) Len() int {
	return c.lru.Len()
}
