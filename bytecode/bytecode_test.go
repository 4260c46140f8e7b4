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
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcgcyx/l2core/forks"
)

func testTable() *forks.OpcodeTable {
	return forks.GetConfig(forks.Latest).Opcodes
}

func TestNewDefault(t *testing.T) {
	b := New()
	assert.Equal(t, StateAnalyzed, b.State())
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsEmpty())
	assert.Equal(t, ProverEmptyCodeHash, b.Hash())
	assert.Equal(t, KeccakEmptyCodeHash, b.KeccakHash())
	assert.Equal(t, []byte{forks.STOP}, b.Code())
}

func TestNewRawHashes(t *testing.T) {
	code := []byte{forks.PUSH1, 0x05, forks.JUMP}
	b := NewRaw(code)
	assert.Equal(t, StateRaw, b.State())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, HashCodeProver(code), b.Hash())
	assert.Equal(t, crypto.Keccak256Hash(code), b.KeccakHash())

	empty := NewRaw(nil)
	assert.Equal(t, ProverEmptyCodeHash, empty.Hash())
	assert.Equal(t, KeccakEmptyCodeHash, empty.KeccakHash())
	assert.True(t, empty.IsEmpty())
}

func TestToChecked(t *testing.T) {
	code := []byte{forks.PUSH1, 0x05, forks.JUMP}
	b := NewRaw(code).ToChecked()
	assert.Equal(t, StateChecked, b.State())
	assert.Equal(t, 3, b.Len())
	// Buffer is padded with the terminator bytes, logical length unchanged.
	assert.Len(t, b.Code(), 3+33)
	assert.Equal(t, code, b.OriginalCode())
	for _, p := range b.Code()[3:] {
		assert.Equal(t, byte(0), p)
	}

	// Checking again is a no-op.
	again := b.ToChecked()
	assert.Len(t, again.Code(), 3+33)
}

func TestToAnalyzed(t *testing.T) {
	code := []byte{forks.PUSH1, 0x05, forks.JUMP, forks.JUMPDEST, forks.STOP}
	b := NewRaw(code).ToAnalyzed(testTable())
	assert.Equal(t, StateAnalyzed, b.State())
	require.NotNil(t, b.JumpTable())
	assert.Equal(t, b.Len(), b.JumpTable().Len())
	assert.True(t, b.JumpTable().IsJumpdest(3))
}

func TestLockUnlock(t *testing.T) {
	code := []byte{forks.PUSH1, 0x05, forks.JUMP, forks.JUMPDEST, forks.STOP}
	locked := NewRaw(code).Lock(testTable())
	assert.Equal(t, 5, locked.Len())
	assert.False(t, locked.IsEmpty())
	assert.Equal(t, code, locked.OriginalCode())
	assert.Equal(t, HashCodeProver(code), locked.Hash())
	assert.True(t, locked.JumpTable().IsJumpdest(3))

	// Unlock always yields an analyzed value.
	b := locked.Unlock()
	assert.Equal(t, StateAnalyzed, b.State())
	assert.Equal(t, locked.Len(), b.Len())
	assert.Equal(t, locked.Hash(), b.Hash())
}

func TestHexInterchange(t *testing.T) {
	code := []byte{forks.PUSH1, 0x05, forks.JUMP, forks.JUMPDEST, forks.STOP}
	b := NewRaw(code)
	encoded := b.Encode()
	assert.Equal(t, "0x6005565b00", encoded)

	decoded, err := Decode(encoded)
	require.Nil(t, err)
	assert.Equal(t, StateRaw, decoded.State())
	assert.Equal(t, code, decoded.OriginalCode())
	assert.Equal(t, b.Hash(), decoded.Hash())

	_, err = Decode("0xzz")
	assert.NotNil(t, err)
}

func TestProverHash(t *testing.T) {
	// Deterministic and length sensitive.
	assert.Equal(t, HashCodeProver([]byte{1, 2, 3}), HashCodeProver([]byte{1, 2, 3}))
	assert.NotEqual(t, HashCodeProver([]byte{1, 2, 3}), HashCodeProver([]byte{1, 2, 3, 0}))
	assert.NotEqual(t, HashCodeProver([]byte{1}), HashCodeKeccak([]byte{1}))
	assert.Equal(t, HashCodeProver(nil), ProverEmptyCodeHash)
	assert.NotEqual(t, ProverEmptyCodeHash, KeccakEmptyCodeHash)
}

func TestCacheReuse(t *testing.T) {
	cache, err := NewCache(16, testTable())
	require.Nil(t, err)

	code := []byte{forks.PUSH1, 0x05, forks.JUMP, forks.JUMPDEST, forks.STOP}
	first := cache.Get(code)
	second := cache.Get(code)
	// Same locked value, analysis ran once.
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	byHash, ok := cache.GetByHash(HashCodeKeccak(code))
	require.True(t, ok)
	assert.Same(t, first, byHash)

	_, ok = cache.GetByHash(HashCodeKeccak([]byte{forks.STOP}))
	assert.False(t, ok)
}
