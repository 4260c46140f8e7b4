package precompile

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
	"crypto/sha256"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcgcyx/l2core/forks"
)

func TestSha256Gas(t *testing.T) {
	c := &Sha256{}
	assert.Equal(t, uint64(60), c.RequiredGas(nil))
	assert.Equal(t, uint64(72), c.RequiredGas(make([]byte, 1)))
	assert.Equal(t, uint64(72), c.RequiredGas(make([]byte, 32)))
	assert.Equal(t, uint64(84), c.RequiredGas(make([]byte, 33)))
}

func TestSha256Run(t *testing.T) {
	input := []byte("hello")
	expected := sha256.Sum256(input)

	output, remaining, err := Run(&Sha256{}, input, 100)
	require.Nil(t, err)
	assert.Equal(t, expected[:], output)
	assert.Equal(t, uint64(28), remaining)

	_, _, err = Run(&Sha256{}, input, 71)
	assert.ErrorIs(t, err, ErrOutOfGas)
}

func TestRipemd160Run(t *testing.T) {
	c := &Ripemd160{}
	assert.Equal(t, uint64(720), c.RequiredGas(make([]byte, 5)))

	output, remaining, err := Run(c, []byte("hello"), 1000)
	require.Nil(t, err)
	assert.Len(t, output, 32)
	// Digest is 20 bytes, left padded.
	assert.Equal(t, make([]byte, 12), output[:12])
	assert.Equal(t, uint64(280), remaining)
}

func TestDisabledAlwaysOutOfGas(t *testing.T) {
	cfg := forks.GetConfig(forks.Darwin)
	contracts := Contracts(cfg)

	c, ok := contracts[common.BytesToAddress([]byte{3})]
	require.True(t, ok)
	_, _, err := Run(c, nil, ^uint64(0)-1)
	assert.ErrorIs(t, err, ErrOutOfGas)
}

func TestRipemd160StaysDisabled(t *testing.T) {
	// 0x3 is a disabled stub at every revision; Ripemd160 is only for
	// hosts that register it directly.
	for f := forks.Archimedes; f <= forks.Latest; f++ {
		contracts := Contracts(forks.GetConfig(f))
		c := contracts[common.BytesToAddress([]byte{3})]
		require.NotNil(t, c)
		_, isRipemd := c.(*Ripemd160)
		assert.False(t, isRipemd)
		_, _, err := Run(c, nil, ^uint64(0)-1)
		assert.ErrorIs(t, err, ErrOutOfGas)
	}
}

func TestSha256Enablement(t *testing.T) {
	// Active from the fork that turns the flag on.
	contracts := Contracts(forks.GetConfig(forks.Bernoulli))
	c := contracts[common.BytesToAddress([]byte{2})]
	_, _, err := Run(c, nil, 100)
	assert.Nil(t, err)

	// A stub before that.
	contracts = Contracts(forks.GetConfig(forks.Archimedes))
	c = contracts[common.BytesToAddress([]byte{2})]
	_, _, err = Run(c, nil, 100)
	assert.ErrorIs(t, err, ErrNotImplemented)
}
