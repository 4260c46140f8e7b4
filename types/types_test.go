package types

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

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountValueRoundTrip(t *testing.T) {
	v := AccountValue{
		Nonce:          7,
		Balance:        uint256.MustFromDecimal("340282366920938463463374607431768211456"),
		CodeHash:       common.HexToHash("0x0102030405060708091011121314151617181920212223242526272829303132"),
		KeccakCodeHash: common.HexToHash("0x3231302928272625242322212019181716151413121110090807060504030201"),
		CodeSize:       1024,
	}

	bs := make([]byte, SizeAccountValue(v))
	n := MarshalAccountValue(v, bs)
	assert.Equal(t, len(bs), n)

	decoded, m, err := UnmarshalAccountValue(bs)
	require.Nil(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, v.Nonce, decoded.Nonce)
	assert.Equal(t, v.Balance, decoded.Balance)
	assert.Equal(t, v.CodeHash, decoded.CodeHash)
	assert.Equal(t, v.KeccakCodeHash, decoded.KeccakCodeHash)
	assert.Equal(t, v.CodeSize, decoded.CodeSize)
}

func TestUnmarshalAccountValueTruncated(t *testing.T) {
	v := AccountValue{
		Nonce:    1,
		Balance:  uint256.NewInt(2),
		CodeHash: common.HexToHash("0x01"),
	}
	bs := make([]byte, SizeAccountValue(v))
	MarshalAccountValue(v, bs)

	_, _, err := UnmarshalAccountValue(bs[:len(bs)-1])
	assert.NotNil(t, err)
}
