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
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MarshalHash implements the mus.Marshaller interface.
func MarshalHash(v common.Hash, bs []byte) (n int) {
	sl := v.Bytes()
	m := mus.MarshallerFn[byte](varint.MarshalByte)
	n = ord.MarshalSlice[byte](sl, m, bs)
	return
}

// UnmarshalHash implements the mus.Unmarshaller interface.
func UnmarshalHash(bs []byte) (v common.Hash, n int, err error) {
	var sl []byte
	u := mus.UnmarshallerFn[byte](varint.UnmarshalByte)
	sl, n, err = ord.UnmarshalSlice[byte](u, bs)
	if err != nil {
		return
	}
	v.SetBytes(sl)
	return
}

// SizeHash implements the mus.Sizer interface.
func SizeHash(v common.Hash) (size int) {
	sl := v.Bytes()
	s := mus.SizerFn[byte](varint.SizeByte)
	size = ord.SizeSlice[byte](sl, s)
	return
}

// MarshalUint256 implements the mus.Marshaller interface.
func MarshalUint256(v *uint256.Int, bs []byte) (n int) {
	sl := v.Bytes()
	m := mus.MarshallerFn[byte](varint.MarshalByte)
	n = ord.MarshalSlice[byte](sl, m, bs)
	return
}

// UnmarshalUint256 implements the mus.Unmarshaller interface.
func UnmarshalUint256(bs []byte) (v *uint256.Int, n int, err error) {
	var sl []byte
	u := mus.UnmarshallerFn[byte](varint.UnmarshalByte)
	sl, n, err = ord.UnmarshalSlice[byte](u, bs)
	if err != nil {
		return
	}
	v = uint256.NewInt(0).SetBytes(sl)
	return
}

// SizeUint256 implements the mus.Sizer interface.
func SizeUint256(v *uint256.Int) (size int) {
	sl := v.Bytes()
	s := mus.SizerFn[byte](varint.SizeByte)
	size = ord.SizeSlice[byte](sl, s)
	return
}

// MarshalBytes implements the mus.Marshaller interface.
func MarshalBytes(v []byte, bs []byte) (n int) {
	m := mus.MarshallerFn[byte](varint.MarshalByte)
	n = ord.MarshalSlice[byte](v, m, bs)
	return
}

// UnmarshalBytes implements the mus.Unmarshaller interface.
func UnmarshalBytes(bs []byte) (v []byte, n int, err error) {
	u := mus.UnmarshallerFn[byte](varint.UnmarshalByte)
	v, n, err = ord.UnmarshalSlice[byte](u, bs)
	return
}

// SizeBytes implements the mus.Sizer interface.
func SizeBytes(v []byte) (size int) {
	s := mus.SizerFn[byte](varint.SizeByte)
	size = ord.SizeSlice[byte](v, s)
	return
}

// MarshalAccountValue implements the mus.Marshaller interface.
func MarshalAccountValue(v AccountValue, bs []byte) (n int) {
	n = varint.MarshalUint64(v.Nonce, bs)
	n += MarshalUint256(v.Balance, bs[n:])
	n += MarshalHash(v.CodeHash, bs[n:])
	n += MarshalHash(v.KeccakCodeHash, bs[n:])
	n += varint.MarshalUint64(v.CodeSize, bs[n:])
	return
}

// UnmarshalAccountValue implements the mus.Unmarshaller interface.
func UnmarshalAccountValue(bs []byte) (v AccountValue, n int, err error) {
	v = AccountValue{}
	v.Nonce, n, err = varint.UnmarshalUint64(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Balance, n1, err = UnmarshalUint256(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CodeHash, n1, err = UnmarshalHash(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.KeccakCodeHash, n1, err = UnmarshalHash(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CodeSize, n1, err = varint.UnmarshalUint64(bs[n:])
	n += n1
	return
}

// SizeAccountValue implements the mus.Sizer interface.
func SizeAccountValue(v AccountValue) (size int) {
	size = varint.SizeUint64(v.Nonce)
	size += SizeUint256(v.Balance)
	size += SizeHash(v.CodeHash)
	size += SizeHash(v.KeccakCodeHash)
	size += varint.SizeUint64(v.CodeSize)
	return size
}
