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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// The code identity carries two hashing schemes: the keccak hash used by the
// base protocol and a field-arithmetic "prover" hash consumed by the proving
// backend. Code bytes are packed big-endian into 31-byte field elements of
// the BN254 scalar field and absorbed into a width-3 sponge, with the code
// length folded in as a domain tag.
const proverBytesInField = 31

// BN254 scalar field modulus.
var proverModulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// KeccakEmptyCodeHash is the keccak hash of empty code.
var KeccakEmptyCodeHash = types.EmptyCodeHash

// ProverEmptyCodeHash is the prover hash of empty code.
var ProverEmptyCodeHash = HashCodeProver(nil)

// HashCodeKeccak computes the keccak code hash.
func HashCodeKeccak(code []byte) common.Hash {
	return crypto.Keccak256Hash(code)
}

// HashCodeProver computes the prover code hash.
func HashCodeProver(code []byte) common.Hash {
	state := []*big.Int{
		big.NewInt(0),
		big.NewInt(0),
		domainTag(len(code)),
	}

	fields := packFields(code)
	if len(fields) == 0 {
		proverPermute(state)
		return fieldToHash(state[0])
	}
	for i := 0; i < len(fields); i += 2 {
		state[0].Add(state[0], fields[i])
		state[0].Mod(state[0], proverModulus)
		if i+1 < len(fields) {
			state[1].Add(state[1], fields[i+1])
			state[1].Mod(state[1], proverModulus)
		}
		proverPermute(state)
	}
	return fieldToHash(state[0])
}

// domainTag folds the code length into the initial sponge state so that
// padded and unpadded code of different lengths never collide.
func domainTag(length int) *big.Int {
	tag := big.NewInt(int64(length))
	tag.Lsh(tag, 1)
	tag.Add(tag, big.NewInt(1))
	tag.Mod(tag, proverModulus)
	return tag
}

// packFields packs code bytes into field elements, 31 bytes per element,
// zero-padding the trailing partial chunk on the right.
func packFields(code []byte) []*big.Int {
	if len(code) == 0 {
		return nil
	}
	fields := make([]*big.Int, 0, len(code)/proverBytesInField+1)
	for i := 0; i < len(code); i += proverBytesInField {
		chunk := make([]byte, proverBytesInField)
		copy(chunk, code[i:min(i+proverBytesInField, len(code))])
		f := new(big.Int).SetBytes(chunk)
		f.Mod(f, proverModulus)
		fields = append(fields, f)
	}
	return fields
}

// proverPermute applies 8 rounds of add-round-constant, x^5 s-box and a
// fixed linear layer over the width-3 state.
func proverPermute(state []*big.Int) {
	for round := 0; round < 8; round++ {
		for i := 0; i < 3; i++ {
			rc := big.NewInt(int64(round*3 + i + 1))
			state[i].Add(state[i], rc)
			state[i].Mod(state[i], proverModulus)
		}
		for i := 0; i < 3; i++ {
			x2 := new(big.Int).Mul(state[i], state[i])
			x2.Mod(x2, proverModulus)
			x4 := new(big.Int).Mul(x2, x2)
			x4.Mod(x4, proverModulus)
			state[i].Mul(x4, state[i])
			state[i].Mod(state[i], proverModulus)
		}
		t0 := new(big.Int).Add(state[0], state[1])
		t0.Add(t0, state[2])
		t0.Mod(t0, proverModulus)
		t1 := new(big.Int).Mul(state[1], big.NewInt(2))
		t1.Add(t1, state[0])
		t1.Add(t1, state[2])
		t1.Mod(t1, proverModulus)
		t2 := new(big.Int).Mul(state[2], big.NewInt(3))
		t2.Add(t2, state[0])
		t2.Add(t2, state[1])
		t2.Mod(t2, proverModulus)
		state[0], state[1], state[2] = t0, t1, t2
	}
}

func fieldToHash(f *big.Int) common.Hash {
	var out common.Hash
	f.FillBytes(out[:])
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
