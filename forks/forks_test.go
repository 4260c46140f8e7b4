package forks

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFork(t *testing.T) {
	for f := Archimedes; f <= Latest; f++ {
		parsed, err := ParseFork(f.String())
		require.Nil(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFork("unknown")
	assert.NotNil(t, err)
}

func TestIsEnabled(t *testing.T) {
	assert.True(t, Curie.IsEnabled(Archimedes))
	assert.True(t, Curie.IsEnabled(Curie))
	assert.False(t, Curie.IsEnabled(Darwin))
}

func TestGetConfigAxes(t *testing.T) {
	tests := []struct {
		fork          Fork
		quotient      uint64
		payload       L1FeePayload
		blobFee       bool
		sha256Enabled bool
	}{
		{Archimedes, 2, PayloadCallData, false, false},
		{Bernoulli, 5, PayloadCallData, false, true},
		{Curie, 5, PayloadFullTx, false, true},
		{Darwin, 5, PayloadFullTx, true, true},
	}
	for _, c := range tests {
		cfg := GetConfig(c.fork)
		assert.Equal(t, c.fork, cfg.Fork)
		assert.Equal(t, c.quotient, cfg.RefundQuotient)
		assert.Equal(t, c.payload, cfg.L1FeePayload)
		assert.Equal(t, c.blobFee, cfg.EnableBlobFee)
		assert.Equal(t, c.sha256Enabled, cfg.EnableSha256)
		require.NotNil(t, cfg.Opcodes)
	}

	// Unknown values fall back to the latest revision.
	assert.Equal(t, Latest, GetConfig(Fork(250)).Fork)
}

func TestOpcodeTablesPerFork(t *testing.T) {
	base := GetConfig(Bernoulli).Opcodes
	curie := GetConfig(Curie).Opcodes

	// Transient storage opcodes only exist from Curie.
	assert.Equal(t, uint32(0), base.Info(TLOAD).Gas())
	assert.Equal(t, uint32(100), curie.Info(TLOAD).Gas())
	assert.Equal(t, uint32(3), curie.Info(MCOPY).Gas())

	// Shared properties hold on both.
	for _, tbl := range []*OpcodeTable{base, curie} {
		assert.True(t, tbl.Info(JUMPDEST).IsJumpdest())
		assert.True(t, tbl.Info(JUMPDEST).IsGasBlockEnd())
		assert.Equal(t, uint32(1), tbl.Info(JUMPDEST).Gas())
		assert.True(t, tbl.Info(JUMP).IsGasBlockEnd())
		assert.True(t, tbl.Info(STOP).IsGasBlockEnd())
		assert.True(t, tbl.Info(PUSH1).IsPush())
		assert.True(t, tbl.Info(PUSH32).IsPush())
		assert.False(t, tbl.Info(ADD).IsPush())
		assert.False(t, tbl.Info(ADD).IsGasBlockEnd())
	}
}
