// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/seesaw/test/datagen"
)

func TestInstructionRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		instr Instruction
		size  int
	}{
		{"create", &Create{
			AddressA:         datagen.RandAddress(),
			AddressB:         datagen.RandAddress(),
			Creator:          datagen.RandAddress(),
			CreatorFeeBps:    1500,
			ClaimerFeeBps:    500,
			InitialThreshold: 1_000_000_000,
			MinIncreaseBps:   500,
			Seed:             datagen.RandBytes32(),
		}, 143},
		{"deposit", &Deposit{
			Bucket: datagen.RandCellAddress(),
			Cell:   datagen.RandCellAddress(),
			Amount: 1_100_000_000,
		}, 73},
		{"flush", &Flush{
			Bucket: datagen.RandCellAddress(),
			Cell:   datagen.RandCellAddress(),
		}, 65},
		{"claim", &Claim{Bucket: datagen.RandCellAddress()}, 33},
		{"close", &Close{Bucket: datagen.RandCellAddress()}, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := EncodeInstruction(tt.instr)
			require.Len(t, data, tt.size)
			assert.Equal(t, byte(tt.instr.Opcode()), data[0])

			decoded, err := DecodeInstruction(data)
			require.NoError(t, err)
			assert.Equal(t, tt.instr, decoded)
		})
	}
}

func TestDecodeInstructionRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unknown opcode", append([]byte{5}, make([]byte, 32)...)},
		{"opcode only", []byte{byte(OpClaim)}},
		{"short payload", append([]byte{byte(OpDeposit)}, make([]byte, 71)...)},
		{"overlong payload", append([]byte{byte(OpClose)}, make([]byte, 33)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInstruction(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "create", OpCreate.String())
	assert.Equal(t, "deposit", OpDeposit.String())
	assert.Equal(t, "flush", OpFlush.String())
	assert.Equal(t, "claim", OpClaim.String())
	assert.Equal(t, "close", OpClose.String())
	assert.Equal(t, "unknown", Opcode(200).String())
}
