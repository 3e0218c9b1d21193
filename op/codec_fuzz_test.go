// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package op

import (
	"bytes"
	"testing"

	"github.com/vechain/seesaw/test/datagen"
)

func FuzzDecodeInstruction(f *testing.F) {
	f.Add(EncodeInstruction(&Create{
		AddressA:         datagen.RandAddress(),
		AddressB:         datagen.RandAddress(),
		Creator:          datagen.RandAddress(),
		CreatorFeeBps:    100,
		ClaimerFeeBps:    100,
		InitialThreshold: 100_000,
		MinIncreaseBps:   500,
		Seed:             datagen.RandBytes32(),
	}))
	f.Add(EncodeInstruction(&Deposit{
		Bucket: datagen.RandCellAddress(),
		Cell:   datagen.RandCellAddress(),
		Amount: 1000,
	}))
	f.Add(EncodeInstruction(&Flush{
		Bucket: datagen.RandCellAddress(),
		Cell:   datagen.RandCellAddress(),
	}))
	f.Add(EncodeInstruction(&Claim{Bucket: datagen.RandCellAddress()}))
	f.Add(EncodeInstruction(&Close{Bucket: datagen.RandCellAddress()}))
	f.Add([]byte{})
	f.Add([]byte{0xff, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		instr, err := DecodeInstruction(data)
		if err != nil {
			return
		}
		// any accepted input must re-encode to the identical bytes
		if !bytes.Equal(data, EncodeInstruction(instr)) {
			t.Fatalf("roundtrip mismatch for %x", data)
		}
	})
}
