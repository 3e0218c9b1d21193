// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import (
	"encoding/binary"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/test/datagen"
)

func TestRecordRoundTrip(t *testing.T) {
	fz := fuzz.New().NilChance(0)
	for range 32 {
		var b Bucket
		fz.Fuzz(&b)

		data := EncodeRecord(&b)
		require.Len(t, data, seesaw.BucketRecordSize)

		decoded, err := DecodeRecord(data)
		require.NoError(t, err)
		assert.Equal(t, &b, decoded)
	}
}

func TestRecordLayout(t *testing.T) {
	b := &Bucket{
		Config: Config{
			AddressA:       datagen.RandAddress(),
			AddressB:       datagen.RandAddress(),
			Creator:        datagen.RandAddress(),
			CreatorFeeBps:  0x0102,
			ClaimerFeeBps:  0x0304,
			MinIncreaseBps: 0x0506,
			CreationEpoch:  0x1122334455667788,
			Disambiguator:  0x99,
		},
		CurrentTarget:  datagen.RandAddress(),
		LastSwapAmount: 0xa1a2a3a4a5a6a7a8,
		LastFlipEpoch:  0xb1b2b3b4b5b6b7b8,
	}
	data := EncodeRecord(b)

	assert.Equal(t, b.AddressA[:], data[0:32])
	assert.Equal(t, b.AddressB[:], data[32:64])
	assert.Equal(t, b.Creator[:], data[64:96])
	assert.Equal(t, b.CurrentTarget[:], data[96:128])
	assert.Equal(t, b.LastSwapAmount, binary.LittleEndian.Uint64(data[128:136]))
	assert.Equal(t, b.CreationEpoch, binary.LittleEndian.Uint64(data[136:144]))
	assert.Equal(t, b.LastFlipEpoch, binary.LittleEndian.Uint64(data[144:152]))
	assert.Equal(t, b.CreatorFeeBps, binary.LittleEndian.Uint16(data[152:154]))
	assert.Equal(t, b.ClaimerFeeBps, binary.LittleEndian.Uint16(data[154:156]))
	assert.Equal(t, b.MinIncreaseBps, binary.LittleEndian.Uint16(data[156:158]))
	assert.Equal(t, b.Disambiguator, data[158])
}

func TestDecodeRecordRejectsLength(t *testing.T) {
	for _, n := range []int{0, 1, 158, 160, 318} {
		_, err := DecodeRecord(make([]byte, n))
		require.Error(t, err, "length %d", n)
		assert.True(t, errors.Is(err, ErrInvalidCellReference))
	}
}

func TestBucketHelpers(t *testing.T) {
	a, b := datagen.RandAddress(), datagen.RandAddress()
	bucket := &Bucket{
		Config:        Config{AddressA: a, AddressB: b, CreationEpoch: 10},
		CurrentTarget: a,
		LastFlipEpoch: 10,
	}

	assert.False(t, bucket.Flipped())
	assert.Equal(t, b, bucket.OppositeTarget())

	bucket.CurrentTarget = b
	bucket.LastFlipEpoch = 12
	assert.True(t, bucket.Flipped())
	assert.Equal(t, a, bucket.OppositeTarget())
}

func TestRecordAddress(t *testing.T) {
	creator := datagen.RandAddress()
	seed := datagen.RandBytes32()

	addr, d, err := RecordAddress(creator, seed)
	require.NoError(t, err)
	assert.True(t, addr.IsDerived())

	again, d2, err := RecordAddress(creator, seed)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, d, d2)

	other, _, err := RecordAddress(creator, datagen.RandBytes32())
	require.NoError(t, err)
	assert.NotEqual(t, addr, other, "seed must separate contests")

	foreign, _, err := RecordAddress(datagen.RandAddress(), seed)
	require.NoError(t, err)
	assert.NotEqual(t, addr, foreign, "creator must separate contests")
}

func TestCellsOf(t *testing.T) {
	record, _, err := RecordAddress(datagen.RandAddress(), datagen.RandBytes32())
	require.NoError(t, err)

	cells, err := CellsOf(record)
	require.NoError(t, err)
	assert.Equal(t, record, cells.Record)

	// four pairwise distinct derived addresses
	all := []seesaw.Address{cells.Record, cells.Pot, cells.EscrowA, cells.EscrowB}
	for i, x := range all {
		assert.True(t, x.IsDerived())
		for _, y := range all[i+1:] {
			assert.NotEqual(t, x, y)
		}
	}

	// memoized lookups stay deterministic
	again, err := CellsOf(record)
	require.NoError(t, err)
	assert.Equal(t, cells, again)
}

func FuzzDecodeRecord(f *testing.F) {
	var b Bucket
	fuzz.New().NilChance(0).Fuzz(&b)
	f.Add(EncodeRecord(&b))
	f.Add(make([]byte, seesaw.BucketRecordSize))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		decoded, err := DecodeRecord(data)
		if err != nil {
			if len(data) == seesaw.BucketRecordSize {
				t.Fatalf("well-sized record rejected: %v", err)
			}
			return
		}
		reencoded := EncodeRecord(decoded)
		if len(reencoded) != len(data) {
			t.Fatalf("length changed on roundtrip")
		}
		for i := range data {
			if data[i] != reencoded[i] {
				t.Fatalf("byte %d changed on roundtrip", i)
			}
		}
	})
}
