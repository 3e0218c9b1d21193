// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bucket implements a two-party escalating-commitment contest over
// native value. Supporters of either side fund an escrow cell; flushing an
// escrow that outgrew the previous swap by a configured rate sweeps it
// into a shared pot and makes that side the settlement target. Once the
// contest idles long enough, anyone may settle the pot three ways between
// creator, claimer and the targeted side.
package bucket

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/vechain/seesaw/cache"
	"github.com/vechain/seesaw/log"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/state"
)

var logger = log.WithContext("pkg", "bucket")

// Config is the immutable part of a contest record. It is fixed by Create
// and never changes afterwards.
type Config struct {
	AddressA       seesaw.Address
	AddressB       seesaw.Address
	Creator        seesaw.Address
	CreatorFeeBps  uint16
	ClaimerFeeBps  uint16
	MinIncreaseBps uint16
	CreationEpoch  uint64
	Disambiguator  uint8
}

// Bucket is one contest instance as persisted in its record cell. Only the
// three fields outside Config ever change, and only Flush changes them.
type Bucket struct {
	Config

	CurrentTarget  seesaw.Address
	LastSwapAmount uint64
	LastFlipEpoch  uint64
}

// Flipped reports whether any flush has occurred since creation.
func (b *Bucket) Flipped() bool {
	return b.LastFlipEpoch != b.CreationEpoch
}

// OppositeTarget returns the competitor CurrentTarget does not point at.
func (b *Bucket) OppositeTarget() seesaw.Address {
	if b.CurrentTarget == b.AddressA {
		return b.AddressB
	}
	return b.AddressA
}

// EncodeRecord renders b in the fixed-width record layout: four 32-byte
// identities, three 64-bit integers, three 16-bit rates and the
// disambiguator byte, integers little-endian.
func EncodeRecord(b *Bucket) []byte {
	data := make([]byte, seesaw.BucketRecordSize)
	copy(data[0:32], b.AddressA[:])
	copy(data[32:64], b.AddressB[:])
	copy(data[64:96], b.Creator[:])
	copy(data[96:128], b.CurrentTarget[:])
	binary.LittleEndian.PutUint64(data[128:136], b.LastSwapAmount)
	binary.LittleEndian.PutUint64(data[136:144], b.CreationEpoch)
	binary.LittleEndian.PutUint64(data[144:152], b.LastFlipEpoch)
	binary.LittleEndian.PutUint16(data[152:154], b.CreatorFeeBps)
	binary.LittleEndian.PutUint16(data[154:156], b.ClaimerFeeBps)
	binary.LittleEndian.PutUint16(data[156:158], b.MinIncreaseBps)
	data[158] = b.Disambiguator
	return data
}

// DecodeRecord parses a record produced by EncodeRecord.
func DecodeRecord(data []byte) (*Bucket, error) {
	if len(data) != seesaw.BucketRecordSize {
		return nil, errors.Wrapf(ErrInvalidCellReference, "record length %d", len(data))
	}
	var b Bucket
	copy(b.AddressA[:], data[0:32])
	copy(b.AddressB[:], data[32:64])
	copy(b.Creator[:], data[64:96])
	copy(b.CurrentTarget[:], data[96:128])
	b.LastSwapAmount = binary.LittleEndian.Uint64(data[128:136])
	b.CreationEpoch = binary.LittleEndian.Uint64(data[136:144])
	b.LastFlipEpoch = binary.LittleEndian.Uint64(data[144:152])
	b.CreatorFeeBps = binary.LittleEndian.Uint16(data[152:154])
	b.ClaimerFeeBps = binary.LittleEndian.Uint16(data[154:156])
	b.MinIncreaseBps = binary.LittleEndian.Uint16(data[156:158])
	b.Disambiguator = data[158]
	return &b, nil
}

// Cells names the four storage cells of one contest instance.
type Cells struct {
	Record  seesaw.Address
	Pot     seesaw.Address
	EscrowA seesaw.Address
	EscrowB seesaw.Address
}

var cellsCache, _ = cache.NewLRU[seesaw.Address, Cells](512)

// CellsOf derives the pot and escrow addresses belonging to a record
// address. Derivation is deterministic, so results are memoized.
func CellsOf(record seesaw.Address) (Cells, error) {
	return cellsCache.GetOrLoad(record, func(seesaw.Address) (Cells, error) {
		pot, _, err := seesaw.DeriveCellAddress(seesaw.NamespacePot, record.Bytes())
		if err != nil {
			return Cells{}, err
		}
		escrowA, _, err := seesaw.DeriveCellAddress(seesaw.NamespaceEscrowA, record.Bytes())
		if err != nil {
			return Cells{}, err
		}
		escrowB, _, err := seesaw.DeriveCellAddress(seesaw.NamespaceEscrowB, record.Bytes())
		if err != nil {
			return Cells{}, err
		}
		return Cells{
			Record:  record,
			Pot:     pot,
			EscrowA: escrowA,
			EscrowB: escrowB,
		}, nil
	})
}

// RecordAddress derives the record cell address of the contest a creator
// opens with the given seed, along with the derivation disambiguator.
func RecordAddress(creator seesaw.Address, seed seesaw.Bytes32) (seesaw.Address, uint8, error) {
	return seesaw.DeriveCellAddress(seesaw.NamespaceBucket, creator.Bytes(), seed.Bytes())
}

// loadBucket reads and decodes the record at addr. Anything but a live,
// well-formed record cell is a bad reference.
func loadBucket(st *state.State, addr seesaw.Address) (*Bucket, error) {
	ns, err := st.Namespace(addr)
	if err != nil {
		return nil, err
	}
	if ns != seesaw.NamespaceBucket {
		return nil, errors.Wrapf(ErrInvalidCellReference, "no record at %v", addr)
	}
	data, err := st.GetData(addr)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(data)
}

func storeBucket(st *state.State, addr seesaw.Address, b *Bucket) error {
	return st.SetData(addr, EncodeRecord(b))
}
