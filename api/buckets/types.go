// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package buckets

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/vechain/seesaw/node"
	"github.com/vechain/seesaw/seesaw"
)

// BucketSummary is the full contest view: the record fields plus the live
// balances of the cells it owns.
type BucketSummary struct {
	Address        seesaw.Address      `json:"address"`
	AddressA       seesaw.Address      `json:"addressA"`
	AddressB       seesaw.Address      `json:"addressB"`
	Creator        seesaw.Address      `json:"creator"`
	CreatorFeeBps  uint16              `json:"creatorFeeBps"`
	ClaimerFeeBps  uint16              `json:"claimerFeeBps"`
	MinIncreaseBps uint16              `json:"minIncreaseBps"`
	CreationEpoch  uint64              `json:"creationEpoch"`
	Disambiguator  uint8               `json:"disambiguator"`
	CurrentTarget  seesaw.Address      `json:"currentTarget"`
	LastSwapAmount math.HexOrDecimal64 `json:"lastSwapAmount"`
	LastFlipEpoch  uint64              `json:"lastFlipEpoch"`
	Flipped        bool                `json:"flipped"`
	Cells          Cells               `json:"cells"`
	Pot            math.HexOrDecimal64 `json:"pot"`
	EscrowA        math.HexOrDecimal64 `json:"escrowA"`
	EscrowB        math.HexOrDecimal64 `json:"escrowB"`
	NextThreshold  math.HexOrDecimal64 `json:"nextThreshold"`
}

// Cells lists the addresses of the value cells serving a contest.
type Cells struct {
	Pot     seesaw.Address `json:"pot"`
	EscrowA seesaw.Address `json:"escrowA"`
	EscrowB seesaw.Address `json:"escrowB"`
}

func ConvertSummary(s *node.BucketSummary) *BucketSummary {
	return &BucketSummary{
		Address:        s.Cells.Record,
		AddressA:       s.Bucket.AddressA,
		AddressB:       s.Bucket.AddressB,
		Creator:        s.Bucket.Creator,
		CreatorFeeBps:  s.Bucket.CreatorFeeBps,
		ClaimerFeeBps:  s.Bucket.ClaimerFeeBps,
		MinIncreaseBps: s.Bucket.MinIncreaseBps,
		CreationEpoch:  s.Bucket.CreationEpoch,
		Disambiguator:  s.Bucket.Disambiguator,
		CurrentTarget:  s.Bucket.CurrentTarget,
		LastSwapAmount: math.HexOrDecimal64(s.Bucket.LastSwapAmount),
		LastFlipEpoch:  s.Bucket.LastFlipEpoch,
		Flipped:        s.Bucket.Flipped(),
		Cells: Cells{
			Pot:     s.Cells.Pot,
			EscrowA: s.Cells.EscrowA,
			EscrowB: s.Cells.EscrowB,
		},
		Pot:           math.HexOrDecimal64(s.Pot),
		EscrowA:       math.HexOrDecimal64(s.EscrowA),
		EscrowB:       math.HexOrDecimal64(s.EscrowB),
		NextThreshold: math.HexOrDecimal64(s.NextThreshold),
	}
}
