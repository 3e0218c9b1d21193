// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/seesaw"
)

func FuzzFlipThreshold(f *testing.F) {
	f.Add(uint64(1_000_000_000), uint16(500))
	f.Add(uint64(100_000), uint16(100))
	f.Add(uint64(math.MaxUint64)/15000, uint16(5000))
	f.Add(uint64(3), uint16(100))

	f.Fuzz(func(t *testing.T, lastSwap uint64, bps uint16) {
		if bps < seesaw.MinIncreaseFloorBps || bps > seesaw.MinIncreaseCeilBps {
			return
		}
		got, err := FlipThreshold(lastSwap, bps)
		if err != nil {
			if !errors.Is(err, ErrArithmeticOverflow) {
				t.Fatalf("unexpected error: %v", err)
			}
			if lastSwap <= math.MaxUint64/15000 {
				t.Fatalf("overflow inside the guaranteed range: %d at %d bps", lastSwap, bps)
			}
			return
		}
		if got < lastSwap {
			t.Fatalf("threshold %d below last swap %d", got, lastSwap)
		}
		// got*10000 >= lastSwap*(10000+bps): the realized increase can
		// never fall below the configured rate
		lhs := new(uint256.Int).Mul(new(uint256.Int).SetUint64(got), uint256.NewInt(seesaw.BpsDenominator))
		rhs := new(uint256.Int).Mul(
			new(uint256.Int).SetUint64(lastSwap),
			uint256.NewInt(seesaw.BpsDenominator+uint64(bps)),
		)
		if lhs.Cmp(rhs) < 0 {
			t.Fatalf("threshold %d realizes less than %d bps over %d", got, bps, lastSwap)
		}
	})
}

func FuzzSettlementSplit(f *testing.F) {
	f.Add(uint64(2_300_000_000), uint16(1000), uint16(500))
	f.Add(uint64(0), uint16(0), uint16(0))
	f.Add(uint64(math.MaxUint64), uint16(2000), uint16(0))
	f.Add(uint64(10_001), uint16(333), uint16(333))

	f.Fuzz(func(t *testing.T, total uint64, creatorBps, claimerBps uint16) {
		split, err := SettlementSplit(total, creatorBps, claimerBps)
		if err != nil {
			if uint32(creatorBps)+uint32(claimerBps) > seesaw.MaxCombinedFeeBps &&
				errors.Is(err, ErrFeeBoundExceeded) {
				return
			}
			t.Fatalf("unexpected error: %v", err)
		}
		sum, err := split.Total()
		if err != nil {
			t.Fatalf("cut sum overflows: %v", err)
		}
		if sum != total {
			t.Fatalf("split of %d does not conserve: %+v", total, split)
		}
		if split.CreatorCut > bpsShare(total, creatorBps) {
			t.Fatalf("creator cut %d above rate", split.CreatorCut)
		}
		if split.ClaimerCut > bpsShare(total, claimerBps) {
			t.Fatalf("claimer cut %d above rate", split.ClaimerCut)
		}
		if minWinner := total - bpsShare(total, seesaw.MaxCombinedFeeBps); split.WinnerCut < minWinner {
			t.Fatalf("winner cut %d below the 80%% floor %d", split.WinnerCut, minWinner)
		}
	})
}
