// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/seesaw"
)

// FlipThreshold returns the escrow balance required for the next flush,
// lastSwap*(10000+minIncreaseBps)/10000 rounded up. Rounding up keeps the
// realized increase of a successful flush at or above the configured rate
// for every input. 256-bit intermediates make the product exact; only a
// result beyond uint64 fails.
func FlipThreshold(lastSwap uint64, minIncreaseBps uint16) (uint64, error) {
	num := new(uint256.Int).SetUint64(lastSwap)
	num.Mul(num, uint256.NewInt(seesaw.BpsDenominator+uint64(minIncreaseBps)))

	quo, rem := new(uint256.Int).DivMod(num, uint256.NewInt(seesaw.BpsDenominator), new(uint256.Int))
	if !rem.IsZero() {
		quo.AddUint64(quo, 1)
	}
	if !quo.IsUint64() {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "flip threshold of %d at %d bps", lastSwap, minIncreaseBps)
	}
	return quo.Uint64(), nil
}

// Settlement is the three-way division of a settled pot.
type Settlement struct {
	CreatorCut uint64
	ClaimerCut uint64
	WinnerCut  uint64
}

// Total returns the settled amount. It equals the input of SettlementSplit
// exactly; no value is created or destroyed by the split.
func (s *Settlement) Total() (uint64, error) {
	return SumBalances(s.CreatorCut, s.ClaimerCut, s.WinnerCut)
}

// SettlementSplit divides total between creator, claimer and winner. The
// fee cuts round down, the winner absorbs the remainder, so the three cuts
// always sum to total.
func SettlementSplit(total uint64, creatorFeeBps, claimerFeeBps uint16) (Settlement, error) {
	if err := ValidateFeeBounds(creatorFeeBps, claimerFeeBps); err != nil {
		return Settlement{}, err
	}
	creatorCut := bpsShare(total, creatorFeeBps)
	claimerCut := bpsShare(total, claimerFeeBps)
	// combined cuts are capped at 20% of total, the subtraction cannot wrap
	winnerCut := total - creatorCut - claimerCut
	return Settlement{
		CreatorCut: creatorCut,
		ClaimerCut: claimerCut,
		WinnerCut:  winnerCut,
	}, nil
}

// bpsShare returns total*bps/10000 rounded down. The result never exceeds
// total while bps stays below the denominator.
func bpsShare(total uint64, bps uint16) uint64 {
	n := new(uint256.Int).SetUint64(total)
	n.Mul(n, uint256.NewInt(uint64(bps)))
	n.Div(n, uint256.NewInt(seesaw.BpsDenominator))
	return n.Uint64()
}

// SumBalances adds amounts with an overflow check.
func SumBalances(amounts ...uint64) (uint64, error) {
	var sum uint64
	for _, a := range amounts {
		if sum+a < sum {
			return 0, errors.Wrap(ErrArithmeticOverflow, "balance sum")
		}
		sum += a
	}
	return sum, nil
}
