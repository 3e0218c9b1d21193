// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipThreshold(t *testing.T) {
	tests := []struct {
		lastSwap uint64
		bps      uint16
		expected uint64
	}{
		{1_000_000_000, 500, 1_050_000_000},
		{1_100_000_000, 500, 1_155_000_000},
		{100_000, 100, 101_000},
		{100_000, 5000, 150_000},
		// inexact division rounds up so the realized increase never
		// drops below the configured rate
		{3, 100, 4},
		{999, 100, 1009},
		{1, 5000, 2},
	}
	for _, tt := range tests {
		got, err := FlipThreshold(tt.lastSwap, tt.bps)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "threshold of %d at %d bps", tt.lastSwap, tt.bps)
		assert.GreaterOrEqual(t, got, tt.lastSwap)
	}
}

func TestFlipThresholdOverflow(t *testing.T) {
	// MaxUint64/15000 is the guaranteed-safe ceiling for every valid rate
	safe := uint64(math.MaxUint64) / 15000
	_, err := FlipThreshold(safe, 5000)
	assert.NoError(t, err)

	_, err = FlipThreshold(math.MaxUint64, 5000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArithmeticOverflow))

	_, err = FlipThreshold(math.MaxUint64, 100)
	assert.True(t, errors.Is(err, ErrArithmeticOverflow))
}

func TestSettlementSplit(t *testing.T) {
	tests := []struct {
		total    uint64
		creator  uint16
		claimer  uint16
		expected Settlement
	}{
		{2_300_000_000, 1000, 500, Settlement{230_000_000, 115_000_000, 1_955_000_000}},
		{0, 1000, 500, Settlement{0, 0, 0}},
		{10_000, 2000, 0, Settlement{2_000, 0, 8_000}},
		// odd totals round the fee cuts down, the winner absorbs the rest
		{10_001, 333, 333, Settlement{333, 333, 9_335}},
		{3, 1000, 500, Settlement{0, 0, 3}},
	}
	for _, tt := range tests {
		got, err := SettlementSplit(tt.total, tt.creator, tt.claimer)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "split of %d at %d/%d bps", tt.total, tt.creator, tt.claimer)

		sum, err := got.Total()
		require.NoError(t, err)
		assert.Equal(t, tt.total, sum, "split must conserve the total")
	}
}

func TestSettlementSplitFeeBound(t *testing.T) {
	_, err := SettlementSplit(1_000_000, 1600, 500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFeeBoundExceeded))

	// 2000 bps combined is the inclusive cap
	split, err := SettlementSplit(1_000_000, 1500, 500)
	require.NoError(t, err)
	assert.Equal(t, Settlement{150_000, 50_000, 800_000}, split)
}

func TestSumBalances(t *testing.T) {
	sum, err := SumBalances(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), sum)

	sum, err = SumBalances()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), sum)

	_, err = SumBalances(math.MaxUint64, 1)
	assert.True(t, errors.Is(err, ErrArithmeticOverflow))

	sum, err = SumBalances(math.MaxUint64, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), sum)
}

func M(a ...interface{}) []interface{} {
	return a
}

func TestValidation(t *testing.T) {
	tests := []struct {
		ret      interface{}
		expected interface{}
		msg      string
	}{
		{ValidateFeeBounds(1500, 500), nil, "2000 bps combined is allowed"},
		{errors.Is(ValidateFeeBounds(1600, 500), ErrFeeBoundExceeded), true, "2100 bps combined is not"},
		{errors.Is(ValidateFeeBounds(math.MaxUint16, math.MaxUint16), ErrFeeBoundExceeded), true, "sum must not wrap"},
		{ValidateIncreaseBounds(100), nil, "1% floor"},
		{ValidateIncreaseBounds(5000), nil, "50% ceiling"},
		{errors.Is(ValidateIncreaseBounds(99), ErrIncreaseRateOutOfBounds), true, "below floor"},
		{errors.Is(ValidateIncreaseBounds(5001), ErrIncreaseRateOutOfBounds), true, "above ceiling"},
		{ValidateInitialThreshold(100_000), nil, "floor"},
		{errors.Is(ValidateInitialThreshold(99_999), ErrInitialThresholdTooLow), true, "below floor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.ret, tt.msg)
	}
}

func TestFailureCode(t *testing.T) {
	tests := []struct {
		fn       func() interface{}
		expected interface{}
		msg      string
	}{
		{func() interface{} { return M(FailureCode(ErrFeeBoundExceeded)) }, M(uint8(0), true), "first kind"},
		{func() interface{} { return M(FailureCode(ErrInsufficientEscrowBalance)) }, M(uint8(4), true), "flush failure"},
		{func() interface{} { return M(FailureCode(ErrZeroAmountDeposit)) }, M(uint8(12), true), "last kind"},
		{func() interface{} { return M(FailureCode(errors.Wrap(ErrSettlementTooEarly, "claim"))) }, M(uint8(5), true), "wrapped"},
		{func() interface{} { return M(FailureCode(errors.New("disk on fire"))) }, M(uint8(0), false), "outside the taxonomy"},
		{func() interface{} { return M(FailureCode(nil)) }, M(uint8(0), false), "nil"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.fn(), tt.msg)
	}
}

func TestFailureCodesAreDense(t *testing.T) {
	require.Len(t, errorsByCode, 13)
	seen := make(map[uint8]bool)
	for _, kind := range errorsByCode {
		code, ok := FailureCode(kind)
		require.True(t, ok)
		require.False(t, seen[code], "duplicate code %d", code)
		seen[code] = true
	}
}
