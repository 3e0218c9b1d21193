// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import "github.com/pkg/errors"

// Precondition failures surfaced to callers. Every kind aborts the whole
// operation with no observable effect; none is retryable by the core.
var (
	ErrFeeBoundExceeded          = errors.New("combined fee exceeds bound")
	ErrIdentityConflict          = errors.New("identity conflict")
	ErrIncreaseRateOutOfBounds   = errors.New("increase rate out of bounds")
	ErrInitialThresholdTooLow    = errors.New("initial threshold too low")
	ErrInsufficientEscrowBalance = errors.New("insufficient escrow balance")
	ErrSettlementTooEarly        = errors.New("settlement too early")
	ErrUnauthorizedCaller        = errors.New("unauthorized caller")
	ErrAlreadyFlipped            = errors.New("already flipped")
	ErrEscrowNotEmpty            = errors.New("escrow not empty")
	ErrInvalidCellReference      = errors.New("invalid cell reference")
	ErrArithmeticOverflow        = errors.New("arithmetic overflow")
	ErrDepositBelowMinimum       = errors.New("deposit below minimum")
	ErrZeroAmountDeposit         = errors.New("zero amount deposit")
)

// slice order fixes the stable code of each kind
var errorsByCode = []error{
	ErrFeeBoundExceeded,
	ErrIdentityConflict,
	ErrIncreaseRateOutOfBounds,
	ErrInitialThresholdTooLow,
	ErrInsufficientEscrowBalance,
	ErrSettlementTooEarly,
	ErrUnauthorizedCaller,
	ErrAlreadyFlipped,
	ErrEscrowNotEmpty,
	ErrInvalidCellReference,
	ErrArithmeticOverflow,
	ErrDepositBelowMinimum,
	ErrZeroAmountDeposit,
)

// FailureCode resolves err, wrapped or bare, to the stable code of the
// kind it carries. The second return is false for errors outside the
// taxonomy, such as storage faults.
func FailureCode(err error) (uint8, bool) {
	for code, kind := range errorsByCode {
		if errors.Is(err, kind) {
			return uint8(code), true
		}
	}
	return 0, false
}
