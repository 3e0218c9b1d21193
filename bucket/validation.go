// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import (
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/seesaw"
)

// ValidateFeeBounds checks the combined fee rate against the 20% cap.
func ValidateFeeBounds(creatorFeeBps, claimerFeeBps uint16) error {
	if uint32(creatorFeeBps)+uint32(claimerFeeBps) > seesaw.MaxCombinedFeeBps {
		return errors.Wrapf(ErrFeeBoundExceeded, "creator %d + claimer %d bps", creatorFeeBps, claimerFeeBps)
	}
	return nil
}

// ValidateIncreaseBounds checks the minimum-increase rate against its 1%..50% window.
func ValidateIncreaseBounds(minIncreaseBps uint16) error {
	if minIncreaseBps < seesaw.MinIncreaseFloorBps || minIncreaseBps > seesaw.MinIncreaseCeilBps {
		return errors.Wrapf(ErrIncreaseRateOutOfBounds, "%d bps", minIncreaseBps)
	}
	return nil
}

// ValidateInitialThreshold checks the opening swap amount floor.
func ValidateInitialThreshold(initialThreshold uint64) error {
	if initialThreshold < seesaw.MinInitialThreshold {
		return errors.Wrapf(ErrInitialThresholdTooLow, "%d", initialThreshold)
	}
	return nil
}

// validateIdentities checks that the two competitors and the creator are
// pairwise distinct.
func validateIdentities(addressA, addressB, creator seesaw.Address) error {
	if creator == addressA || creator == addressB {
		return errors.Wrapf(ErrIdentityConflict, "creator %v competes", creator)
	}
	if addressA == addressB {
		return errors.Wrapf(ErrIdentityConflict, "single competitor %v", addressA)
	}
	return nil
}
