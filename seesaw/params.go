// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package seesaw

// Constants of the contest protocol.
const (
	// BpsDenominator is the scale of all basis-point rates. 10000 bps = 100%.
	BpsDenominator = 10000

	// MaxCombinedFeeBps bounds creatorFeeBps + claimerFeeBps at bucket creation.
	MaxCombinedFeeBps = 2000

	// MinIncreaseFloorBps and MinIncreaseCeilBps bound the per-flip minimum
	// increase rate. 100 bps = 1%, 5000 bps = 50%.
	MinIncreaseFloorBps = 100
	MinIncreaseCeilBps  = 5000

	// MinInitialThreshold is the smallest allowed initial flip threshold,
	// in native units.
	MinInitialThreshold = 100000

	// MinDeposit is the dust floor for a single deposit, in native units.
	MinDeposit = 1000

	// SettleDelayEpochs is the idle period after the last flip before
	// settlement becomes eligible.
	SettleDelayEpochs = 3

	// BucketRecordSize is the encoded size of a bucket record in bytes.
	BucketRecordSize = 159
)

// Namespaces of derived storage cells. One bucket owns one cell per namespace,
// except NamespaceBucket which anchors the record cell itself.
const (
	NamespaceBucket  = "bucket"
	NamespacePot     = "main"
	NamespaceEscrowA = "escrow_a"
	NamespaceEscrowB = "escrow_b"
)
