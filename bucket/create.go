// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import (
	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/xenv"
)

// Create allocates the four cells of a new contest and writes the initial
// record. The transaction origin funds each cell's existence floor; no
// other value moves.
func Create(env *xenv.Environment, p *op.Create) error {
	logger.Debug("creating bucket",
		"creator", p.Creator,
		"a", p.AddressA,
		"b", p.AddressB,
	)

	if err := ValidateFeeBounds(p.CreatorFeeBps, p.ClaimerFeeBps); err != nil {
		return err
	}
	if err := validateIdentities(p.AddressA, p.AddressB, p.Creator); err != nil {
		return err
	}
	if err := ValidateIncreaseBounds(p.MinIncreaseBps); err != nil {
		return err
	}
	if err := ValidateInitialThreshold(p.InitialThreshold); err != nil {
		return err
	}

	record, disambiguator, err := RecordAddress(p.Creator, p.Seed)
	if err != nil {
		return err
	}
	cells, err := CellsOf(record)
	if err != nil {
		return err
	}

	if err := createFundedCell(env, cells.Record, seesaw.NamespaceBucket, seesaw.BucketRecordSize); err != nil {
		return err
	}
	if err := createFundedCell(env, cells.Pot, seesaw.NamespacePot, 0); err != nil {
		return err
	}
	if err := createFundedCell(env, cells.EscrowA, seesaw.NamespaceEscrowA, 0); err != nil {
		return err
	}
	if err := createFundedCell(env, cells.EscrowB, seesaw.NamespaceEscrowB, 0); err != nil {
		return err
	}

	b := &Bucket{
		Config: Config{
			AddressA:       p.AddressA,
			AddressB:       p.AddressB,
			Creator:        p.Creator,
			CreatorFeeBps:  p.CreatorFeeBps,
			ClaimerFeeBps:  p.ClaimerFeeBps,
			MinIncreaseBps: p.MinIncreaseBps,
			CreationEpoch:  env.Epoch(),
			Disambiguator:  disambiguator,
		},
		CurrentTarget:  p.AddressA,
		LastSwapAmount: p.InitialThreshold,
		LastFlipEpoch:  env.Epoch(),
	}
	if err := storeBucket(env.State(), cells.Record, b); err != nil {
		return err
	}
	metricActiveBuckets().Add(1)

	logger.Info("bucket created",
		"record", cells.Record,
		"threshold", p.InitialThreshold,
		"epoch", env.Epoch(),
	)
	return nil
}

// createFundedCell allocates a cell and endows it with the host's
// existence floor, paid by the transaction origin.
func createFundedCell(env *xenv.Environment, addr seesaw.Address, namespace string, size int) error {
	st := env.State()
	if err := st.CreateCell(addr, namespace, size); err != nil {
		return err
	}
	return st.Transfer(env.Origin(), addr, env.MinimumBalance(size))
}
