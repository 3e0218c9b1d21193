// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import (
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/xenv"
)

// Claim settles a contest that has idled long enough since its last flip.
// The full balances of pot and both escrows, residue included, split three
// ways: the creator's fee, the claimer's fee paid to whoever sent this
// transaction, and the remainder to the current target. All four cells are
// destroyed, existence floors returning to the creator.
func Claim(env *xenv.Environment, p *op.Claim) error {
	logger.Debug("claiming",
		"bucket", p.Bucket,
		"origin", env.Origin(),
	)

	st := env.State()
	b, err := loadBucket(st, p.Bucket)
	if err != nil {
		return err
	}
	if env.Epoch() < b.LastFlipEpoch || env.Epoch()-b.LastFlipEpoch < seesaw.SettleDelayEpochs {
		return errors.Wrapf(ErrSettlementTooEarly, "epoch %d, last flip %d", env.Epoch(), b.LastFlipEpoch)
	}

	cells, err := CellsOf(p.Bucket)
	if err != nil {
		return err
	}
	potBal, err := st.Balance(cells.Pot)
	if err != nil {
		return err
	}
	escrowABal, err := st.Balance(cells.EscrowA)
	if err != nil {
		return err
	}
	escrowBBal, err := st.Balance(cells.EscrowB)
	if err != nil {
		return err
	}
	total, err := SumBalances(potBal, escrowABal, escrowBBal)
	if err != nil {
		return err
	}
	split, err := SettlementSplit(total, b.CreatorFeeBps, b.ClaimerFeeBps)
	if err != nil {
		return err
	}

	// pool everything in the record cell before paying out
	if err := st.Transfer(cells.Pot, cells.Record, potBal); err != nil {
		return err
	}
	if err := st.Transfer(cells.EscrowA, cells.Record, escrowABal); err != nil {
		return err
	}
	if err := st.Transfer(cells.EscrowB, cells.Record, escrowBBal); err != nil {
		return err
	}

	// the cuts were computed from balances read in this same transaction,
	// but paying out more than was actually collected must stay impossible
	paid, err := split.Total()
	if err != nil {
		return err
	}
	collected, err := st.Balance(cells.Record)
	if err != nil {
		return err
	}
	if paid > collected {
		return errors.Wrapf(ErrArithmeticOverflow, "settlement %d exceeds collected %d", paid, collected)
	}

	if err := st.Transfer(cells.Record, b.Creator, split.CreatorCut); err != nil {
		return err
	}
	if err := st.Transfer(cells.Record, env.Origin(), split.ClaimerCut); err != nil {
		return err
	}
	if err := st.Transfer(cells.Record, b.CurrentTarget, split.WinnerCut); err != nil {
		return err
	}

	for _, cell := range []seesaw.Address{cells.Pot, cells.EscrowA, cells.EscrowB, cells.Record} {
		if err := st.DeleteCell(cell, b.Creator); err != nil {
			return err
		}
	}
	metricActiveBuckets().Add(-1)
	metricSettledAmount().Observe(int64(total))

	logger.Info("claimed",
		"bucket", p.Bucket,
		"total", total,
		"winner", b.CurrentTarget,
		"claimer", env.Origin(),
	)
	return nil
}
