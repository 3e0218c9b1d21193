// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import (
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/xenv"
)

// Flush sweeps a qualifying escrow into the pot, makes the flushed side
// the settlement target and raises the bar for the next flip. The escrow's
// ENTIRE balance moves, not merely the threshold. The record is read fresh
// on every invocation; a competing flush that committed first raises
// LastSwapAmount and this one re-validates against it.
func Flush(env *xenv.Environment, p *op.Flush) error {
	logger.Debug("flushing",
		"bucket", p.Bucket,
		"cell", p.Cell,
	)

	st := env.State()
	b, err := loadBucket(st, p.Bucket)
	if err != nil {
		return err
	}
	cells, err := CellsOf(p.Bucket)
	if err != nil {
		return err
	}
	if p.Cell != cells.EscrowA && p.Cell != cells.EscrowB {
		return errors.Wrapf(ErrInvalidCellReference, "cell %v is not an escrow of %v", p.Cell, p.Bucket)
	}

	threshold, err := FlipThreshold(b.LastSwapAmount, b.MinIncreaseBps)
	if err != nil {
		return err
	}
	balance, err := st.Balance(p.Cell)
	if err != nil {
		return err
	}
	if balance < threshold {
		return errors.Wrapf(ErrInsufficientEscrowBalance, "%d below threshold %d", balance, threshold)
	}

	if err := st.Transfer(p.Cell, cells.Pot, balance); err != nil {
		return err
	}
	b.CurrentTarget = b.OppositeTarget()
	b.LastSwapAmount = balance
	b.LastFlipEpoch = env.Epoch()
	if err := storeBucket(st, p.Bucket, b); err != nil {
		return err
	}
	metricFlushCount().Add(1)

	logger.Info("flushed",
		"cell", p.Cell,
		"amount", balance,
		"target", b.CurrentTarget,
		"epoch", env.Epoch(),
	)
	return nil
}
