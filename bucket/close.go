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

// Close cancels a contest that never flipped and refunds the creator. An
// escrow counts as empty only while it holds no more than the existence
// floor the host quotes at call time; any supporter deposit beyond that
// blocks closure.
func Close(env *xenv.Environment, p *op.Close) error {
	logger.Debug("closing", "bucket", p.Bucket)

	st := env.State()
	b, err := loadBucket(st, p.Bucket)
	if err != nil {
		return err
	}
	if err := env.VerifySigner(b.Creator); err != nil {
		return errors.Wrapf(ErrUnauthorizedCaller, "creator %v", b.Creator)
	}
	if b.Flipped() {
		return errors.Wrapf(ErrAlreadyFlipped, "flipped at epoch %d", b.LastFlipEpoch)
	}

	cells, err := CellsOf(p.Bucket)
	if err != nil {
		return err
	}
	floor := env.MinimumBalance(0)
	for _, escrow := range []seesaw.Address{cells.EscrowA, cells.EscrowB} {
		balance, err := st.Balance(escrow)
		if err != nil {
			return err
		}
		if balance > floor {
			return errors.Wrapf(ErrEscrowNotEmpty, "escrow %v holds %d above floor %d", escrow, balance, floor)
		}
	}

	for _, cell := range []seesaw.Address{cells.Pot, cells.EscrowA, cells.EscrowB, cells.Record} {
		if err := st.DeleteCell(cell, b.Creator); err != nil {
			return err
		}
	}
	metricActiveBuckets().Add(-1)

	logger.Info("bucket closed",
		"record", p.Bucket,
		"creator", b.Creator,
	)
	return nil
}
