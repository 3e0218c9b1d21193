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

// Deposit moves amount from the transaction origin into one of the
// contest's escrow cells. Either side may be funded by anyone at any
// time; no record field changes.
func Deposit(env *xenv.Environment, p *op.Deposit) error {
	logger.Debug("depositing",
		"bucket", p.Bucket,
		"cell", p.Cell,
		"amount", p.Amount,
	)

	if p.Amount == 0 {
		return ErrZeroAmountDeposit
	}
	if p.Amount < seesaw.MinDeposit {
		return errors.Wrapf(ErrDepositBelowMinimum, "%d", p.Amount)
	}

	st := env.State()
	if _, err := loadBucket(st, p.Bucket); err != nil {
		return err
	}
	cells, err := CellsOf(p.Bucket)
	if err != nil {
		return err
	}
	if p.Cell != cells.EscrowA && p.Cell != cells.EscrowB {
		return errors.Wrapf(ErrInvalidCellReference, "cell %v is not an escrow of %v", p.Cell, p.Bucket)
	}

	if err := st.Transfer(env.Origin(), p.Cell, p.Amount); err != nil {
		return err
	}

	logger.Info("deposited",
		"cell", p.Cell,
		"amount", p.Amount,
	)
	return nil
}
