// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/state"
)

// ErrNotSigner is returned by VerifySigner when the queried address did
// not authorize the transaction being executed.
var ErrNotSigner = errors.New("not a transaction signer")

// EpochContext holds the epoch-level values visible to handlers.
type EpochContext struct {
	Number uint64
}

// TransactionContext holds the transaction-level values visible to handlers.
type TransactionContext struct {
	Origin seesaw.Address
}

// Environment is the host surface an operation executes against. It bundles
// the mutable state with the read-only epoch, transaction and rent facts.
type Environment struct {
	state    *state.State
	rent     RentSchedule
	epochCtx *EpochContext
	txCtx    *TransactionContext
}

// New creates an execution environment.
func New(
	state *state.State,
	rent RentSchedule,
	epochCtx *EpochContext,
	txCtx *TransactionContext,
) *Environment {
	return &Environment{
		state,
		rent,
		epochCtx,
		txCtx,
	}
}

// State returns the mutable state.
func (env *Environment) State() *state.State { return env.state }

// Epoch returns the number of the epoch the transaction executes in.
func (env *Environment) Epoch() uint64 { return env.epochCtx.Number }

// Origin returns the address that signed and funds the transaction.
func (env *Environment) Origin() seesaw.Address { return env.txCtx.Origin }

// MinimumBalance returns the rent floor for a cell of the given data size.
func (env *Environment) MinimumBalance(size int) uint64 {
	return env.rent.MinimumBalance(size)
}

// VerifySigner reports whether addr authorized the current transaction.
// Only the origin attests a signature.
func (env *Environment) VerifySigner(addr seesaw.Address) error {
	if addr != env.txCtx.Origin {
		return errors.Wrapf(ErrNotSigner, "address %v", addr)
	}
	return nil
}
