// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis bootstraps a fresh ledger with its opening balances.
package genesis

import (
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/kv"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/state"
)

// Builder helper to build the genesis ledger.
type Builder struct {
	allocs     []alloc
	stateProcs []func(state *state.State) error
}

type alloc struct {
	addr    seesaw.Address
	balance uint64
}

// Alloc opens an account with the given balance.
func (b *Builder) Alloc(addr seesaw.Address, balance uint64) *Builder {
	b.allocs = append(b.allocs, alloc{addr, balance})
	return b
}

// State add a state process.
func (b *Builder) State(proc func(state *state.State) error) *Builder {
	b.stateProcs = append(b.stateProcs, proc)
	return b
}

// Build writes the genesis ledger into the given store and returns the
// total supply it minted.
func (b *Builder) Build(store kv.GetPutter) (uint64, error) {
	st := state.New(store)

	var supply uint64
	for _, a := range b.allocs {
		balance, err := st.Balance(a.addr)
		if err != nil {
			return 0, errors.Wrap(err, "alloc")
		}
		if balance+a.balance < balance {
			return 0, errors.Errorf("allocation to %v overflows", a.addr)
		}
		if err := st.SetBalance(a.addr, balance+a.balance); err != nil {
			return 0, errors.Wrap(err, "alloc")
		}
		if supply+a.balance < supply {
			return 0, errors.New("total supply overflows")
		}
		supply += a.balance
	}

	for _, proc := range b.stateProcs {
		if err := proc(st); err != nil {
			return 0, errors.Wrap(err, "state process")
		}
	}

	stage, err := st.Stage()
	if err != nil {
		return 0, errors.Wrap(err, "stage state")
	}
	if err := stage.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit state")
	}
	return supply, nil
}
