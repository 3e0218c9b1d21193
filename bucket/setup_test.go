// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vechain/seesaw/bucket"
	"github.com/vechain/seesaw/lvldb"
	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/state"
	"github.com/vechain/seesaw/test/datagen"
	"github.com/vechain/seesaw/xenv"
)

// harness drives operations against one in-memory state across epochs.
// The zero-rent variant keeps existence funding out of balance math; the
// rented variant exercises it.
type harness struct {
	t    *testing.T
	st   *state.State
	rent xenv.RentSchedule
}

func newHarness(t *testing.T) *harness {
	return newHarnessWithRent(t, xenv.RentSchedule{})
}

func newRentedHarness(t *testing.T) *harness {
	return newHarnessWithRent(t, xenv.DefaultRentSchedule())
}

func newHarnessWithRent(t *testing.T, rent xenv.RentSchedule) *harness {
	store, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return &harness{t: t, st: state.New(store), rent: rent}
}

func (h *harness) env(epoch uint64, origin seesaw.Address) *xenv.Environment {
	return xenv.New(h.st, h.rent,
		&xenv.EpochContext{Number: epoch},
		&xenv.TransactionContext{Origin: origin},
	)
}

func (h *harness) fund(addr seesaw.Address, amount uint64) {
	balance, err := h.st.Balance(addr)
	require.NoError(h.t, err)
	require.NoError(h.t, h.st.SetBalance(addr, balance+amount))
}

func (h *harness) balance(addr seesaw.Address) uint64 {
	balance, err := h.st.Balance(addr)
	require.NoError(h.t, err)
	return balance
}

func (h *harness) exists(addr seesaw.Address) bool {
	exists, err := h.st.Exists(addr)
	require.NoError(h.t, err)
	return exists
}

// existenceCost is what Create charges its origin under this harness's
// rent schedule.
func (h *harness) existenceCost() uint64 {
	return h.rent.MinimumBalance(seesaw.BucketRecordSize) + 3*h.rent.MinimumBalance(0)
}

// contest wires one created bucket and its cast of identities.
type contest struct {
	h       *harness
	a       seesaw.Address
	b       seesaw.Address
	creator seesaw.Address
	seed    seesaw.Bytes32
	cells   bucket.Cells
}

// newContest creates a contest with fresh identities, a 10%/5% fee split
// and the given opening parameters. The creator is funded with exactly the
// existence cost, so it ends the call at balance zero.
func (h *harness) newContest(epoch, initialThreshold uint64, minIncreaseBps uint16) *contest {
	c := &contest{
		h:       h,
		a:       datagen.RandAddress(),
		b:       datagen.RandAddress(),
		creator: datagen.RandAddress(),
		seed:    datagen.RandBytes32(),
	}
	if cost := h.existenceCost(); cost > 0 {
		h.fund(c.creator, cost)
	}

	err := bucket.Create(h.env(epoch, c.creator), &op.Create{
		AddressA:         c.a,
		AddressB:         c.b,
		Creator:          c.creator,
		CreatorFeeBps:    1000,
		ClaimerFeeBps:    500,
		InitialThreshold: initialThreshold,
		MinIncreaseBps:   minIncreaseBps,
		Seed:             c.seed,
	})
	require.NoError(h.t, err)

	record, _, err := bucket.RecordAddress(c.creator, c.seed)
	require.NoError(h.t, err)
	cells, err := bucket.CellsOf(record)
	require.NoError(h.t, err)
	c.cells = cells
	return c
}

// record reads the persisted state of the contest back.
func (c *contest) record() *bucket.Bucket {
	data, err := c.h.st.GetData(c.cells.Record)
	require.NoError(c.h.t, err)
	b, err := bucket.DecodeRecord(data)
	require.NoError(c.h.t, err)
	return b
}

func (c *contest) deposit(epoch uint64, from, cell seesaw.Address, amount uint64) error {
	return bucket.Deposit(c.h.env(epoch, from), &op.Deposit{
		Bucket: c.cells.Record,
		Cell:   cell,
		Amount: amount,
	})
}

func (c *contest) flush(epoch uint64, cell seesaw.Address) error {
	return bucket.Flush(c.h.env(epoch, datagen.RandAddress()), &op.Flush{
		Bucket: c.cells.Record,
		Cell:   cell,
	})
}

func (c *contest) claim(epoch uint64, origin seesaw.Address) error {
	return bucket.Claim(c.h.env(epoch, origin), &op.Claim{
		Bucket: c.cells.Record,
	})
}

func (c *contest) close(epoch uint64, origin seesaw.Address) error {
	return bucket.Close(c.h.env(epoch, origin), &op.Close{
		Bucket: c.cells.Record,
	})
}
