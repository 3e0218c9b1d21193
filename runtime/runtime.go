// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package runtime executes instructions against the custody ledger.
package runtime

import (
	"time"

	"github.com/pkg/errors"

	"github.com/vechain/seesaw/bucket"
	"github.com/vechain/seesaw/log"
	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/state"
	"github.com/vechain/seesaw/transferdb"
	"github.com/vechain/seesaw/xenv"
)

var logger = log.WithContext("pkg", "runtime")

// Options for Runtime.
type Options struct {
	// Journal, when set, receives every transfer of every applied
	// instruction. A journal write failure fails the instruction.
	Journal *transferdb.TransferDB
}

// Runtime is to support instruction execution.
//
// An instruction either applies in full or leaves the state untouched:
// every mutation of a failed instruction is rolled back before the error
// is returned.
type Runtime struct {
	state *state.State
	rent  xenv.RentSchedule

	journal   *transferdb.TransferDB
	lastEpoch uint64
	seq       uint32
}

// New create a Runtime object.
func New(state *state.State, rent xenv.RentSchedule, options Options) *Runtime {
	return &Runtime{
		state:   state,
		rent:    rent,
		journal: options.Journal,
	}
}

func (rt *Runtime) State() *state.State     { return rt.state }
func (rt *Runtime) Rent() xenv.RentSchedule { return rt.rent }

// Receipt describes one applied instruction.
type Receipt struct {
	Epoch     uint64
	Origin    seesaw.Address
	Opcode    op.Opcode
	Bucket    seesaw.Address
	Transfers []state.TransferLog
}

// Execute applies a single instruction on behalf of origin.
func (rt *Runtime) Execute(epoch uint64, origin seesaw.Address, instr op.Instruction) (*Receipt, error) {
	start := time.Now()
	opName := instr.Opcode().String()
	logger.Debug("executing",
		"op", opName,
		"epoch", epoch,
		"origin", origin,
	)

	env := xenv.New(rt.state, rt.rent,
		&xenv.EpochContext{Number: epoch},
		&xenv.TransactionContext{Origin: origin},
	)
	checkpoint := rt.state.NewCheckpoint()
	mark := rt.state.TransferCount()

	bucketAddr, err := dispatch(env, instr)
	if err == nil && rt.journal != nil {
		err = rt.journalTransfers(epoch, instr.Opcode(), bucketAddr, rt.state.TransfersSince(mark))
	}
	if err != nil {
		rt.state.RevertTo(checkpoint)
		metricOpCount().AddWithLabel(1, map[string]string{"op": opName, "outcome": "reverted"})
		logger.Debug("instruction reverted",
			"op", opName,
			"err", err,
		)
		return nil, err
	}

	transfers := append([]state.TransferLog(nil), rt.state.TransfersSince(mark)...)
	metricOpCount().AddWithLabel(1, map[string]string{"op": opName, "outcome": "applied"})
	metricTransferCount().Add(int64(len(transfers)))
	metricOpDuration().ObserveWithLabels(time.Since(start).Milliseconds(), map[string]string{"op": opName})

	return &Receipt{
		Epoch:     epoch,
		Origin:    origin,
		Opcode:    instr.Opcode(),
		Bucket:    bucketAddr,
		Transfers: transfers,
	}, nil
}

// ExecuteRaw decodes a wire-form instruction and applies it.
func (rt *Runtime) ExecuteRaw(epoch uint64, origin seesaw.Address, raw []byte) (*Receipt, error) {
	instr, err := op.DecodeInstruction(raw)
	if err != nil {
		return nil, err
	}
	return rt.Execute(epoch, origin, instr)
}

func dispatch(env *xenv.Environment, instr op.Instruction) (seesaw.Address, error) {
	switch p := instr.(type) {
	case *op.Create:
		record, _, err := bucket.RecordAddress(p.Creator, p.Seed)
		if err != nil {
			return seesaw.Address{}, err
		}
		return record, bucket.Create(env, p)
	case *op.Deposit:
		return p.Bucket, bucket.Deposit(env, p)
	case *op.Flush:
		return p.Bucket, bucket.Flush(env, p)
	case *op.Claim:
		return p.Bucket, bucket.Claim(env, p)
	case *op.Close:
		return p.Bucket, bucket.Close(env, p)
	default:
		panic("the interface is sealed; this is unreachable")
	}
}

func (rt *Runtime) journalTransfers(epoch uint64, opcode op.Opcode, bucketAddr seesaw.Address, logs []state.TransferLog) error {
	if rt.lastEpoch != epoch {
		rt.lastEpoch = epoch
		rt.seq = 0
	}
	seq := rt.seq
	records := make([]*transferdb.Transfer, 0, len(logs))
	for _, l := range logs {
		records = append(records, transferdb.NewTransfer(epoch, seq, opcode, bucketAddr, l))
		seq++
	}
	if err := rt.journal.Insert(records, nil); err != nil {
		return errors.Wrap(err, "journal transfers")
	}
	rt.seq = seq
	return nil
}
