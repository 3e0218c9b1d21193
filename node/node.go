// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package node hosts the contest ledger standalone: it applies submitted
// instructions through a runtime and seals epochs on a wall-clock interval.
package node

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vechain/seesaw/bucket"
	"github.com/vechain/seesaw/co"
	"github.com/vechain/seesaw/health"
	"github.com/vechain/seesaw/kv"
	"github.com/vechain/seesaw/log"
	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/runtime"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/state"
	"github.com/vechain/seesaw/transferdb"
	"github.com/vechain/seesaw/xenv"
)

var logger = log.WithContext("pkg", "node")

// DefaultEpochDuration is the sealing interval used when Options leaves
// EpochDuration unset.
const DefaultEpochDuration = 10 * time.Second

// Options for Node.
type Options struct {
	// EpochDuration is the wall-clock length of one epoch.
	// Zero means DefaultEpochDuration.
	EpochDuration time.Duration
	// OnDemand seals an epoch after every applied instruction, so a
	// client never waits out the clock between dependent instructions.
	OnDemand bool
	// StartEpoch numbers the first epoch this node seals. Zero means 1.
	// A reopened node passes the epoch after the newest journaled one so
	// the numbering keeps climbing across restarts.
	StartEpoch uint64
}

// ErrBucketNotFound marks addresses that hold no contest record.
var ErrBucketNotFound = errors.New("bucket not found")

// Node drives the ledger without a network: instructions arrive through
// Submit and take effect immediately, then become durable when the open
// epoch is sealed.
type Node struct {
	store   kv.GetPutter
	journal *transferdb.TransferDB
	rent    xenv.RentSchedule
	options Options
	health  *health.Health

	mu      sync.Mutex
	rt      *runtime.Runtime
	epoch   uint64
	applied int
}

// New returns a Node on the given store. The store is expected to carry
// the opening balances already (see genesis.Builder). journal may be nil
// to run without a transfer journal.
func New(store kv.GetPutter, journal *transferdb.TransferDB, rent xenv.RentSchedule, options Options) *Node {
	if options.EpochDuration <= 0 {
		options.EpochDuration = DefaultEpochDuration
	}
	if options.StartEpoch == 0 {
		options.StartEpoch = 1
	}
	return &Node{
		store:   store,
		journal: journal,
		rent:    rent,
		options: options,
		health:  health.New(2 * options.EpochDuration),
		rt:      runtime.New(state.New(store), rent, runtime.Options{Journal: journal}),
		epoch:   options.StartEpoch,
	}
}

// Epoch returns the number of the open epoch.
func (n *Node) Epoch() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.epoch
}

// Rent returns the existence rent schedule the node quotes to hosted
// instructions.
func (n *Node) Rent() xenv.RentSchedule {
	return n.rent
}

// Health returns the sealing heartbeat monitor.
func (n *Node) Health() *health.Health {
	return n.health
}

// Submit applies one instruction on behalf of origin in the open epoch.
// In on-demand mode the epoch is sealed right after the instruction
// applies.
func (n *Node) Submit(origin seesaw.Address, instr op.Instruction) (*runtime.Receipt, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	receipt, err := n.rt.Execute(n.epoch, origin, instr)
	if err != nil {
		return nil, err
	}
	n.applied++

	if n.options.OnDemand {
		if err := n.sealLocked(); err != nil {
			return nil, err
		}
	}
	return receipt, nil
}

// Run seals epochs on the configured interval until ctx is done.
func (n *Node) Run(ctx context.Context) error {
	goes := &co.Goes{}

	defer func() {
		<-ctx.Done()
		goes.Wait()
	}()

	logger.Info("prepared to seal epochs",
		"interval", n.options.EpochDuration,
		"on-demand", n.options.OnDemand,
	)

	goes.Go(func() {
		n.loop(ctx)
	})

	return nil
}

func (n *Node) loop(ctx context.Context) {
	ticker := time.NewTicker(n.options.EpochDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping epoch sealing service......")
			return
		case <-ticker.C:
			n.mu.Lock()
			err := n.sealLocked()
			n.mu.Unlock()
			if err != nil {
				logger.Error("failed to seal epoch", "err", err)
			}
		}
	}
}

// sealLocked commits the open epoch and opens the next one on a fresh
// runtime. The caller must hold mu.
func (n *Node) sealLocked() error {
	stage, err := n.rt.State().Stage()
	if err != nil {
		return errors.Wrap(err, "stage epoch")
	}
	if err := stage.Commit(); err != nil {
		return errors.Wrap(err, "commit epoch")
	}

	sealed, applied := n.epoch, n.applied
	n.epoch++
	n.applied = 0
	// the staged state is spent once committed
	n.rt = runtime.New(state.New(n.store), n.rent, runtime.Options{Journal: n.journal})

	n.health.NewSealedEpoch(sealed)
	metricEpochNumber().Set(int64(n.epoch))
	if applied > 0 {
		logger.Info("epoch sealed", "epoch", sealed, "instructions", applied)
	} else {
		logger.Trace("epoch sealed", "epoch", sealed)
	}
	return nil
}

// Account describes one address as of the open epoch, pending
// instructions included.
type Account struct {
	Balance   uint64
	Namespace string
	Exists    bool
}

// Account reports the balance and cell metadata of addr.
func (n *Node) Account(addr seesaw.Address) (*Account, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	st := n.rt.State()
	exists, err := st.Exists(addr)
	if err != nil {
		return nil, err
	}
	balance, err := st.Balance(addr)
	if err != nil {
		return nil, err
	}
	namespace, err := st.Namespace(addr)
	if err != nil {
		return nil, err
	}
	return &Account{
		Balance:   balance,
		Namespace: namespace,
		Exists:    exists,
	}, nil
}

// BucketSummary is a point-in-time view of one contest and the balances
// of its cells.
type BucketSummary struct {
	Bucket  bucket.Bucket
	Cells   bucket.Cells
	Pot     uint64
	EscrowA uint64
	EscrowB uint64
	// NextThreshold is the smallest escrow balance the next flush will
	// move. It saturates once the bar leaves the amount space, which
	// means the contest can only settle.
	NextThreshold uint64
}

// Inspect decodes the contest stored at the record address.
// ErrBucketNotFound is returned when no record lives there.
func (n *Node) Inspect(record seesaw.Address) (*BucketSummary, error) {
	cells, err := bucket.CellsOf(record)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	st := n.rt.State()
	data, err := st.GetData(record)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrBucketNotFound
	}
	b, err := bucket.DecodeRecord(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode record")
	}

	pot, err := st.Balance(cells.Pot)
	if err != nil {
		return nil, err
	}
	escrowA, err := st.Balance(cells.EscrowA)
	if err != nil {
		return nil, err
	}
	escrowB, err := st.Balance(cells.EscrowB)
	if err != nil {
		return nil, err
	}

	threshold, err := bucket.FlipThreshold(b.LastSwapAmount, b.MinIncreaseBps)
	if err != nil {
		threshold = math.MaxUint64
	}

	return &BucketSummary{
		Bucket:        *b,
		Cells:         cells,
		Pot:           pot,
		EscrowA:       escrowA,
		EscrowB:       escrowB,
		NextThreshold: threshold,
	}, nil
}
