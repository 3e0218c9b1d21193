// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/kv"
	"github.com/vechain/seesaw/seesaw"
)

// Sentinel failures of cell mechanics. Operation-level validation has its
// own vocabulary; these surface host-substrate faults only.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceOverflow     = errors.New("balance overflow")
	ErrCellExists          = errors.New("cell already exists")
	ErrCellNotFound        = errors.New("cell not found")
	ErrCellDestroyed       = errors.New("cell destroyed")
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// TransferLog records one committed value movement.
type TransferLog struct {
	From   seesaw.Address
	To     seesaw.Address
	Amount uint64
}

type journalEntry struct {
	addr seesaw.Address
	prev cellObject
}

type checkpoint struct {
	journalLen  int
	transferLen int
}

// State manages the cell state of the host ledger.
//
// It lazily loads cells from the backing store, keeps all mutations in
// memory behind an undo journal for checkpoint/revert, and stages dirty
// cells into a kv batch for commit. All value movement goes through
// Transfer; SetBalance exists for bootstrap only.
type State struct {
	store       kv.GetPutter
	live        map[seesaw.Address]*cellObject
	baseline    map[seesaw.Address]cellData // as-loaded committed values
	journal     []journalEntry
	checkpoints []checkpoint
	transfers   []TransferLog
}

// New create state object.
func New(store kv.GetPutter) *State {
	return &State{
		store:    store,
		live:     make(map[seesaw.Address]*cellObject),
		baseline: make(map[seesaw.Address]cellData),
	}
}

func (s *State) getCell(addr seesaw.Address) (*cellObject, error) {
	if obj, ok := s.live[addr]; ok {
		return obj, nil
	}
	obj := &cellObject{}
	data, err := s.store.Get(cellKey(addr))
	if err != nil {
		if !s.store.IsNotFound(err) {
			return nil, err
		}
	} else if err := rlp.DecodeBytes(data, &obj.data); err != nil {
		return nil, errors.Wrap(err, "decode cell")
	}
	s.live[addr] = obj
	s.baseline[addr] = obj.data
	return obj, nil
}

// mutate journals the current value of the cell and returns it for writing.
func (s *State) mutate(addr seesaw.Address) (*cellObject, error) {
	obj, err := s.getCell(addr)
	if err != nil {
		return nil, err
	}
	s.journal = append(s.journal, journalEntry{addr, *obj})
	return obj, nil
}

// Balance returns the balance of the given address.
func (s *State) Balance(addr seesaw.Address) (uint64, error) {
	obj, err := s.getCell(addr)
	if err != nil {
		return 0, &Error{err}
	}
	return obj.data.Balance, nil
}

// SetBalance sets the balance of the given address.
// It is a bootstrap hook; operations move value exclusively via Transfer.
func (s *State) SetBalance(addr seesaw.Address, balance uint64) error {
	obj, err := s.mutate(addr)
	if err != nil {
		return &Error{err}
	}
	obj.data.Balance = balance
	return nil
}

// Exists returns whether a cell or funded account exists at the given address.
func (s *State) Exists(addr seesaw.Address) (bool, error) {
	obj, err := s.getCell(addr)
	if err != nil {
		return false, &Error{err}
	}
	return obj.exists(), nil
}

// Namespace returns the owner namespace the cell was created under,
// or "" for plain accounts.
func (s *State) Namespace(addr seesaw.Address) (string, error) {
	obj, err := s.getCell(addr)
	if err != nil {
		return "", &Error{err}
	}
	return string(obj.data.Namespace), nil
}

// Transfer moves amount from one address to another.
//
// It is the single primitive all fund movement routes through: the debit and
// the credit are both checked, and on any failure neither side is touched.
// A zero amount is a no-op.
func (s *State) Transfer(from, to seesaw.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	fromObj, err := s.getCell(from)
	if err != nil {
		return &Error{err}
	}
	if fromObj.data.Balance < amount {
		return errors.Wrapf(ErrInsufficientBalance, "transfer %d from %v", amount, from)
	}
	toObj, err := s.getCell(to)
	if err != nil {
		return &Error{err}
	}
	if toObj.destroyed {
		return errors.Wrapf(ErrCellDestroyed, "transfer to %v", to)
	}
	if toObj.data.Balance+amount < toObj.data.Balance {
		return errors.Wrapf(ErrBalanceOverflow, "transfer %d to %v", amount, to)
	}

	if _, err := s.mutate(from); err != nil {
		return &Error{err}
	}
	fromObj.data.Balance -= amount
	if _, err := s.mutate(to); err != nil {
		return &Error{err}
	}
	toObj.data.Balance += amount

	s.transfers = append(s.transfers, TransferLog{From: from, To: to, Amount: amount})
	return nil
}

// CreateCell allocates a new storage cell at the given address, owned by the
// namespace, with a fixed-size zeroed data area. Funding the cell up to the
// host's existence floor is the caller's business.
func (s *State) CreateCell(addr seesaw.Address, namespace string, size int) error {
	obj, err := s.getCell(addr)
	if err != nil {
		return &Error{err}
	}
	if obj.destroyed {
		return errors.Wrapf(ErrCellDestroyed, "create cell %v", addr)
	}
	if obj.exists() {
		return errors.Wrapf(ErrCellExists, "create cell %v", addr)
	}
	if _, err := s.mutate(addr); err != nil {
		return &Error{err}
	}
	obj.data.Namespace = []byte(namespace)
	obj.data.Data = make([]byte, size)
	return nil
}

// DeleteCell destroys a storage cell, paying its whole remaining balance to
// the beneficiary first. Only namespace-owned cells can be deleted.
func (s *State) DeleteCell(addr, beneficiary seesaw.Address) error {
	obj, err := s.getCell(addr)
	if err != nil {
		return &Error{err}
	}
	if obj.destroyed {
		return errors.Wrapf(ErrCellDestroyed, "delete cell %v", addr)
	}
	if len(obj.data.Namespace) == 0 {
		return errors.Wrapf(ErrCellNotFound, "delete cell %v", addr)
	}
	if obj.data.Balance > 0 {
		if beneficiary == addr {
			return errors.Errorf("delete cell %v: beneficiary is the cell itself", addr)
		}
		if err := s.Transfer(addr, beneficiary, obj.data.Balance); err != nil {
			return err
		}
	}
	if _, err := s.mutate(addr); err != nil {
		return &Error{err}
	}
	obj.data = cellData{}
	obj.destroyed = true
	return nil
}

// GetData returns a copy of the cell's data area, or nil if the cell holds none.
func (s *State) GetData(addr seesaw.Address) ([]byte, error) {
	obj, err := s.getCell(addr)
	if err != nil {
		return nil, &Error{err}
	}
	if len(obj.data.Data) == 0 {
		return nil, nil
	}
	return append([]byte(nil), obj.data.Data...), nil
}

// SetData overwrites the cell's data area. The length must match the size
// the cell was created with.
func (s *State) SetData(addr seesaw.Address, data []byte) error {
	obj, err := s.getCell(addr)
	if err != nil {
		return &Error{err}
	}
	if obj.destroyed {
		return errors.Wrapf(ErrCellDestroyed, "set data %v", addr)
	}
	if len(obj.data.Data) != len(data) {
		return errors.Errorf("set data %v: size mismatch, cell %d vs data %d", addr, len(obj.data.Data), len(data))
	}
	if _, err := s.mutate(addr); err != nil {
		return &Error{err}
	}
	obj.data.Data = append([]byte(nil), data...)
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	s.checkpoints = append(s.checkpoints, checkpoint{
		journalLen:  len(s.journal),
		transferLen: len(s.transfers),
	})
	return len(s.checkpoints) - 1
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	cp := s.checkpoints[revision]
	for i := len(s.journal) - 1; i >= cp.journalLen; i-- {
		entry := s.journal[i]
		prev := entry.prev
		s.live[entry.addr] = &prev
	}
	s.journal = s.journal[:cp.journalLen]
	s.transfers = s.transfers[:cp.transferLen]
	s.checkpoints = s.checkpoints[:revision]
}

// TransferCount returns the number of transfers recorded so far.
func (s *State) TransferCount() int {
	return len(s.transfers)
}

// TransfersSince returns the transfers recorded at or after the given count.
// The returned slice is shared; callers must not modify it.
func (s *State) TransfersSince(n int) []TransferLog {
	return s.transfers[n:]
}
