// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transferdb

import (
	"fmt"

	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/state"
)

// Transfer represents a value movement as stored in db.
type Transfer struct {
	Epoch     uint64
	Seq       uint32
	Op        op.Opcode
	Bucket    seesaw.Address
	Sender    seesaw.Address
	Recipient seesaw.Address
	Amount    uint64
}

// NewTransfer converts a state.TransferLog to a storable Transfer.
func NewTransfer(epoch uint64, seq uint32, opcode op.Opcode, bucket seesaw.Address, log state.TransferLog) *Transfer {
	return &Transfer{
		Epoch:     epoch,
		Seq:       seq,
		Op:        opcode,
		Bucket:    bucket,
		Sender:    log.From,
		Recipient: log.To,
		Amount:    log.Amount,
	}
}

func (t *Transfer) String() string {
	return fmt.Sprintf("Transfer(epoch=%v seq=%v op=%v bucket=%v %v -> %v amount=%v)",
		t.Epoch,
		t.Seq,
		t.Op,
		t.Bucket,
		t.Sender,
		t.Recipient,
		t.Amount)
}
