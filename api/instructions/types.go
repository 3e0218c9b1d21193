// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package instructions

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/runtime"
	"github.com/vechain/seesaw/seesaw"
)

// RawInstruction carries a wire-encoded instruction and the identity it
// is submitted on behalf of.
type RawInstruction struct {
	Origin seesaw.Address `json:"origin"`
	Raw    string         `json:"raw"`
}

func (r *RawInstruction) decode() (op.Instruction, error) {
	data, err := hexutil.Decode(r.Raw)
	if err != nil {
		return nil, err
	}
	return op.DecodeInstruction(data)
}

// Transfer one value movement of an applied instruction.
type Transfer struct {
	Sender    seesaw.Address      `json:"sender"`
	Recipient seesaw.Address      `json:"recipient"`
	Amount    math.HexOrDecimal64 `json:"amount"`
}

// Receipt for marshal applied instruction.
type Receipt struct {
	Epoch     uint64         `json:"epoch"`
	Origin    seesaw.Address `json:"origin"`
	Op        string         `json:"op"`
	Bucket    seesaw.Address `json:"bucket"`
	Transfers []Transfer     `json:"transfers"`
}

func ConvertReceipt(receipt *runtime.Receipt) *Receipt {
	transfers := make([]Transfer, len(receipt.Transfers))
	for i, t := range receipt.Transfers {
		transfers[i] = Transfer{
			Sender:    t.From,
			Recipient: t.To,
			Amount:    math.HexOrDecimal64(t.Amount),
		}
	}
	return &Receipt{
		Epoch:     receipt.Epoch,
		Origin:    receipt.Origin,
		Op:        receipt.Opcode.String(),
		Bucket:    receipt.Bucket,
		Transfers: transfers,
	}
}
