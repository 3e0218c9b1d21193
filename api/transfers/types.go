// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transfers

import (
	stdmath "math"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/transferdb"
)

// Range is an inclusive epoch span. A missing bound leaves that side
// open.
type Range struct {
	From *uint64 `json:"from"`
	To   *uint64 `json:"to"`
}

type Options struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// Criteria matches transfers by counterparty.
type Criteria struct {
	Sender    *seesaw.Address `json:"sender"`
	Recipient *seesaw.Address `json:"recipient"`
}

// TransferFilter is the query body of the transfer log endpoint.
type TransferFilter struct {
	Bucket      *seesaw.Address  `json:"bucket"`
	CriteriaSet []*Criteria      `json:"criteriaSet"`
	Range       *Range           `json:"range"`
	Options     *Options         `json:"options"`
	Order       transferdb.Order `json:"order"`
}

type FilteredTransfer struct {
	Epoch     uint64              `json:"epoch"`
	Seq       uint32              `json:"seq"`
	Op        string              `json:"op"`
	Bucket    seesaw.Address      `json:"bucket"`
	Sender    seesaw.Address      `json:"sender"`
	Recipient seesaw.Address      `json:"recipient"`
	Amount    math.HexOrDecimal64 `json:"amount"`
}

func ConvertTransfer(transfer *transferdb.Transfer) *FilteredTransfer {
	return &FilteredTransfer{
		Epoch:     transfer.Epoch,
		Seq:       transfer.Seq,
		Op:        transfer.Op.String(),
		Bucket:    transfer.Bucket,
		Sender:    transfer.Sender,
		Recipient: transfer.Recipient,
		Amount:    math.HexOrDecimal64(transfer.Amount),
	}
}

func convertRange(r *Range) *transferdb.Range {
	if r == nil {
		return nil
	}
	converted := &transferdb.Range{To: stdmath.MaxUint64}
	if r.From != nil {
		converted.From = *r.From
	}
	if r.To != nil {
		converted.To = *r.To
	}
	return converted
}

func convertCriteria(set []*Criteria) []*transferdb.Criteria {
	converted := make([]*transferdb.Criteria, len(set))
	for i, criteria := range set {
		converted[i] = &transferdb.Criteria{
			Sender:    criteria.Sender,
			Recipient: criteria.Recipient,
		}
	}
	return converted
}
