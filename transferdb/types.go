// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transferdb

import "github.com/vechain/seesaw/seesaw"

type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

// Range describes an inclusive epoch span.
type Range struct {
	From uint64
	To   uint64
}

type Options struct {
	Offset uint64
	Limit  uint64
}

// Criteria matches transfers by counterparty.
type Criteria struct {
	Sender    *seesaw.Address
	Recipient *seesaw.Address
}

type Filter struct {
	Bucket      *seesaw.Address
	CriteriaSet []*Criteria
	Range       *Range
	Options     *Options
	Order       Order // default asc
}
