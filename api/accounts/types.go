// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package accounts

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/vechain/seesaw/node"
)

// Account for marshal account
type Account struct {
	Balance   math.HexOrDecimal64 `json:"balance"`
	Namespace string              `json:"namespace,omitempty"`
	Exists    bool                `json:"exists"`
}

func ConvertAccount(acc *node.Account) *Account {
	return &Account{
		Balance:   math.HexOrDecimal64(acc.Balance),
		Namespace: acc.Namespace,
		Exists:    acc.Exists,
	}
}
