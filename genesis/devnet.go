// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/vechain/seesaw/seesaw"
)

// DevAccountBalance is what every dev account starts with.
const DevAccountBalance = 1_000_000_000_000

var devDomain = []byte("seesaw.dev.account")

var devAccounts atomic.Value

// DevAccounts returns pre-alloced accounts for solo mode. The addresses are
// derived from a fixed domain, so every node agrees on them without any key
// material changing hands.
func DevAccounts() []seesaw.Address {
	if accs := devAccounts.Load(); accs != nil {
		return accs.([]seesaw.Address)
	}

	accs := make([]seesaw.Address, 0, 10)
	for i := uint64(0); i < 10; i++ {
		var index [8]byte
		binary.LittleEndian.PutUint64(index[:], i)
		h := seesaw.Blake2b(devDomain, index[:])
		// keep dev identities out of the reserved cell space
		h[0] &^= 0x80
		accs = append(accs, seesaw.Address(h))
	}
	devAccounts.Store(accs)
	return accs
}

// NewDevnet create a genesis builder for solo mode.
func NewDevnet() *Builder {
	builder := new(Builder)
	for _, a := range DevAccounts() {
		builder.Alloc(a, DevAccountBalance)
	}
	return builder
}
