// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"

	"github.com/vechain/seesaw/seesaw"
)

// cellData is the persisted form of a storage cell, RLP-encoded under
// cellKey(addr). A plain balance account is a cell with empty namespace
// and no data.
type cellData struct {
	Balance   uint64
	Namespace []byte
	Data      []byte
}

func (c *cellData) isEmpty() bool {
	return c.Balance == 0 && len(c.Namespace) == 0 && len(c.Data) == 0
}

func (c *cellData) equal(o *cellData) bool {
	return c.Balance == o.Balance &&
		bytes.Equal(c.Namespace, o.Namespace) &&
		bytes.Equal(c.Data, o.Data)
}

// cellObject is the in-memory view of a cell. The destroyed flag is never
// persisted; a destroyed cell translates to a key deletion at commit.
//
// cellObject is copied by value into the journal, so byte slices held by
// cellData must never be mutated in place. Writers always assign fresh
// slices.
type cellObject struct {
	data      cellData
	destroyed bool
}

func (c *cellObject) exists() bool {
	return !c.destroyed && !c.data.isEmpty()
}

func cellKey(addr seesaw.Address) []byte {
	return append([]byte{'c'}, addr[:]...)
}
