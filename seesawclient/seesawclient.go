// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package seesawclient is the Go client of the seesaw node API.
package seesawclient

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/vechain/seesaw/api/accounts"
	"github.com/vechain/seesaw/api/buckets"
	"github.com/vechain/seesaw/api/instructions"
	"github.com/vechain/seesaw/api/transfers"
	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/seesawclient/httpclient"
)

type Client struct {
	httpConn *httpclient.Client
}

func New(url string) *Client {
	return &Client{
		httpConn: httpclient.New(url),
	}
}

func NewWithHTTP(url string, c *http.Client) *Client {
	return &Client{
		httpConn: httpclient.NewWithHTTP(url, c),
	}
}

func (c *Client) RawHTTPClient() *httpclient.Client {
	return c.httpConn
}

// Account retrieves the balance sheet entry of addr.
func (c *Client) Account(addr *seesaw.Address) (*accounts.Account, error) {
	return c.httpConn.GetAccount(addr)
}

// Bucket retrieves the contest stored at the record address.
func (c *Client) Bucket(record *seesaw.Address) (*buckets.BucketSummary, error) {
	return c.httpConn.GetBucket(record)
}

// SendInstruction wire-encodes instr and submits it on behalf of origin.
func (c *Client) SendInstruction(origin seesaw.Address, instr op.Instruction) (*instructions.Receipt, error) {
	raw := &instructions.RawInstruction{
		Origin: origin,
		Raw:    hexutil.Encode(op.EncodeInstruction(instr)),
	}
	return c.httpConn.SendInstruction(raw)
}

// FilterTransfers queries the transfer journal of the node.
func (c *Client) FilterTransfers(filter *transfers.TransferFilter) ([]*transfers.FilteredTransfer, error) {
	return c.httpConn.FilterTransfers(filter)
}
