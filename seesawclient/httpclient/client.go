// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package httpclient provides an HTTP client to interact with a seesaw
// node. It offers methods to retrieve accounts, contests and journaled
// transfers, and to submit instructions.
package httpclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vechain/seesaw/api/accounts"
	"github.com/vechain/seesaw/api/buckets"
	"github.com/vechain/seesaw/api/instructions"
	"github.com/vechain/seesaw/api/transfers"
	"github.com/vechain/seesaw/seesaw"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNot200Status = errors.New("not 200 status code")
)

// Client represents the HTTP client for interacting with a seesaw node.
// It manages communication via HTTP requests.
type Client struct {
	url string
	c   *http.Client
}

// New creates a new Client with the provided URL.
func New(url string) *Client {
	return NewWithHTTP(url, http.DefaultClient)
}

func NewWithHTTP(url string, c *http.Client) *Client {
	return &Client{
		url: url,
		c:   c,
	}
}

// GetAccount retrieves the account details for the given address.
func (c *Client) GetAccount(addr *seesaw.Address) (*accounts.Account, error) {
	body, err := c.httpGET(c.url + "/accounts/" + addr.String())
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve account - %w", err)
	}

	var account accounts.Account
	if err = json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("unable to unmarshal account - %w", err)
	}

	return &account, nil
}

// GetBucket retrieves the contest summary stored at the record address.
func (c *Client) GetBucket(record *seesaw.Address) (*buckets.BucketSummary, error) {
	body, err := c.httpGET(c.url + "/buckets/" + record.String())
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve bucket - %w", err)
	}

	var summary buckets.BucketSummary
	if err = json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("unable to unmarshal bucket - %w", err)
	}

	return &summary, nil
}

// SendInstruction submits a wire-encoded instruction to the node.
func (c *Client) SendInstruction(obj *instructions.RawInstruction) (*instructions.Receipt, error) {
	body, err := c.httpPOST(c.url+"/instructions", obj)
	if err != nil {
		return nil, fmt.Errorf("unable to send instruction - %w", err)
	}

	var receipt instructions.Receipt
	if err = json.Unmarshal(body, &receipt); err != nil {
		return nil, fmt.Errorf("unable to unmarshal receipt - %w", err)
	}

	return &receipt, nil
}

// FilterTransfers queries the transfer journal of the node.
func (c *Client) FilterTransfers(req *transfers.TransferFilter) ([]*transfers.FilteredTransfer, error) {
	body, err := c.httpPOST(c.url+"/logs/transfer", req)
	if err != nil {
		return nil, fmt.Errorf("unable to filter transfers - %w", err)
	}

	var filtered []*transfers.FilteredTransfer
	if err = json.Unmarshal(body, &filtered); err != nil {
		return nil, fmt.Errorf("unable to unmarshal transfers - %w", err)
	}

	return filtered, nil
}

// RawHTTPPost sends a raw HTTP POST request to the specified URL with the provided data.
func (c *Client) RawHTTPPost(url string, calldata interface{}) ([]byte, int, error) {
	var data []byte
	var err error

	if b, ok := calldata.([]byte); ok {
		data = b
	} else {
		data, err = json.Marshal(calldata)
		if err != nil {
			return nil, 0, fmt.Errorf("unable to marshal payload - %w", err)
		}
	}

	return c.rawHTTPRequest("POST", c.url+url, bytes.NewBuffer(data))
}

// RawHTTPGet sends a raw HTTP GET request to the specified URL.
func (c *Client) RawHTTPGet(url string) ([]byte, int, error) {
	return c.rawHTTPRequest("GET", c.url+url, nil)
}

func (c *Client) httpGET(url string) ([]byte, error) {
	body, statusCode, err := c.rawHTTPRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return validateResponse(body, statusCode)
}

func (c *Client) httpPOST(url string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal payload - %w", err)
	}
	body, statusCode, err := c.rawHTTPRequest("POST", url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	return validateResponse(body, statusCode)
}

func (c *Client) rawHTTPRequest(method string, url string, payload io.Reader) ([]byte, int, error) {
	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to create request - %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to perform request - %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("unable to read response body - %w", err)
	}
	return body, resp.StatusCode, nil
}

func validateResponse(body []byte, statusCode int) ([]byte, error) {
	switch statusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("%w: %d - %s", ErrNot200Status, statusCode, strings.TrimSpace(string(body)))
	}
}
