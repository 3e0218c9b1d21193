// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transfers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/seesaw/api/transfers"
	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/state"
	"github.com/vechain/seesaw/test/datagen"
	"github.com/vechain/seesaw/transferdb"
)

const logsLimit = 10

var (
	bkt   = datagen.RandCellAddress()
	alice = datagen.RandAddress()
	bob   = datagen.RandAddress()
)

func initTransferServer(t *testing.T) *httptest.Server {
	db, err := transferdb.NewMem()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	var rows []*transferdb.Transfer
	for epoch := uint64(1); epoch <= 15; epoch++ {
		rows = append(rows, transferdb.NewTransfer(epoch, 0, op.OpDeposit, bkt, state.TransferLog{
			From:   alice,
			To:     bob,
			Amount: epoch * 1000,
		}))
	}
	require.NoError(t, db.Insert(rows, nil))

	router := mux.NewRouter()
	transfers.New(db, logsLimit).Mount(router, "/logs/transfer")
	return httptest.NewServer(router)
}

func httpPost(t *testing.T, url string, body []byte) ([]byte, int) {
	res, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	r, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	return r, res.StatusCode
}

func filterTransfers(t *testing.T, ts *httptest.Server, filter *transfers.TransferFilter) ([]byte, int) {
	body, err := json.Marshal(filter)
	require.NoError(t, err)
	return httpPost(t, ts.URL+"/logs/transfer", body)
}

func TestFilterTransfers(t *testing.T) {
	ts := initTransferServer(t)
	defer ts.Close()

	from, to := uint64(1), uint64(5)
	res, status := filterTransfers(t, ts, &transfers.TransferFilter{
		Bucket:  &bkt,
		Range:   &transfers.Range{From: &from, To: &to},
		Options: &transfers.Options{Limit: logsLimit},
	})
	require.Equal(t, http.StatusOK, status)
	var got []*transfers.FilteredTransfer
	require.NoError(t, json.Unmarshal(res, &got))
	require.Len(t, got, 5)
	assert.Equal(t, alice, got[0].Sender)
	assert.Equal(t, bob, got[0].Recipient)
	assert.Equal(t, "deposit", got[0].Op)

	res, status = filterTransfers(t, ts, &transfers.TransferFilter{
		Order:   transferdb.DESC,
		Options: &transfers.Options{Limit: 3},
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(res, &got))
	require.Len(t, got, 3)
	assert.Equal(t, uint64(15), got[0].Epoch)

	res, status = filterTransfers(t, ts, &transfers.TransferFilter{
		CriteriaSet: []*transfers.Criteria{{Sender: &bob}},
		Options:     &transfers.Options{Limit: logsLimit},
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(res, &got))
	assert.Empty(t, got, "bob never sent anything")
}

func TestFilterTransfersLimits(t *testing.T) {
	ts := initTransferServer(t)
	defer ts.Close()

	// more rows than the cap and no pagination
	res, status := filterTransfers(t, ts, &transfers.TransferFilter{})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, string(res), "please use pagination")

	res, status = filterTransfers(t, ts, &transfers.TransferFilter{
		Options: &transfers.Options{Limit: logsLimit + 1},
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, string(res), "options.limit")
}

func TestFilterTransfersBadRequests(t *testing.T) {
	ts := initTransferServer(t)
	defer ts.Close()

	res, status := httpPost(t, ts.URL+"/logs/transfer", []byte("not json"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(res), "body")

	from, to := uint64(9), uint64(3)
	res, status = filterTransfers(t, ts, &transfers.TransferFilter{
		Range: &transfers.Range{From: &from, To: &to},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(res), "range.to")

	body, err := json.Marshal(transfers.TransferFilter{
		CriteriaSet: []*transfers.Criteria{nil},
	})
	require.NoError(t, err)
	res, status = httpPost(t, ts.URL+"/logs/transfer", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(res), "null not allowed")

	_, status = httpPost(t, ts.URL+"/logs/transfer", []byte(`{"unknown": 1}`))
	assert.Equal(t, http.StatusBadRequest, status)
}
