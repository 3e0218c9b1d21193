// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package accounts_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/seesaw/api/accounts"
	"github.com/vechain/seesaw/genesis"
	"github.com/vechain/seesaw/lvldb"
	"github.com/vechain/seesaw/node"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/test/datagen"
	"github.com/vechain/seesaw/xenv"
)

var funded = datagen.RandAddress()

func initAccountServer(t *testing.T) *httptest.Server {
	store, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = new(genesis.Builder).Alloc(funded, 42_000).Build(store)
	require.NoError(t, err)

	nd := node.New(store, nil, xenv.RentSchedule{}, node.Options{})

	router := mux.NewRouter()
	accounts.New(nd).Mount(router, "/accounts")
	return httptest.NewServer(router)
}

func httpGet(t *testing.T, url string) ([]byte, int) {
	res, err := http.Get(url)
	require.NoError(t, err)
	r, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	return r, res.StatusCode
}

func TestGetAccount(t *testing.T) {
	ts := initAccountServer(t)
	defer ts.Close()

	res, status := httpGet(t, ts.URL+"/accounts/"+funded.String())
	require.Equal(t, http.StatusOK, status)
	var acc accounts.Account
	require.NoError(t, json.Unmarshal(res, &acc))
	assert.Equal(t, uint64(42_000), uint64(acc.Balance))
	assert.True(t, acc.Exists)
	assert.Empty(t, acc.Namespace)

	res, status = httpGet(t, ts.URL+"/accounts/"+datagen.RandAddress().String())
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(res, &acc))
	assert.False(t, acc.Exists)
	assert.Zero(t, uint64(acc.Balance))
}

func TestGetAccountBadAddress(t *testing.T) {
	ts := initAccountServer(t)
	defer ts.Close()

	res, status := httpGet(t, ts.URL+"/accounts/0x12345")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(res), "address")

	// an address must be 32 bytes of hex
	_, status = httpGet(t, ts.URL+"/accounts/"+seesaw.Address{}.String()+"ff")
	assert.Equal(t, http.StatusBadRequest, status)
}
